package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---\n"

// SplitFrontmatter separates a document into its YAML frontmatter map and
// markdown body. Documents without a leading fence have no frontmatter.
func SplitFrontmatter(content string) (map[string]any, string, error) {
	rest, found := strings.CutPrefix(content, fence)
	if !found {
		return map[string]any{}, content, nil
	}
	meta, body, found := strings.Cut(rest, "\n---\n")
	if !found {
		return nil, "", fmt.Errorf("frontmatter is not closed")
	}
	decoded := map[string]any{}
	if err := yaml.Unmarshal([]byte(meta), &decoded); err != nil {
		return nil, "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return decoded, body, nil
}

// RenderFrontmatter produces a document with meta as YAML frontmatter
// followed by body.
func RenderFrontmatter(meta map[string]any, body string) (string, error) {
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	var sb strings.Builder
	sb.WriteString(fence)
	sb.Write(raw)
	sb.WriteString(fence)
	if !strings.HasPrefix(body, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(body)
	return sb.String(), nil
}

// ReplaceManagedBlock swaps the content between startMarker and endMarker
// for generated, appending a fresh block when the markers are absent.
func ReplaceManagedBlock(body, startMarker, endMarker, generated string) string {
	block := startMarker + "\n" + generated + "\n" + endMarker
	start := strings.Index(body, startMarker)
	end := strings.Index(body, endMarker)
	if start >= 0 && end > start {
		return body[:start] + block + body[end+len(endMarker):]
	}
	if strings.TrimSpace(body) == "" {
		return block + "\n"
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return body + "\n" + block + "\n"
}
