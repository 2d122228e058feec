package markdown_test

import (
	"strings"
	"testing"

	"pustaka/internal/platform/markdown"
)

func TestFrontmatterRoundTrip(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.RenderFrontmatter(map[string]any{"title": "Buku IPA"}, "## Ringkasan\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	meta, body, err := markdown.SplitFrontmatter(rendered)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta["title"] != "Buku IPA" {
		t.Fatalf("unexpected meta: %v", meta)
	}
	if !strings.Contains(body, "## Ringkasan") {
		t.Fatalf("body lost: %q", body)
	}
}

func TestSplitFrontmatterWithoutFence(t *testing.T) {
	t.Parallel()
	meta, body, err := markdown.SplitFrontmatter("plain body\n")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(meta) != 0 || body != "plain body\n" {
		t.Fatalf("expected empty meta and untouched body, got %v %q", meta, body)
	}
}

func TestSplitFrontmatterUnclosedFails(t *testing.T) {
	t.Parallel()
	if _, _, err := markdown.SplitFrontmatter("---\ntitle: x\n"); err == nil {
		t.Fatalf("unclosed frontmatter should fail")
	}
}

func TestReplaceManagedBlock(t *testing.T) {
	t.Parallel()
	const start, end = "<!-- pustaka:shelf:start -->", "<!-- pustaka:shelf:end -->"

	body := markdown.ReplaceManagedBlock("notes\n", start, end, "[[sd]]")
	if !strings.Contains(body, start+"\n[[sd]]\n"+end) {
		t.Fatalf("block not appended: %q", body)
	}
	body = markdown.ReplaceManagedBlock(body, start, end, "[[smp]]")
	if strings.Contains(body, "[[sd]]") || !strings.Contains(body, "[[smp]]") {
		t.Fatalf("block not replaced: %q", body)
	}
	if strings.Count(body, start) != 1 {
		t.Fatalf("duplicate managed block: %q", body)
	}
}
