// Command reference is the reference report plugin. It renders a plain
// text summary of the library dashboard snapshot handed over by the
// host.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-plugin"

	"pustaka/internal/modules/plugin/adapter/out/rpc"
)

const (
	pluginName    = "referensi"
	pluginVersion = "1.0.0"
	reportSummary = "ringkasan"
)

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

type yearCount struct {
	Year  int
	Count int
}

type snapshot struct {
	Daily          [7]int
	Monthly        [12]int
	Yearly         []yearCount
	TotalVisits    int
	CategoryCounts map[string]int
}

type reportServer struct{}

func (s *reportServer) GetMetadata(context.Context, *rpc.Empty) (*rpc.Metadata, error) {
	return &rpc.Metadata{Name: pluginName, Version: pluginVersion}, nil
}

func (s *reportServer) ListReports(context.Context, *rpc.Empty) (*rpc.ListReportsResponse, error) {
	return &rpc.ListReportsResponse{Reports: []rpc.ReportDescriptor{
		{
			ID:          reportSummary,
			Title:       "Ringkasan Kunjungan",
			Description: "Ringkasan teks dari statistik kunjungan dan koleksi",
			Format:      "text",
			TimeoutMS:   5000,
		},
	}}, nil
}

func (s *reportServer) Render(_ context.Context, in *rpc.RenderRequest) (*rpc.RenderResponse, error) {
	if in.ReportID != reportSummary {
		return nil, fmt.Errorf("unknown report: %s", in.ReportID)
	}
	var snap snapshot
	if err := json.Unmarshal([]byte(in.SnapshotJSON), &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &rpc.RenderResponse{Content: renderSummary(snap), Format: "text"}, nil
}

func renderSummary(snap snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ringkasan Perpustakaan Digital\n")
	fmt.Fprintf(&b, "Total kunjungan: %d\n", snap.TotalVisits)

	weekTotal := 0
	for _, count := range snap.Daily {
		weekTotal += count
	}
	fmt.Fprintf(&b, "Kunjungan 7 hari terakhir: %d\n", weekTotal)

	b.WriteString("Kunjungan per bulan tahun ini:\n")
	for i, count := range snap.Monthly {
		if count == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %s: %d\n", monthLabels[i], count)
	}

	if len(snap.Yearly) > 0 {
		b.WriteString("Kunjungan per tahun:\n")
		for _, entry := range snap.Yearly {
			fmt.Fprintf(&b, "  %d: %d\n", entry.Year, entry.Count)
		}
	}

	if len(snap.CategoryCounts) > 0 {
		b.WriteString("Koleksi per jenjang:\n")
		for _, category := range []string{"SD", "SMP", "SMA", "Lainnya"} {
			if count, ok := snap.CategoryCounts[category]; ok {
				fmt.Fprintf(&b, "  %s: %d\n", category, count)
			}
		}
	}
	return b.String()
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: rpc.HandshakeConfig,
		Plugins:         rpc.PluginMap(&reportServer{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
