package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ArxivWeekly/internal/models"
)

func TestRecordsExporter_Export(t *testing.T) {
	papers := []*models.Paper{
		{Date: "2025-01-06", Title: "Paper A", Abstract: "Abstract A", Meta: "Jane Doe, cs.AI", URL: "/papers/a"},
		{Date: "2025-01-05", Title: "论文 B", Abstract: "摘要 B", Meta: "John Roe, cs.CV", URL: "/papers/b"},
	}

	path := filepath.Join(t.TempDir(), "weekly_papers.csv")
	if err := NewRecordsExporter().Export(papers, path); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	content := string(data)

	// UTF-8 BOM 开头
	if !strings.HasPrefix(content, "\xEF\xBB\xBF") {
		t.Error("output should start with UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(content, "\xEF\xBB\xBF")), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected header + 2 records", len(lines))
	}
	if lines[0] != "日期,标题,摘要,作者/分类,URL" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], "论文 B") {
		t.Errorf("record line = %q, expected to contain 论文 B", lines[2])
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 600)
	got := truncate(long, 500)
	if len(got) != 503 {
		t.Errorf("truncate() length = %d, expected 503", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("truncated text should end with ...")
	}

	if got := truncate("short", 500); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
}
