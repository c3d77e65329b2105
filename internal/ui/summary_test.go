package ui

import (
	"strings"
	"testing"
)

func TestRenderSummaryAllClean(t *testing.T) {
	var b strings.Builder
	RenderSummary(&b, "check: caves", []FileStatus{
		{Path: "levels/intro.grs", OK: true, Tokens: 42},
		{Path: "levels/boss.grs", OK: true, Tokens: 7},
	}, 80)

	out := b.String()
	if !strings.Contains(out, "check: caves") {
		t.Errorf("Missing title:\n%s", out)
	}
	if !strings.Contains(out, "levels/intro.grs") || !strings.Contains(out, "(42 tokens)") {
		t.Errorf("Missing clean row:\n%s", out)
	}
	if !strings.Contains(out, "2 file(s), all clean") {
		t.Errorf("Missing footer:\n%s", out)
	}
}

func TestRenderSummaryWithFailures(t *testing.T) {
	var b strings.Builder
	RenderSummary(&b, "check", []FileStatus{
		{Path: "a.grs", OK: true, Tokens: 3},
		{Path: "b.grs", OK: false, Detail: "unexpected symbol at 1:4"},
	}, 80)

	out := b.String()
	if !strings.Contains(out, "FAIL") || !strings.Contains(out, "unexpected symbol at 1:4") {
		t.Errorf("Missing failure row:\n%s", out)
	}
	if !strings.Contains(out, "1 of 2 file(s) failed") {
		t.Errorf("Missing failure footer:\n%s", out)
	}
}

func TestTruncateLongPath(t *testing.T) {
	long := strings.Repeat("levels/deep/", 10) + "x.grs"
	got := truncate(long, 24)
	if len(got) > 24 {
		t.Errorf("truncate(%q, 24) = %q (len %d)", long, got, len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", got)
	}
}
