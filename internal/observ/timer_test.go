package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("scan")
	time.Sleep(time.Millisecond)
	tm.End(idx, "3 files")

	report := tm.Report()
	if len(report.Stages) != 1 {
		t.Fatalf("expected 1 stage, got %d", len(report.Stages))
	}
	if report.Stages[0].Name != "scan" {
		t.Fatalf("unexpected stage name %q", report.Stages[0].Name)
	}
	if report.Stages[0].DurationMS <= 0 {
		t.Fatalf("expected positive duration, got %v", report.Stages[0].DurationMS)
	}
	if report.Stages[0].Note != "3 files" {
		t.Fatalf("unexpected note %q", report.Stages[0].Note)
	}
	if report.TotalMS < report.Stages[0].DurationMS {
		t.Fatalf("total %v smaller than stage %v", report.TotalMS, report.Stages[0].DurationMS)
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(0, "no stages yet")
	tm.End(-1, "negative")
	if got := len(tm.Report().Stages); got != 0 {
		t.Fatalf("expected empty report, got %d stages", got)
	}
}

func TestTimerSummaryContainsStages(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("load manifest")
	tm.End(idx, "")
	summary := tm.Summary()
	if !strings.Contains(summary, "load manifest") {
		t.Fatalf("summary missing stage name: %q", summary)
	}
	if !strings.Contains(summary, "total") {
		t.Fatalf("summary missing total line: %q", summary)
	}
}
