package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"gitdojo/internal/practice"
	"gitdojo/internal/progress"
	"gitdojo/internal/scenario"
	"gitdojo/internal/state"
)

func testSession(t *testing.T) *practice.Session {
	t.Helper()
	def := &scenario.Definition{
		Name:        "merge_conflict",
		Description: "Resolve a merge conflict",
		Objectives: []scenario.Objective{
			{ID: "merge", Goal: "Attempt the merge", Command: "git merge feature"},
			{ID: "resolve", Goal: "Resolve the conflict"},
		},
	}
	return practice.NewSession("merge_conflict", "/tmp/sandbox", def, time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC))
}

func TestShowObjectiveIncludesPositionAndCommand(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.ShowObjective(testSession(t))

	out := buf.String()
	if !strings.Contains(out, "Objective 1/2") {
		t.Fatalf("expected objective position in output, got %q", out)
	}
	if !strings.Contains(out, "Attempt the merge") {
		t.Fatalf("expected goal text in output, got %q", out)
	}
	if !strings.Contains(out, "git merge feature") {
		t.Fatalf("expected suggested command in output, got %q", out)
	}
}

func TestShowResultRendersHint(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.ShowResult(practice.Result{
		Status:  practice.StatusInProgress,
		Message: "File hello.txt not found",
		Hint:    "Create the file first",
	})

	out := buf.String()
	if !strings.Contains(out, "File hello.txt not found") {
		t.Fatalf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "Create the file first") {
		t.Fatalf("expected hint in output, got %q", out)
	}
}

func TestShowObjectiveListMarksCompleted(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)
	session := testSession(t)
	session.Advance()

	console.ShowObjectiveList(session)

	out := buf.String()
	if !strings.Contains(out, "Attempt the merge") || !strings.Contains(out, "Resolve the conflict") {
		t.Fatalf("expected both objectives listed, got %q", out)
	}
	if !strings.Contains(out, "[x]") {
		t.Fatalf("expected completed marker, got %q", out)
	}
	if !strings.Contains(out, "[ ]") {
		t.Fatalf("expected pending marker, got %q", out)
	}
}

func TestShowSummaryReportsCounts(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)
	session := testSession(t)
	session.Advance()
	session.Advance()

	console.ShowSummary(session)

	out := buf.String()
	if !strings.Contains(out, "2/2") {
		t.Fatalf("expected 2/2 in summary, got %q", out)
	}
	if !strings.Contains(out, "/tmp/sandbox") {
		t.Fatalf("expected sandbox path in summary, got %q", out)
	}
}

func TestShowSummarySkipsRemovedSandbox(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)
	session := testSession(t)
	session.Advance()
	session.Advance()
	session.SandboxPath = ""

	console.ShowSummary(session)

	if strings.Contains(buf.String(), "Sandbox kept at:") {
		t.Fatalf("expected no sandbox line, got %q", buf.String())
	}
}

func TestShowProgressEmptyData(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.ShowProgress(*progress.NewData())

	out := buf.String()
	if !strings.Contains(out, "none started yet") {
		t.Fatalf("expected empty-modules note, got %q", out)
	}
	if !strings.Contains(out, "none attempted yet") {
		t.Fatalf("expected empty-practice note, got %q", out)
	}
	if !strings.Contains(out, "none recorded yet") {
		t.Fatalf("expected empty-commands note, got %q", out)
	}
}

func TestShowProgressRendersCommandStats(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	data := progress.NewData()
	data.Commands["merge"] = &progress.CommandStats{CommandName: "merge", UsageCount: 4, SuccessfulUses: 3, FailedUses: 1}
	data.Commands["rebase"] = &progress.CommandStats{CommandName: "rebase", UsageCount: 9, SuccessfulUses: 9}

	console.ShowProgress(*data)

	out := buf.String()
	if !strings.Contains(out, "merge  uses: 4  success: 75%") {
		t.Fatalf("expected merge stats with success rate, got %q", out)
	}
	if !strings.Contains(out, "rebase  uses: 9  success: 100%") {
		t.Fatalf("expected rebase stats, got %q", out)
	}
	// The most used command is listed first.
	if strings.Index(out, "rebase") > strings.Index(out, "merge") {
		t.Fatalf("expected rebase before merge, got %q", out)
	}
}

func TestTopCommandsLimitsAndOrders(t *testing.T) {
	m := map[string]*progress.CommandStats{
		"a": {UsageCount: 1},
		"b": {UsageCount: 5},
		"c": {UsageCount: 3},
		"d": {UsageCount: 3},
	}
	got := topCommands(m, 3)
	want := []string{"b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestShowRunJournal(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.ShowRunJournal(state.Summary{Runs: 3, Completed: 2, Objectives: 8}, &state.LastRun{
		ScenarioName:        "merge_conflict",
		Mode:                "interactive",
		ObjectivesCompleted: 5,
		TotalObjectives:     5,
		Completed:           true,
	})

	out := buf.String()
	if !strings.Contains(out, "runs: 3  completed: 2  objectives solved: 8") {
		t.Fatalf("expected summary line, got %q", out)
	}
	if !strings.Contains(out, "last run: merge_conflict (interactive) 5/5 objectives") {
		t.Fatalf("expected last-run line, got %q", out)
	}
}

func TestShowRunJournalWithoutLastRun(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.ShowRunJournal(state.Summary{}, nil)

	out := buf.String()
	if !strings.Contains(out, "runs: 0  completed: 0  objectives solved: 0") {
		t.Fatalf("expected zero summary line, got %q", out)
	}
	if strings.Contains(out, "last run:") {
		t.Fatalf("expected no last-run line, got %q", out)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(4_000); got != "4s" {
		t.Fatalf("expected 4s, got %q", got)
	}
	if got := formatDuration(125_000); got != "2m05s" {
		t.Fatalf("expected 2m05s, got %q", got)
	}
}
