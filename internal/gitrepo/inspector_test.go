package gitrepo

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func newRepo(t *testing.T) (*Inspector, string) {
	t.Helper()
	requireGit(t)
	ins := NewInspector()
	dir := filepath.Join(t.TempDir(), "repo")
	if err := ins.InitializeRepository(dir); err != nil {
		t.Fatalf("init repository: %v", err)
	}
	ins.RunCommand(dir, `git config user.name "Test"`)
	ins.RunCommand(dir, `git config user.email "test@example.com"`)
	return ins, dir
}

func commitFile(t *testing.T, ins *Inspector, dir, name, body, msg string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	ins.RunCommand(dir, "git add "+name)
	out := ins.RunCommand(dir, "git commit -m "+quote(msg))
	if strings.Contains(strings.ToLower(out), "error") {
		t.Fatalf("commit failed: %s", out)
	}
}

func quote(s string) string { return "'" + s + "'" }

func TestInitializeAndIsRepository(t *testing.T) {
	ins, dir := newRepo(t)

	if !ins.IsRepository(dir) {
		t.Fatalf("expected initialized dir to be a repository")
	}
	if ins.IsRepository(t.TempDir()) {
		t.Fatalf("expected empty dir not to be a repository")
	}
}

func TestCurrentBranchDefaultsToMain(t *testing.T) {
	ins, dir := newRepo(t)
	commitFile(t, ins, dir, "a.txt", "a\n", "initial")

	if got := ins.CurrentBranch(dir); got != "main" {
		t.Fatalf("expected branch main, got %q", got)
	}
}

func TestBranchesListsCreatedBranches(t *testing.T) {
	ins, dir := newRepo(t)
	commitFile(t, ins, dir, "a.txt", "a\n", "initial")
	ins.RunCommand(dir, "git branch feature/x")

	branches := ins.Branches(dir)
	found := map[string]bool{}
	for _, b := range branches {
		found[b] = true
	}
	if !found["main"] || !found["feature/x"] {
		t.Fatalf("expected main and feature/x, got %v", branches)
	}
}

// setupConflict builds the canonical conflicting history: both branches
// rewrite the same line of hello.txt.
func setupConflict(t *testing.T, ins *Inspector, dir string) {
	t.Helper()
	commitFile(t, ins, dir, "hello.txt", "base\n", "initial")
	ins.RunCommand(dir, "git checkout -b feature")
	commitFile(t, ins, dir, "hello.txt", "feature change\n", "feature edit")
	ins.RunCommand(dir, "git checkout main")
	commitFile(t, ins, dir, "hello.txt", "main change\n", "main edit")
	ins.RunCommand(dir, "git merge feature")
}

func TestConflictLifecycle(t *testing.T) {
	ins, dir := newRepo(t)
	setupConflict(t, ins, dir)

	if !ins.IsMergeInProgress(dir) {
		t.Fatalf("expected merge in progress after conflicting merge")
	}
	if !ins.HasConflicts(dir) {
		t.Fatalf("expected conflicts after conflicting merge")
	}
	files := ins.ConflictedFiles(dir)
	if len(files) != 1 || files[0] != "hello.txt" {
		t.Fatalf("expected [hello.txt], got %v", files)
	}

	// Resolve and stage: conflicts clear, merge still open.
	if err := os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("resolved\n"), 0o644); err != nil {
		t.Fatalf("write resolution: %v", err)
	}
	ins.RunCommand(dir, "git add hello.txt")
	if ins.HasConflicts(dir) {
		t.Fatalf("expected no conflicts after staging resolution")
	}
	if !ins.IsMergeInProgress(dir) {
		t.Fatalf("expected merge still open before commit")
	}

	// Commit: merge closes.
	ins.RunCommand(dir, "git commit -m 'merge feature'")
	if ins.IsMergeInProgress(dir) {
		t.Fatalf("expected merge finished after commit")
	}
}

func TestIsBranchMerged(t *testing.T) {
	ins, dir := newRepo(t)
	commitFile(t, ins, dir, "a.txt", "a\n", "initial")
	ins.RunCommand(dir, "git checkout -b feature")
	commitFile(t, ins, dir, "b.txt", "b\n", "feature work")
	ins.RunCommand(dir, "git checkout main")

	// feature holds everything main has; main lacks feature's commit.
	if !ins.IsBranchMerged(dir, "feature", "main") {
		t.Fatalf("expected feature to contain all of main")
	}
	if ins.IsBranchMerged(dir, "main", "feature") {
		t.Fatalf("expected main to lack feature's commit")
	}

	ins.RunCommand(dir, "git merge feature")
	if !ins.IsBranchMerged(dir, "main", "feature") {
		t.Fatalf("expected main to contain feature after merge")
	}
}

func TestIsBranchMergedMissingBranch(t *testing.T) {
	ins, dir := newRepo(t)
	commitFile(t, ins, dir, "a.txt", "a\n", "initial")

	if ins.IsBranchMerged(dir, "ghost", "") {
		t.Fatalf("expected false for missing branch")
	}
}

func TestRunCommandCombinesOutput(t *testing.T) {
	ins, dir := newRepo(t)

	out := ins.RunCommand(dir, "echo hello")
	if strings.TrimSpace(out) != "hello" {
		t.Fatalf("expected hello, got %q", out)
	}

	out = ins.RunCommand(dir, "git status")
	if !strings.Contains(out, "branch") && !strings.Contains(out, "commit") {
		t.Fatalf("expected status output, got %q", out)
	}

	out = ins.RunCommand(dir, "")
	if out != "" {
		t.Fatalf("expected empty output for empty command, got %q", out)
	}
}
