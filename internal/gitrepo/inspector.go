package gitrepo

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	shlex "github.com/anmitsu/go-shlex"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/revlist"
)

// DefaultTargetBranch is the branch a feature branch is assumed to merge
// into when the caller does not name one.
const DefaultTargetBranch = "main"

// Inspector wraps a git working copy on the host filesystem. State
// queries go through go-git; commands run through the git binary in the
// target directory.
type Inspector struct{}

func NewInspector() *Inspector { return &Inspector{} }

func (i *Inspector) IsRepository(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// InitializeRepository creates path if needed and initializes an empty
// repository with "main" as the default branch.
func (i *Inspector) InitializeRepository(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create sandbox dir: %w", err)
	}
	_, err := git.PlainInitWithOptions(path, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.Main},
	})
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	return nil
}

func (i *Inspector) HasConflicts(path string) bool {
	return len(i.ConflictedFiles(path)) > 0
}

// IsMergeInProgress reports whether a merge has started and not yet been
// committed or aborted.
func (i *Inspector) IsMergeInProgress(path string) bool {
	if _, err := git.PlainOpen(path); err != nil {
		return false
	}
	_, err := os.Stat(filepath.Join(path, ".git", "MERGE_HEAD"))
	return err == nil
}

// CurrentBranch returns the short name of the checked-out branch, or ""
// when HEAD is detached, unborn, or the path is not a repository.
func (i *Inspector) CurrentBranch(path string) string {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	if !head.Name().IsBranch() {
		return ""
	}
	return head.Name().Short()
}

func (i *Inspector) Branches(path string) []string {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil
	}
	iter, err := repo.Branches()
	if err != nil {
		return nil
	}
	defer iter.Close()
	var names []string
	_ = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	return names
}

// ConflictedFiles lists paths with unmerged index entries, in index
// order. The unmerged entries are read through `git ls-files -u`, whose
// output is stable across git versions and locales.
func (i *Inspector) ConflictedFiles(path string) []string {
	if _, err := git.PlainOpen(path); err != nil {
		return nil
	}
	cmd := exec.Command("git", "ls-files", "-u", "-z")
	cmd.Dir = path
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	var files []string
	seen := map[string]bool{}
	for _, record := range strings.Split(string(out), "\x00") {
		// each record: "<mode> <hash> <stage>\t<path>"
		tab := strings.IndexByte(record, '\t')
		if tab < 0 {
			continue
		}
		name := record[tab+1:]
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		files = append(files, name)
	}
	return files
}

// IsBranchMerged reports whether every commit reachable from target is
// also reachable from branch, i.e. target holds no history that branch
// lacks. False on a missing branch, missing target, or any error.
func (i *Inspector) IsBranchMerged(path, branch, target string) bool {
	if target == "" {
		target = DefaultTargetBranch
	}
	repo, err := git.PlainOpen(path)
	if err != nil {
		return false
	}
	branchRef, err := repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return false
	}
	targetRef, err := repo.Reference(plumbing.NewBranchReferenceName(target), true)
	if err != nil {
		return false
	}
	unique, err := revlist.Objects(repo.Storer,
		[]plumbing.Hash{targetRef.Hash()},
		[]plumbing.Hash{branchRef.Hash()})
	if err != nil {
		return false
	}
	return len(unique) == 0
}

// RunCommand executes a single command line inside path and returns its
// textual output. Lines starting with "git" run the git binary directly;
// anything else goes through the shell. Standard error is appended to
// standard output when present. A command that cannot start yields an
// error description, never an error value.
func (i *Inspector) RunCommand(path, commandLine string) string {
	commandLine = strings.TrimSpace(commandLine)
	if commandLine == "" {
		return ""
	}

	var cmd *exec.Cmd
	tokens, err := shlex.Split(commandLine, true)
	if err == nil && len(tokens) > 0 && tokens[0] == "git" {
		cmd = exec.Command("git", tokens[1:]...)
	} else {
		cmd = exec.Command("sh", "-c", commandLine)
	}
	cmd.Dir = path

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil && stdout.Len() == 0 && stderr.Len() == 0 {
		return fmt.Sprintf("error executing command: %v", err)
	}
	if stderr.Len() == 0 {
		return stdout.String()
	}
	return stdout.String() + "\n" + stderr.String()
}
