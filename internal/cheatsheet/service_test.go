package cheatsheet

import (
	"os"
	"path/filepath"
	"testing"
)

const testSheet = `topics:
  branching:
    title: "Branching"
    description: "Creating and switching branches"
    commands:
      - name: "git branch"
        syntax: "git branch [name]"
        description: "List, create, or delete branches"
        tags: ["branch", "list"]
        examples:
          - command: "git branch feature/login"
            description: "Create a branch named feature/login"
      - name: "git checkout"
        syntax: "git checkout <branch>"
        description: "Switch to another branch"
        tags: ["switch", "branch"]
  merging:
    title: "Merging"
    description: "Combining branch histories"
    commands:
      - name: "git merge"
        syntax: "git merge <branch>"
        description: "Merge a branch into the current branch"
        tags: ["merge", "conflict"]
`

func loadTestService(t *testing.T) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cheatsheet.yml")
	if err := os.WriteFile(path, []byte(testSheet), 0o644); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	svc, err := Load(path)
	if err != nil {
		t.Fatalf("load sheet: %v", err)
	}
	return svc
}

func TestTopicLookupIsCaseInsensitive(t *testing.T) {
	svc := loadTestService(t)

	topic := svc.Topic("Branching")
	if topic == nil {
		t.Fatalf("expected branching topic")
	}
	if topic.Title != "Branching" {
		t.Fatalf("expected title Branching, got %q", topic.Title)
	}
	if svc.Topic("rebasing") != nil {
		t.Fatalf("expected nil for unknown topic")
	}
}

func TestSearchCommandsFindsSubstringMatches(t *testing.T) {
	svc := loadTestService(t)

	results := svc.SearchCommands("merge")
	if len(results) == 0 {
		t.Fatalf("expected at least one match for merge")
	}
	if results[0].Name != "git merge" {
		t.Fatalf("expected git merge first, got %q", results[0].Name)
	}
}

func TestSearchCommandsToleratesTypos(t *testing.T) {
	svc := loadTestService(t)

	results := svc.SearchCommands("brnch")
	found := false
	for _, cmd := range results {
		if cmd.Name == "git branch" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected typo search to surface git branch, got %v", results)
	}
}

func TestSearchCommandsInTopicEmptyTermReturnsAll(t *testing.T) {
	svc := loadTestService(t)

	all := svc.SearchCommandsInTopic("branching", "")
	if len(all) != 2 {
		t.Fatalf("expected 2 commands in branching, got %d", len(all))
	}
	if svc.SearchCommandsInTopic("nope", "merge") != nil {
		t.Fatalf("expected nil for unknown topic")
	}
}

func TestFindSimilarTopics(t *testing.T) {
	svc := loadTestService(t)

	suggestions := svc.FindSimilarTopics("mergin")
	if len(suggestions) == 0 || suggestions[0] != "merging" {
		t.Fatalf("expected merging suggested first, got %v", suggestions)
	}
	if got := svc.FindSimilarTopics(""); got != nil {
		t.Fatalf("expected no suggestions for empty term, got %v", got)
	}
}

func TestLoadRejectsInvalidSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cheatsheet.yml")
	if err := os.WriteFile(path, []byte("topics: {}\n"), 0o644); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty topics")
	}
}

func TestPartialRatioBounds(t *testing.T) {
	if got := partialRatio("merge", "git merge <branch>"); got != 100 {
		t.Fatalf("expected contained term to score 100, got %d", got)
	}
	if got := partialRatio("", "anything"); got != 0 {
		t.Fatalf("expected empty term to score 0, got %d", got)
	}
	if got := partialRatio("xyz", "merge"); got >= CommandMatchThreshold {
		t.Fatalf("expected unrelated term below threshold, got %d", got)
	}
}
