package practice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitdojo/internal/gitrepo"
	"gitdojo/internal/scenario"
)

type evalFunc func(session *Session, obj scenario.Objective) Result

// Evaluator decides whether the active objective of a session is
// satisfied. State-based checks are dispatched through a registry keyed
// by the objective's expected-result tag; file-content objectives bypass
// the registry.
type Evaluator struct {
	inspector gitrepo.Service
	registry  map[string]evalFunc
}

func NewEvaluator(inspector gitrepo.Service) *Evaluator {
	e := &Evaluator{inspector: inspector, registry: map[string]evalFunc{}}
	e.registry[scenario.ExpectMergeConflict] = e.evalMergeConflict
	e.registry[scenario.ExpectShowsConflicts] = e.evalShowsConflicts
	e.registry[scenario.ExpectFileStaged] = e.evalFileStaged
	e.registry[scenario.ExpectMergeCompleted] = e.evalMergeCompleted
	return e
}

// Evaluate runs one tick against the session's active objective. It
// never mutates the session and never panics out: an evaluation fault
// becomes a Failed result carrying the fault's message.
func (e *Evaluator) Evaluate(session *Session) (res Result) {
	obj, ok := session.Objective()

	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Status:  StatusFailed,
				Message: fmt.Sprintf("evaluation error: %v", r),
			}
			if ok {
				res.Hint = obj.Hint
			}
		}
	}()

	if !ok {
		return Result{Status: StatusCompleted, Message: "All objectives completed!"}
	}

	if strings.EqualFold(obj.ValidationType, scenario.ValidationFileContent) {
		return e.evalFileContent(session, obj)
	}

	fn, ok := e.registry[strings.ToLower(obj.ExpectedResult)]
	if !ok {
		return Result{
			Status:  StatusInProgress,
			Message: fmt.Sprintf("Please run: %s", obj.Command),
			Hint:    obj.Hint,
		}
	}
	return fn(session, obj)
}

func (e *Evaluator) evalFileContent(session *Session, obj scenario.Objective) Result {
	if obj.TargetFile == "" {
		return Result{
			Status:  StatusFailed,
			Message: "Target file not specified for file content validation",
		}
	}

	body, err := os.ReadFile(filepath.Join(session.SandboxPath, obj.TargetFile))
	if err != nil {
		return Result{
			Status:  StatusInProgress,
			Message: fmt.Sprintf("File %s not found", obj.TargetFile),
			Hint:    obj.Hint,
		}
	}

	content := strings.ToLower(string(body))
	var missing []string
	for _, want := range obj.ExpectedContentContains {
		if !strings.Contains(content, strings.ToLower(want)) {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return Result{
			Status:  StatusInProgress,
			Message: fmt.Sprintf("File content missing: %s", strings.Join(missing, ", ")),
			Hint:    obj.Hint,
		}
	}

	return Result{
		Status:        StatusCompleted,
		Message:       "File content validation passed!",
		ShouldAdvance: true,
	}
}

func (e *Evaluator) evalMergeConflict(session *Session, obj scenario.Objective) Result {
	if e.inspector.HasConflicts(session.SandboxPath) {
		return Result{
			Status:        StatusCompleted,
			Message:       "Merge conflict detected! Good, now you can practice resolving it.",
			ShouldAdvance: true,
		}
	}
	if e.inspector.IsMergeInProgress(session.SandboxPath) {
		return Result{
			Status:  StatusInProgress,
			Message: "Merge is in progress but no conflicts detected yet.",
			Hint:    obj.Hint,
		}
	}
	return Result{
		Status:  StatusInProgress,
		Message: "No merge conflict detected. Try running the merge command.",
		Hint:    obj.Hint,
	}
}

func (e *Evaluator) evalShowsConflicts(session *Session, obj scenario.Objective) Result {
	files := e.inspector.ConflictedFiles(session.SandboxPath)
	if len(files) > 0 {
		return Result{
			Status:        StatusCompleted,
			Message:       fmt.Sprintf("Conflicted files detected: %s", strings.Join(files, ", ")),
			ShouldAdvance: true,
		}
	}
	return Result{
		Status:  StatusInProgress,
		Message: "No conflicts currently showing. Run git status to check.",
		Hint:    obj.Hint,
	}
}

// file_staged means the conflicted entries were staged but the merge
// commit has not happened yet.
func (e *Evaluator) evalFileStaged(session *Session, obj scenario.Objective) Result {
	conflicted := e.inspector.ConflictedFiles(session.SandboxPath)
	if len(conflicted) == 0 && e.inspector.IsMergeInProgress(session.SandboxPath) {
		return Result{
			Status:        StatusCompleted,
			Message:       "File staged and conflicts resolved!",
			ShouldAdvance: true,
		}
	}
	return Result{
		Status:  StatusInProgress,
		Message: "File not yet staged or conflicts not resolved.",
		Hint:    obj.Hint,
	}
}

func (e *Evaluator) evalMergeCompleted(session *Session, obj scenario.Objective) Result {
	if !e.inspector.IsMergeInProgress(session.SandboxPath) && !e.inspector.HasConflicts(session.SandboxPath) {
		return Result{
			Status:        StatusCompleted,
			Message:       "Merge completed successfully!",
			ShouldAdvance: true,
		}
	}
	return Result{
		Status:  StatusInProgress,
		Message: "Merge is still in progress. Complete the merge commit.",
		Hint:    obj.Hint,
	}
}
