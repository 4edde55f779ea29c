package practice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"gitdojo/internal/gitrepo"
	"gitdojo/internal/telemetry"
)

// ErrScenarioNotFound is returned when no definition matches the
// requested scenario name. It is the only fatal outcome of starting a
// session.
var ErrScenarioNotFound = errors.New("scenario not found")

// DefaultPollInterval is the fixed delay between evaluation ticks of the
// interactive loop. The repository has no change notification to
// subscribe to, so the loop polls.
const DefaultPollInterval = 2 * time.Second

// The sandbox identity is fixed so practice commits never pick up the
// learner's real configuration.
const (
	practiceUserName  = "Git Dojo Practice"
	practiceUserEmail = "practice@gitdojo.local"
)

// Runner owns the sandbox lifecycle for practice sessions: it provisions
// the working copy, drives setup, runs the poll-evaluate-advance loop,
// and hands attempt summaries to the recorder.
type Runner struct {
	Scenarios ScenarioSource
	Inspector gitrepo.Service
	Judge     ObjectiveJudge
	Recorder  AttemptRecorder
	Journal   RunJournal
	Presenter Presenter
	Log       *telemetry.Logger

	// Confirm asks the learner whether to retry after a failed
	// evaluation. Declining is the only mid-loop cancellation path.
	Confirm func(prompt string) bool

	PollInterval time.Duration
	SandboxRoot  string

	// KeepSandbox leaves the working copy on disk after a completed
	// run. Abandoned runs always keep it so the learner can return.
	KeepSandbox bool

	now   func() time.Time
	sleep func(time.Duration)
}

func NewRunner(src ScenarioSource, inspector gitrepo.Service, recorder AttemptRecorder, presenter Presenter, log *telemetry.Logger) *Runner {
	if log == nil {
		log = telemetry.Nop()
	}
	return &Runner{
		Scenarios:    src,
		Inspector:    inspector,
		Judge:        NewEvaluator(inspector),
		Recorder:     recorder,
		Presenter:    presenter,
		Log:          log,
		Confirm:      func(string) bool { return false },
		PollInterval: DefaultPollInterval,
		SandboxRoot:  filepath.Join(os.TempDir(), "gitdojo", "practice"),
		KeepSandbox:  true,
		now:          time.Now,
		sleep:        time.Sleep,
	}
}

// StartScenario loads the definition and prepares a clean sandbox path
// for it. An existing directory at the computed path is destroyed first;
// starting a scenario never appends to leftover state.
func (r *Runner) StartScenario(name, sandboxOverride string) (*Session, error) {
	def := r.Scenarios.LoadScenario(name)
	if def == nil {
		return nil, fmt.Errorf("%w: %s", ErrScenarioNotFound, name)
	}

	start := r.now()
	sandboxPath := sandboxOverride
	if sandboxPath == "" {
		sandboxPath = filepath.Join(r.SandboxRoot, fmt.Sprintf("%s_%s", name, start.Format("20060102_150405")))
	}
	if err := os.RemoveAll(sandboxPath); err != nil {
		return nil, fmt.Errorf("reset sandbox %s: %w", sandboxPath, err)
	}

	return NewSession(name, sandboxPath, def, start), nil
}

// SetupScenario initializes the sandbox repository, pins the practice
// identity, and runs every setup step in order. Individual step failures
// are logged and skipped; only a failure to provision the repository
// itself makes the whole setup fail. Setup steps are written to the run
// journal under runID.
func (r *Runner) SetupScenario(ctx context.Context, session *Session, runID int64) bool {
	if err := r.Inspector.InitializeRepository(session.SandboxPath); err != nil {
		r.Log.Error("sandbox init failed", map[string]any{"scenario": session.ScenarioName, "error": err.Error()})
		return false
	}

	r.Inspector.RunCommand(session.SandboxPath, fmt.Sprintf("git config user.name %q", practiceUserName))
	r.Inspector.RunCommand(session.SandboxPath, fmt.Sprintf("git config user.email %q", practiceUserEmail))

	for _, step := range session.Scenario.Setup {
		out := r.Inspector.RunCommand(session.SandboxPath, step.Command)
		r.journalCommand(ctx, runID, step.Command)
		if strings.Contains(strings.ToLower(out), "error") {
			r.Log.Info("setup step reported error output", map[string]any{
				"scenario": session.ScenarioName,
				"command":  step.Command,
				"output":   strings.TrimSpace(out),
			})
		}
	}
	return true
}

// RunScenario is the top-level entry: provision, set up, run the chosen
// mode, record the attempt. Setup failure is a displayed early return,
// not an error.
func (r *Runner) RunScenario(ctx context.Context, name string, interactive bool, sandboxOverride string) error {
	session, err := r.StartScenario(name, sandboxOverride)
	if err != nil {
		return err
	}

	r.Recorder.StartAttempt(name)
	r.Presenter.ShowIntro(session.Scenario)

	mode := "unattended"
	if interactive {
		mode = "interactive"
	}
	runID := int64(-1)
	if r.Journal != nil {
		id, err := r.Journal.StartRun(ctx, uuid.New().String(), name, mode, session.StartTime)
		if err != nil {
			r.Log.Error("journal start failed", map[string]any{"error": err.Error()})
		} else {
			runID = id
		}
	}

	if !r.SetupScenario(ctx, session, runID) {
		r.Presenter.ShowError("Failed to setup practice scenario.")
		r.Recorder.CompleteAttempt(name, 0, session.TotalObjectives(), false, nil)
		r.finishJournal(ctx, runID, session)
		return nil
	}

	r.Presenter.ShowSandbox(session.SandboxPath)

	if interactive {
		r.runInteractive(ctx, session)
	} else {
		r.Presenter.ShowObjectiveList(session)
	}

	r.finishJournal(ctx, runID, session)

	if !r.KeepSandbox && session.Completed {
		if err := os.RemoveAll(session.SandboxPath); err != nil {
			r.Log.Error("sandbox cleanup failed", map[string]any{"path": session.SandboxPath, "error": err.Error()})
		} else {
			// An empty path tells the summary there is nothing left
			// to point at.
			session.SandboxPath = ""
		}
	}

	r.Presenter.ShowSummary(session)
	return nil
}

// runInteractive polls the active objective until the session completes
// or the learner gives up. Ticks are strictly sequential: each one
// evaluates, displays, then sleeps the poll interval.
func (r *Runner) runInteractive(ctx context.Context, session *Session) {
	hintSeen := map[string]bool{}
	var hintsUsed []string
	aborted := false

	for !session.Completed && !aborted {
		r.Presenter.ShowObjective(session)
		last := Result{Status: StatusNotStarted}

		for {
			if ctx.Err() != nil {
				aborted = true
				break
			}

			res := r.Judge.Evaluate(session)
			if res.Status != last.Status || res.Message != last.Message {
				r.Presenter.ShowResult(res)
			}
			last = res

			if res.Hint != "" && res.Status != StatusCompleted && !hintSeen[res.Hint] {
				hintSeen[res.Hint] = true
				hintsUsed = append(hintsUsed, res.Hint)
			}

			if res.Status == StatusCompleted && res.ShouldAdvance {
				session.Advance()
				break
			}
			if res.Status == StatusFailed && !r.Confirm("Would you like to try again?") {
				aborted = true
				break
			}

			r.sleep(r.PollInterval)
		}
	}

	r.Recorder.CompleteAttempt(session.ScenarioName,
		len(session.CompletedObjectives), session.TotalObjectives(),
		session.Completed, hintsUsed)
}

func (r *Runner) journalCommand(ctx context.Context, runID int64, command string) {
	if r.Journal == nil || runID < 0 {
		return
	}
	if err := r.Journal.RecordCommand(ctx, runID, command); err != nil {
		r.Log.Error("journal command failed", map[string]any{"error": err.Error()})
	}
}

func (r *Runner) finishJournal(ctx context.Context, runID int64, session *Session) {
	if r.Journal == nil || runID < 0 {
		return
	}
	err := r.Journal.FinishRun(ctx, runID,
		len(session.CompletedObjectives), session.TotalObjectives(), session.Completed)
	if err != nil {
		r.Log.Error("journal finish failed", map[string]any{"error": err.Error()})
	}
}
