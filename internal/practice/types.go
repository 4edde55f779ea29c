package practice

// Status is the evaluation state of a single objective. Failed is not
// terminal: the learner may retry, which re-enters InProgress.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one evaluation tick. Only Completed together
// with ShouldAdvance moves the session forward.
type Result struct {
	Status        Status
	Message       string
	Hint          string
	ShouldAdvance bool
}
