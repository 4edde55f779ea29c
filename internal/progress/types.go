package progress

import "time"

// Data is the whole persistent progress document. It is written as a
// single indented JSON file so learners can inspect it directly.
type Data struct {
	Modules     map[string]*ModuleProgress   `json:"modules"`
	Practice    map[string]*PracticeProgress `json:"practice"`
	Commands    map[string]*CommandStats     `json:"commands"`
	Streaks     StreakData                   `json:"streaks"`
	Stats       UserStats                    `json:"stats"`
	LastUpdated time.Time                    `json:"last_updated"`
}

func NewData() *Data {
	return &Data{
		Modules:  map[string]*ModuleProgress{},
		Practice: map[string]*PracticeProgress{},
		Commands: map[string]*CommandStats{},
	}
}

type ModuleProgress struct {
	ModuleName     string          `json:"module_name"`
	CurrentLesson  int             `json:"current_lesson"`
	LessonAttempts []LessonAttempt `json:"lesson_attempts"`
	FirstAccessed  time.Time       `json:"first_accessed"`
	LastAccessed   time.Time       `json:"last_accessed"`
	IsCompleted    bool            `json:"is_completed"`
}

type LessonAttempt struct {
	LessonIndex   int        `json:"lesson_index"`
	StartTime     time.Time  `json:"start_time"`
	CompletedTime *time.Time `json:"completed_time,omitempty"`
	QuizScore     int        `json:"quiz_score"`
	Completed     bool       `json:"completed"`
}

// PracticeProgress accumulates every attempt at one scenario. BestScore
// is monotonically non-decreasing; BestTimeMS only improves on a faster
// completed attempt (0 means no completed attempt yet).
type PracticeProgress struct {
	ScenarioName string            `json:"scenario_name"`
	Attempts     []PracticeAttempt `json:"attempts"`
	FirstAttempt time.Time         `json:"first_attempt"`
	LastAttempt  time.Time         `json:"last_attempt"`
	Completed    bool              `json:"completed"`
	BestScore    int               `json:"best_score"`
	BestTimeMS   int64             `json:"best_time_ms"`
}

type PracticeAttempt struct {
	StartTime           time.Time  `json:"start_time"`
	CompletedTime       *time.Time `json:"completed_time,omitempty"`
	ObjectivesCompleted int        `json:"objectives_completed"`
	TotalObjectives     int        `json:"total_objectives"`
	DurationMS          int64      `json:"duration_ms"`
	Completed           bool       `json:"completed"`
	Score               int        `json:"score"`
	HintsUsed           []string   `json:"hints_used,omitempty"`
}

type CommandStats struct {
	CommandName    string    `json:"command_name"`
	UsageCount     int       `json:"usage_count"`
	SuccessfulUses int       `json:"successful_uses"`
	FailedUses     int       `json:"failed_uses"`
	FirstUsed      time.Time `json:"first_used"`
	LastUsed       time.Time `json:"last_used"`
	Topics         []string  `json:"topics,omitempty"`
}

type StreakData struct {
	CurrentStreak    int       `json:"current_streak"`
	LongestStreak    int       `json:"longest_streak"`
	LastActivityDate time.Time `json:"last_activity_date"`
	StreakStartDate  time.Time `json:"streak_start_date"`
	ActivityDates    []string  `json:"activity_dates,omitempty"`
}

type UserStats struct {
	FirstSession              time.Time `json:"first_session"`
	TotalSessions             int       `json:"total_sessions"`
	ModulesCompleted          int       `json:"modules_completed"`
	PracticeSessionsCompleted int       `json:"practice_sessions_completed"`
}
