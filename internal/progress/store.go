package progress

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gitdojo/internal/telemetry"
)

// Scoring policy for completed practice attempts. The values come with
// the product, not from any measurable rationale; keep them named.
const (
	completionScoreFloor = 70 // a completed run starts no lower than this
	hintPenaltyPoints    = 5  // per distinct hint surfaced
	maxHintPenalty       = 30
	completedMinScore    = 50 // floor after hint penalties
)

const dayLayout = "2006-01-02"

// Store owns the persistent progress document. It is the only writer;
// every mutation is followed by a best-effort save of the whole
// document. Concurrent sessions are serialized by the mutex, matching
// the human-paced update frequency.
type Store struct {
	mu   sync.Mutex
	path string
	log  *telemetry.Logger
	data *Data
	now  func() time.Time
}

// NewStore loads the document at path, starting fresh when it is
// missing or unreadable. Read failures are never fatal.
func NewStore(path string, log *telemetry.Logger) *Store {
	if log == nil {
		log = telemetry.Nop()
	}
	s := &Store{path: path, log: log, now: time.Now}
	s.data = s.load()
	return s
}

func (s *Store) load() *Data {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return NewData()
	}
	data := NewData()
	if err := json.Unmarshal(b, data); err != nil {
		s.log.Error("progress file unreadable, starting fresh", map[string]any{"path": s.path, "error": err.Error()})
		return NewData()
	}
	if data.Modules == nil {
		data.Modules = map[string]*ModuleProgress{}
	}
	if data.Practice == nil {
		data.Practice = map[string]*PracticeProgress{}
	}
	if data.Commands == nil {
		data.Commands = map[string]*CommandStats{}
	}
	return data
}

// save persists the whole document. Failures are logged and swallowed:
// progress tracking must never interrupt the learning flow, at the
// accepted risk of losing the latest update. Callers hold the mutex.
func (s *Store) save() {
	s.data.LastUpdated = s.now()
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		s.log.Error("progress encode failed", map[string]any{"error": err.Error()})
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Error("progress dir create failed", map[string]any{"error": err.Error()})
		return
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		s.log.Error("progress save failed", map[string]any{"path": s.path, "error": err.Error()})
	}
}

// StartAttempt appends a new in-flight attempt for the scenario,
// creating its progress record on first contact.
func (s *Store) StartAttempt(scenarioName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.recordActivity(now)

	rec, ok := s.data.Practice[scenarioName]
	if !ok {
		rec = &PracticeProgress{ScenarioName: scenarioName, FirstAttempt: now}
		s.data.Practice[scenarioName] = rec
	}
	rec.LastAttempt = now
	rec.Attempts = append(rec.Attempts, PracticeAttempt{StartTime: now})
	s.save()
}

// CompleteAttempt finalizes the most recent attempt for the scenario
// and rolls its score into the cumulative record.
func (s *Store) CompleteAttempt(scenarioName string, objectivesCompleted, totalObjectives int, completed bool, hintsUsed []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.data.Practice[scenarioName]
	if !ok || len(rec.Attempts) == 0 {
		return
	}
	attempt := &rec.Attempts[len(rec.Attempts)-1]

	now := s.now()
	attempt.CompletedTime = &now
	attempt.ObjectivesCompleted = objectivesCompleted
	attempt.TotalObjectives = totalObjectives
	attempt.Completed = completed
	attempt.HintsUsed = hintsUsed
	attempt.DurationMS = now.Sub(attempt.StartTime).Milliseconds()
	attempt.Score = scoreAttempt(objectivesCompleted, totalObjectives, completed, len(hintsUsed))

	if completed {
		rec.Completed = true
		s.data.Stats.PracticeSessionsCompleted++
		if attempt.Score > rec.BestScore {
			rec.BestScore = attempt.Score
		}
		if rec.BestTimeMS == 0 || attempt.DurationMS < rec.BestTimeMS {
			rec.BestTimeMS = attempt.DurationMS
		}
	}
	s.save()
}

// scoreAttempt maps one attempt onto 0..100. An incomplete attempt
// scores its raw completion ratio with no floor; a completed attempt is
// floored at completionScoreFloor, loses capped hint penalties, and
// never ends below completedMinScore.
func scoreAttempt(objectivesCompleted, totalObjectives int, completed bool, hintCount int) int {
	if totalObjectives == 0 {
		return 0
	}
	score := int(math.Round(float64(objectivesCompleted) / float64(totalObjectives) * 100))
	if !completed {
		return score
	}
	if score < completionScoreFloor {
		score = completionScoreFloor
	}
	penalty := hintCount * hintPenaltyPoints
	if penalty > maxHintPenalty {
		penalty = maxHintPenalty
	}
	score -= penalty
	if score < completedMinScore {
		score = completedMinScore
	}
	return score
}

// UpdateLessonProgress records one lesson attempt inside a module,
// creating the module record on first contact.
func (s *Store) UpdateLessonProgress(moduleName string, lessonIndex int, quizScore int, completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.recordActivity(now)

	mod, ok := s.data.Modules[moduleName]
	if !ok {
		mod = &ModuleProgress{ModuleName: moduleName, FirstAccessed: now}
		s.data.Modules[moduleName] = mod
	}
	mod.LastAccessed = now
	mod.CurrentLesson = lessonIndex + 1

	for i := range mod.LessonAttempts {
		if mod.LessonAttempts[i].LessonIndex == lessonIndex {
			if completed && !mod.LessonAttempts[i].Completed {
				mod.LessonAttempts[i].Completed = true
				mod.LessonAttempts[i].CompletedTime = &now
				mod.LessonAttempts[i].QuizScore = quizScore
			}
			s.save()
			return
		}
	}

	attempt := LessonAttempt{LessonIndex: lessonIndex, StartTime: now, QuizScore: quizScore, Completed: completed}
	if completed {
		attempt.CompletedTime = &now
	}
	mod.LessonAttempts = append(mod.LessonAttempts, attempt)
	s.save()
}

func (s *Store) MarkModuleCompleted(moduleName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mod, ok := s.data.Modules[moduleName]
	if !ok {
		return
	}
	if !mod.IsCompleted {
		mod.IsCompleted = true
		s.data.Stats.ModulesCompleted++
	}
	mod.LastAccessed = s.now()
	s.save()
}

func (s *Store) RecordCommandUsage(commandName, topic string, successful bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stats, ok := s.data.Commands[commandName]
	if !ok {
		stats = &CommandStats{CommandName: commandName, FirstUsed: now}
		s.data.Commands[commandName] = stats
	}
	stats.LastUsed = now
	stats.UsageCount++
	if successful {
		stats.SuccessfulUses++
	} else {
		stats.FailedUses++
	}
	if topic != "" && !contains(stats.Topics, topic) {
		stats.Topics = append(stats.Topics, topic)
	}
	s.save()
}

// recordActivity maintains the daily streak. Callers hold the mutex.
func (s *Store) recordActivity(now time.Time) {
	today := now.Format(dayLayout)
	if s.data.Stats.FirstSession.IsZero() {
		s.data.Stats.FirstSession = now
	}

	last := s.data.Streaks.LastActivityDate
	if !last.IsZero() && last.Format(dayLayout) == today {
		return
	}

	yesterday := now.AddDate(0, 0, -1).Format(dayLayout)
	switch {
	case !last.IsZero() && last.Format(dayLayout) == yesterday:
		s.data.Streaks.CurrentStreak++
	default:
		s.data.Streaks.CurrentStreak = 1
		s.data.Streaks.StreakStartDate = now
	}

	s.data.Streaks.LastActivityDate = now
	if s.data.Streaks.CurrentStreak > s.data.Streaks.LongestStreak {
		s.data.Streaks.LongestStreak = s.data.Streaks.CurrentStreak
	}
	if !contains(s.data.Streaks.ActivityDates, today) {
		s.data.Streaks.ActivityDates = append(s.data.Streaks.ActivityDates, today)
	}
	s.data.Stats.TotalSessions++
}

// Snapshot returns a decoded copy of the current document for rendering.
func (s *Store) Snapshot() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := json.Marshal(s.data)
	if err != nil {
		return *NewData()
	}
	out := NewData()
	if err := json.Unmarshal(b, out); err != nil {
		return *NewData()
	}
	return *out
}

func (s *Store) ResetModule(moduleName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.Modules[moduleName]; !ok {
		return
	}
	delete(s.data.Modules, moduleName)
	s.save()
}

func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = NewData()
	s.save()
}

func contains(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}
