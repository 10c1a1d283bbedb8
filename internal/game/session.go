package game

import (
	"errors"
	"sync"
	"time"

	"github.com/GinYoshida/kanji-quize/internal/model"
)

type State string

const (
	StateLoading   State = "loading"
	StatePlaying   State = "playing"
	StateFeedback  State = "feedback"
	StateComplete  State = "complete"
	StateAbandoned State = "abandoned"
)

type Feedback string

const (
	FeedbackNone      Feedback = ""
	FeedbackCorrect   Feedback = "correct"
	FeedbackIncorrect Feedback = "incorrect"
)

var (
	ErrNotComplete = errors.New("session is not complete")
	ErrNotLoading  = errors.New("session already loaded")
)

// Config tunes the feedback dwell before auto-advancing.
type Config struct {
	FeedbackCorrect   time.Duration
	FeedbackIncorrect time.Duration
}

// Scheduler runs f after d. Production uses time.AfterFunc; tests inject a
// synchronous fake.
type Scheduler func(d time.Duration, f func())

// Session drives one play-through:
// loading → playing → (feedback → playing)* → complete.
// All transitions are serialized behind the mutex, and every transition
// bumps gen so a dwell timer that fires late can recognize it is stale and
// leave the session alone.
type Session struct {
	mu sync.Mutex

	ID     string
	UserID string

	questions []model.QuizQuestion
	index     int
	score     int
	state     State
	feedback  Feedback
	gen       uint64

	cfg       Config
	schedule  Scheduler
	lastTouch time.Time
}

func NewSession(id, userID string, cfg Config) *Session {
	return &Session{
		ID:        id,
		UserID:    userID,
		state:     StateLoading,
		cfg:       cfg,
		schedule:  func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		lastTouch: time.Now(),
	}
}

// SetScheduler replaces the dwell timer implementation. Test hook.
func (s *Session) SetScheduler(schedule Scheduler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = schedule
}

// Load hands the fetched question sequence to the session. An empty
// sequence completes immediately with TotalQuestions = 0 rather than
// entering playing; a failed fetch upstream is expressed as Load(nil).
func (s *Session) Load(questions []model.QuizQuestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading {
		return ErrNotLoading
	}
	s.questions = questions
	s.gen++
	s.lastTouch = time.Now()
	if len(questions) == 0 {
		s.state = StateComplete
		return nil
	}
	s.state = StatePlaying
	return nil
}

// AnswerResult reports what one answer did to the session.
type AnswerResult struct {
	Correct   bool
	Celebrate bool
	Score     int
	Feedback  Feedback
}

// SubmitAnswer scores the selected kanji against the current question.
// Only valid while playing; any other state is a no-op and returns false.
func (s *Session) SubmitAnswer(selected string) (AnswerResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying || s.index >= len(s.questions) {
		return AnswerResult{}, false
	}

	current := s.questions[s.index]
	dwell := s.cfg.FeedbackIncorrect
	result := AnswerResult{}

	if selected == current.Kanji {
		s.score++
		s.feedback = FeedbackCorrect
		// the caller owns the actual confetti
		result.Correct = true
		result.Celebrate = true
		dwell = s.cfg.FeedbackCorrect
	} else {
		s.feedback = FeedbackIncorrect
	}

	s.state = StateFeedback
	s.gen++
	s.lastTouch = time.Now()

	result.Score = s.score
	result.Feedback = s.feedback

	gen := s.gen
	s.schedule(dwell, func() { s.advance(gen) })

	return result, true
}

// advance clears feedback and moves to the next question or completes.
// Called from the dwell timer; the generation check makes a timer that
// outlived its transition (answered again, abandoned, swept) a no-op.
func (s *Session) advance(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen || s.state != StateFeedback {
		return
	}

	s.feedback = FeedbackNone
	s.gen++
	s.lastTouch = time.Now()
	if s.index < len(s.questions)-1 {
		s.index++
		s.state = StatePlaying
	} else {
		s.state = StateComplete
	}
}

// Summary is the hand-off payload for log creation.
type Summary struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"totalQuestions"`
}

// Finish packages the outcome. Valid only once the session is complete;
// persisting the log and any retry on failure belong to the caller.
func (s *Session) Finish() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateComplete {
		return Summary{}, ErrNotComplete
	}
	return Summary{Score: s.score, TotalQuestions: len(s.questions)}, nil
}

// Abandon terminates the session. Pending dwell timers become stale.
func (s *Session) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.state = StateAbandoned
	s.feedback = FeedbackNone
}

// Snapshot is a read-only view for clients polling session state.
type Snapshot struct {
	ID              string              `json:"id"`
	State           State               `json:"state"`
	Feedback        Feedback            `json:"feedback,omitempty"`
	Score           int                 `json:"score"`
	CurrentIndex    int                 `json:"currentIndex"`
	TotalQuestions  int                 `json:"totalQuestions"`
	CurrentQuestion *model.QuizQuestion `json:"currentQuestion,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:             s.ID,
		State:          s.state,
		Feedback:       s.feedback,
		Score:          s.score,
		CurrentIndex:   s.index,
		TotalQuestions: len(s.questions),
	}
	if (s.state == StatePlaying || s.state == StateFeedback) && s.index < len(s.questions) {
		q := s.questions[s.index]
		snap.CurrentQuestion = &q
	}
	return snap
}

// State returns the current state. Primarily for tests and the sweeper.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastTouch)
}
