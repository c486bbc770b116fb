package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"crypto_compass_backend/internal/compass"
	"crypto_compass_backend/internal/config"
	"crypto_compass_backend/internal/model"
	"crypto_compass_backend/internal/repository"
	"crypto_compass_backend/internal/util"
	"crypto_compass_backend/pkg/logger"
	"crypto_compass_backend/pkg/monitoring"
	"crypto_compass_backend/pkg/tracing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	NavigateNext     = "next"
	NavigatePrevious = "previous"
	NavigateGoTo     = "goto"
)

// QuizState is what the client needs to render the test.
type QuizState struct {
	SessionID       string                 `json:"sessionId"`
	Questions       []model.Question       `json:"questions"`
	CurrentQuestion int                    `json:"currentQuestion"`
	Current         *model.Question        `json:"current,omitempty"`
	Answers         model.AnswerSet        `json:"answers"`
	Statistics      compass.TestStatistics `json:"statistics"`
	NextUnanswered  int                    `json:"nextUnanswered"`
	CanProceed      bool                   `json:"canProceed"`
	CanComplete     bool                   `json:"canComplete"`
	Completed       bool                   `json:"completed"`
	Restored        bool                   `json:"restored"`
}

// CompletedTest is the result of a finished test plus its chart placement.
type CompletedTest struct {
	ResultID        string           `json:"resultId,omitempty"`
	Result          model.Result     `json:"result"`
	Position        compass.Position `json:"position"`
	Quadrant        compass.Quadrant `json:"quadrant"`
	Recommendations []string         `json:"recommendations"`
}

type liveSession struct {
	state    compass.Session
	resultID string
	touched  time.Time
}

// QuizService drives test sessions. Live sessions are kept in memory and
// mirrored to the progress store so they survive restarts; persistence
// failures are logged and never fail the request.
type QuizService struct {
	Progress *repository.ProgressRepository
	Results  *repository.ResultRepository
	Config   config.QuizConfig
	Rand     compass.Source

	mu        sync.Mutex
	sessions  map[string]*liveSession
	now       func() time.Time
	stop      chan struct{}
	stopOnce  sync.Once
	janitorWG sync.WaitGroup
}

func NewQuizService(progress *repository.ProgressRepository, results *repository.ResultRepository, cfg config.QuizConfig) *QuizService {
	if cfg.QuestionsPerDimension <= 0 {
		cfg.QuestionsPerDimension = compass.QuestionsPerDimension
	}
	s := &QuizService{
		Progress: progress,
		Results:  results,
		Config:   cfg,
		sessions: make(map[string]*liveSession),
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	s.janitorWG.Add(1)
	go s.janitor()
	return s
}

// Close stops the background eviction of idle sessions.
func (s *QuizService) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
	s.janitorWG.Wait()
}

func (s *QuizService) ttl() time.Duration {
	if d := s.Config.ProgressTTL(); d > 0 {
		return d
	}
	return repository.DefaultProgressTTL
}

func (s *QuizService) janitor() {
	defer s.janitorWG.Done()
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

func (s *QuizService) evictIdle() {
	cutoff := s.now().Add(-s.ttl())
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ls := range s.sessions {
		if ls.touched.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func (s *QuizService) put(sessionID string, sess compass.Session, resultID string) {
	s.mu.Lock()
	s.sessions[sessionID] = &liveSession{state: sess, resultID: resultID, touched: s.now()}
	s.mu.Unlock()
}

// load returns the live session, restoring it from saved progress when it
// is not in memory. restored reports whether the progress store was used.
func (s *QuizService) load(ctx context.Context, sessionID string) (sess compass.Session, resultID string, restored bool, err error) {
	s.mu.Lock()
	ls, ok := s.sessions[sessionID]
	if ok {
		ls.touched = s.now()
		sess, resultID = ls.state, ls.resultID
	}
	s.mu.Unlock()
	if ok {
		return sess, resultID, false, nil
	}

	p, err := s.Progress.LoadProgress(ctx, sessionID)
	if err != nil {
		monitoring.ProgressRestores.WithLabelValues("error").Inc()
		logger.Log.Warn("Failed to load test progress", zap.String("session", sessionID), zap.Error(err))
		return compass.Session{}, "", false, util.ErrTestNotStarted
	}
	if p == nil || len(p.Questions) == 0 {
		monitoring.ProgressRestores.WithLabelValues("absent").Inc()
		return compass.Session{}, "", false, util.ErrTestNotStarted
	}

	monitoring.ProgressRestores.WithLabelValues("restored").Inc()
	sess = compass.Restore(*p)
	s.put(sessionID, sess, "")
	return sess, "", true, nil
}

func (s *QuizService) saveProgress(ctx context.Context, sessionID string, sess compass.Session) {
	if err := s.Progress.SaveProgress(ctx, sessionID, sess.Progress(s.now())); err != nil {
		monitoring.PersistenceFailures.WithLabelValues("save_progress").Inc()
		logger.Log.Warn("Failed to save test progress", zap.String("session", sessionID), zap.Error(err))
	}
}

func (s *QuizService) clearProgress(ctx context.Context, sessionID string) {
	if err := s.Progress.ClearProgress(ctx, sessionID); err != nil {
		monitoring.PersistenceFailures.WithLabelValues("clear_progress").Inc()
		logger.Log.Warn("Failed to clear test progress", zap.String("session", sessionID), zap.Error(err))
	}
}

func stateOf(sessionID string, sess compass.Session, restored bool) *QuizState {
	st := &QuizState{
		SessionID:       sessionID,
		Questions:       sess.Questions,
		CurrentQuestion: sess.CurrentQuestion,
		Answers:         sess.Answers,
		Statistics:      compass.ProgressStatistics(sess.Answers, sess.Questions),
		NextUnanswered:  compass.NextUnansweredIndex(sess.Answers, sess.Questions),
		CanProceed:      sess.CanProceed(),
		CanComplete:     sess.CanComplete(),
		Completed:       sess.Completed,
		Restored:        restored,
	}
	if q, ok := sess.Current(); ok {
		st.Current = &q
	}
	return st
}

// Start hands out a fresh question set and discards any previous attempt.
func (s *QuizService) Start(ctx context.Context, sessionID string) (*QuizState, error) {
	ctx, span := tracing.StartSpan(ctx, "QuizService.Start", sessionID)
	defer tracing.EndSpan(span, nil)

	s.mu.Lock()
	set := compass.GenerateQuestionSetN(s.Rand, s.Config.QuestionsPerDimension)
	s.mu.Unlock()

	sess := compass.Session{}.Start(set)
	s.put(sessionID, sess, "")
	s.saveProgress(ctx, sessionID, sess)

	monitoring.TestsStarted.Inc()
	logger.Log.Debug("Test started", zap.String("session", sessionID), zap.Int("questions", len(set)))
	return stateOf(sessionID, sess, false), nil
}

// State returns the current test, resuming saved progress if needed.
func (s *QuizService) State(ctx context.Context, sessionID string) (*QuizState, error) {
	sess, _, restored, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return stateOf(sessionID, sess, restored), nil
}

// Answer records value for questionID. Out of range values are returned as
// *compass.InvalidValueError.
func (s *QuizService) Answer(ctx context.Context, sessionID, questionID string, value int) (st *QuizState, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizService.Answer", sessionID)
	defer func() { tracing.EndSpan(span, err) }()

	sess, resultID, _, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Completed {
		return nil, util.ErrTestAlreadyCompleted
	}
	if !containsQuestion(sess.Questions, questionID) {
		return nil, util.ErrQuestionNotInTest
	}

	next, err := sess.Answer(questionID, value, s.now())
	if err != nil {
		monitoring.AnswersRecorded.WithLabelValues("invalid").Inc()
		return nil, err
	}

	s.put(sessionID, next, resultID)
	s.saveProgress(ctx, sessionID, next)
	monitoring.AnswersRecorded.WithLabelValues("accepted").Inc()
	return stateOf(sessionID, next, false), nil
}

func containsQuestion(set []model.Question, id string) bool {
	for _, q := range set {
		if q.ID == id {
			return true
		}
	}
	return false
}

// Navigate moves the cursor. Moves past either end leave it unchanged.
func (s *QuizService) Navigate(ctx context.Context, sessionID, action string, index int) (*QuizState, error) {
	sess, resultID, _, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var next compass.Session
	switch action {
	case NavigateNext:
		next = sess.Next()
	case NavigatePrevious:
		next = sess.Previous()
	case NavigateGoTo:
		next = sess.GoTo(index)
	default:
		return nil, util.ErrInvalidNavigation
	}

	if next.CurrentQuestion != sess.CurrentQuestion {
		s.put(sessionID, next, resultID)
		if !next.Completed {
			s.saveProgress(ctx, sessionID, next)
		}
	}
	return stateOf(sessionID, next, false), nil
}

// Complete scores a fully answered test. Calling it again returns the
// same result.
func (s *QuizService) Complete(ctx context.Context, sessionID string) (out *CompletedTest, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizService.Complete", sessionID)
	defer func() { tracing.EndSpan(span, err) }()

	sess, resultID, _, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Completed && sess.Result != nil {
		return completed(resultID, *sess.Result), nil
	}
	if !sess.CanComplete() {
		return nil, util.ErrTestIncomplete
	}

	result := compass.CalculateResults(sess.Answers, sess.Questions)
	done := sess.Complete(result)

	if err := s.Progress.SaveLastResult(ctx, sessionID, result); err != nil {
		monitoring.PersistenceFailures.WithLabelValues("save_last_result").Inc()
		logger.Log.Warn("Failed to save last result", zap.String("session", sessionID), zap.Error(err))
	}
	if s.Results != nil {
		row, err := s.Results.Create(sessionID, result)
		if err != nil {
			monitoring.PersistenceFailures.WithLabelValues("store_result").Inc()
			logger.Log.Warn("Failed to store result", zap.String("session", sessionID), zap.Error(err))
		} else {
			resultID = row.ID
		}
	}
	s.clearProgress(ctx, sessionID)
	s.put(sessionID, done, resultID)

	monitoring.TestsCompleted.WithLabelValues(result.Archetype.ID).Inc()
	logger.Log.Info("Test completed",
		zap.String("session", sessionID),
		zap.String("orientation", result.Orientation),
		zap.String("archetype", result.Archetype.ID),
	)
	return completed(resultID, result), nil
}

func completed(resultID string, r model.Result) *CompletedTest {
	return &CompletedTest{
		ResultID:        resultID,
		Result:          r,
		Position:        compass.CompassPosition(r.Scores.Raw.Centralization, r.Scores.Raw.PrivatePublic, compass.DefaultCompassSize),
		Quadrant:        compass.QuadrantFor(r.Scores.Raw.Centralization, r.Scores.Raw.PrivatePublic),
		Recommendations: compass.Recommendations(&r),
	}
}

// Reset drops the live test, its saved progress and the last result.
// Stored results are kept for statistics but no longer count as the
// session's last result.
func (s *QuizService) Reset(ctx context.Context, sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	s.clearProgress(ctx, sessionID)
	if err := s.Progress.ClearLastResult(ctx, sessionID); err != nil {
		monitoring.PersistenceFailures.WithLabelValues("clear_last_result").Inc()
		logger.Log.Warn("Failed to clear last result", zap.String("session", sessionID), zap.Error(err))
	}
	if s.Results != nil {
		if err := s.Results.DiscardBySession(sessionID); err != nil {
			monitoring.PersistenceFailures.WithLabelValues("discard_result").Inc()
			logger.Log.Warn("Failed to discard stored results", zap.String("session", sessionID), zap.Error(err))
		}
	}
}

// LastResult looks in memory, then the KV store, then the non-discarded
// results in the database.
func (s *QuizService) LastResult(ctx context.Context, sessionID string) (*model.Result, string, error) {
	s.mu.Lock()
	ls, ok := s.sessions[sessionID]
	if ok && ls.state.Completed && ls.state.Result != nil {
		r, id := *ls.state.Result, ls.resultID
		s.mu.Unlock()
		return &r, id, nil
	}
	s.mu.Unlock()

	r, err := s.Progress.LoadLastResult(ctx, sessionID)
	if err != nil {
		logger.Log.Warn("Failed to load last result", zap.String("session", sessionID), zap.Error(err))
	}
	if r != nil {
		return r, "", nil
	}

	if s.Results == nil {
		return nil, "", util.ErrNoResult
	}
	row, err := s.Results.LatestBySession(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", util.ErrNoResult
	}
	if err != nil {
		return nil, "", err
	}
	decoded, err := repository.DecodeResult(row)
	if err != nil {
		return nil, "", err
	}
	return &decoded, row.ID, nil
}
