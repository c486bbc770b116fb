package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"crypto_compass_backend/internal/config"
	"crypto_compass_backend/internal/model"
	"crypto_compass_backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	Store    *repository.MemoryKVStore
	Progress *repository.ProgressRepository
	Results  *repository.ResultRepository
	Mints    *repository.MintRepository
	Quiz     *QuizService
}

func testQuizConfig() config.QuizConfig {
	return config.QuizConfig{
		QuestionsPerDimension: 15,
		ProgressTTLHours:      24,
		StatisticsLimit:       100,
		ShareBaseURL:          "https://compass.example",
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.CompassResult{}, &model.MintRecord{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	store := repository.NewMemoryKVStore()
	env := &testEnv{
		Store:    store,
		Progress: repository.NewProgressRepository(store, 24*time.Hour),
		Results:  repository.NewResultRepository(db),
		Mints:    repository.NewMintRepository(db),
	}
	env.Quiz = env.newQuiz(t)
	return env
}

// newQuiz builds a second service over the same stores, as after a restart.
func (e *testEnv) newQuiz(t *testing.T) *QuizService {
	q := NewQuizService(e.Progress, e.Results, testQuizConfig())
	q.Rand = rand.New(rand.NewPCG(11, 13))
	t.Cleanup(q.Close)
	return q
}

func answerAll(t *testing.T, q *QuizService, sessionID string, value int) *QuizState {
	t.Helper()
	st, err := q.State(context.Background(), sessionID)
	require.NoError(t, err)
	for _, question := range st.Questions {
		st, err = q.Answer(context.Background(), sessionID, question.ID, value)
		require.NoError(t, err)
	}
	return st
}

// failingStore rejects every write.
type failingStore struct {
	*repository.MemoryKVStore
}

var errStoreDown = errors.New("store down")

func (f failingStore) Set(context.Context, string, string, time.Duration) error {
	return errStoreDown
}
