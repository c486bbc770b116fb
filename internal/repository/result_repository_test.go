package repository

import (
	"testing"
	"time"

	"crypto_compass_backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func sampleResult(orientation, archetypeID string, c, p float64) model.Result {
	return model.Result{
		Scores: model.Scores{
			Centralization: c,
			PrivatePublic:  p,
			Raw:            model.RawScores{Centralization: c, PrivatePublic: p},
		},
		Orientation: orientation,
		Archetype:   model.Archetype{ID: archetypeID},
		Metadata: model.ResultMetadata{
			QuestionsAnswered: model.AnsweredCounts{Centralization: 15, PrivatePublic: 15, Total: 30},
			Version:           model.ResultVersion,
		},
	}
}

func TestResultRepository_CreateAndDecode(t *testing.T) {
	repo := NewResultRepository(newTestDB(t))

	res := sampleResult("Moderat Descentralizat-Moderat Bun Public", "moderat-descentralizat-moderat-public", 10, 5)
	row, err := repo.Create("s1", res)
	require.NoError(t, err)
	assert.NotEmpty(t, row.ID)
	assert.Equal(t, 30, row.QuestionsAnswered)

	found, err := repo.FindByID(row.ID)
	require.NoError(t, err)
	decoded, err := DecodeResult(found)
	require.NoError(t, err)
	assert.Equal(t, res, decoded)
}

func TestResultRepository_LatestAndRecent(t *testing.T) {
	db := newTestDB(t)
	repo := NewResultRepository(db)

	first, err := repo.Create("s1", sampleResult("A", "a", 1, 1))
	require.NoError(t, err)
	second, err := repo.Create("s1", sampleResult("B", "b", 2, 2))
	require.NoError(t, err)
	_, err = repo.Create("s2", sampleResult("B", "b", 3, 3))
	require.NoError(t, err)

	// Make the ordering explicit instead of relying on clock resolution.
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(first).Update("created_at", base).Error)
	require.NoError(t, db.Model(second).Update("created_at", base.Add(time.Minute)).Error)

	latest, err := repo.LatestBySession("s1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	_, err = repo.LatestBySession("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	recent, err := repo.Recent(2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	counts, err := repo.CountByArchetype()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 1, "b": 2}, counts)
}

func TestResultRepository_DiscardBySession(t *testing.T) {
	repo := NewResultRepository(newTestDB(t))

	_, err := repo.Create("s1", sampleResult("A", "a", 1, 1))
	require.NoError(t, err)
	kept, err := repo.Create("s2", sampleResult("B", "b", 2, 2))
	require.NoError(t, err)

	require.NoError(t, repo.DiscardBySession("s1"))

	_, err = repo.LatestBySession("s1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	latest, err := repo.LatestBySession("s2")
	require.NoError(t, err)
	assert.Equal(t, kept.ID, latest.ID)

	counts, err := repo.CountByArchetype()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 1, "b": 1}, counts)

	next, err := repo.Create("s1", sampleResult("C", "c", 3, 3))
	require.NoError(t, err)
	latest, err = repo.LatestBySession("s1")
	require.NoError(t, err)
	assert.Equal(t, next.ID, latest.ID)
}

func TestMintRepository(t *testing.T) {
	repo := NewMintRepository(newTestDB(t))
	wallet := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	require.NoError(t, repo.Create(&model.MintRecord{SessionID: "s1", WalletAddress: wallet, Status: model.MintStatusFailed, Error: "rejected"}))
	ok, err := repo.SuccessfulForWallet(wallet)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Create(&model.MintRecord{SessionID: "s1", WalletAddress: wallet, Status: model.MintStatusSuccess, TransactionHash: "0xabc"}))
	ok, err = repo.SuccessfulForWallet(wallet)
	require.NoError(t, err)
	assert.True(t, ok)

	recs, err := repo.ListBySession("s1")
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	recs, err = repo.ListBySession("s2")
	require.NoError(t, err)
	assert.Empty(t, recs)
}
