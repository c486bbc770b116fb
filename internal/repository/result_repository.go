package repository

import (
	"encoding/json"

	"crypto_compass_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

// Create stores a completed result; the full Result is kept as JSON next
// to the indexed columns.
func (r *ResultRepository) Create(sessionID string, res model.Result) (*model.CompassResult, error) {
	payload, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}
	row := &model.CompassResult{
		SessionID:           sessionID,
		Orientation:         res.Orientation,
		ArchetypeID:         res.Archetype.ID,
		CentralizationScore: res.Scores.Centralization,
		PrivatePublicScore:  res.Scores.PrivatePublic,
		RawCentralization:   res.Scores.Raw.Centralization,
		RawPrivatePublic:    res.Scores.Raw.PrivatePublic,
		QuestionsAnswered:   res.Metadata.QuestionsAnswered.Total,
		Payload:             payload,
	}
	if err := r.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *ResultRepository) FindByID(id string) (*model.CompassResult, error) {
	var row model.CompassResult
	err := r.DB.First(&row, "id = ?", id).Error
	return &row, err
}

// LatestBySession returns the newest result of a session that has not been
// discarded by a reset.
func (r *ResultRepository) LatestBySession(sessionID string) (*model.CompassResult, error) {
	var row model.CompassResult
	err := r.DB.Where("session_id = ? AND discarded = ?", sessionID, false).
		Order("created_at DESC").
		First(&row).Error
	return &row, err
}

// DiscardBySession marks every stored result of a session as discarded.
func (r *ResultRepository) DiscardBySession(sessionID string) error {
	return r.DB.Model(&model.CompassResult{}).
		Where("session_id = ? AND discarded = ?", sessionID, false).
		Update("discarded", true).Error
}

// Recent returns up to limit results, newest first.
func (r *ResultRepository) Recent(limit int) ([]model.CompassResult, error) {
	var rows []model.CompassResult
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

func (r *ResultRepository) CountByArchetype() (map[string]int64, error) {
	var rows []struct {
		ArchetypeID string
		Count       int64
	}
	err := r.DB.Model(&model.CompassResult{}).
		Select("archetype_id, COUNT(*) AS count").
		Group("archetype_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.ArchetypeID] = row.Count
	}
	return out, nil
}

// DecodeResult unpacks the stored payload.
func DecodeResult(row *model.CompassResult) (model.Result, error) {
	var res model.Result
	err := json.Unmarshal(row.Payload, &res)
	return res, err
}
