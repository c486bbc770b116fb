package repository

import (
	"crypto_compass_backend/internal/model"

	"gorm.io/gorm"
)

type MintRepository struct {
	DB *gorm.DB
}

func NewMintRepository(db *gorm.DB) *MintRepository {
	return &MintRepository{DB: db}
}

func (r *MintRepository) Create(rec *model.MintRecord) error {
	return r.DB.Create(rec).Error
}

func (r *MintRepository) ListBySession(sessionID string) ([]model.MintRecord, error) {
	var recs []model.MintRecord
	err := r.DB.Where("session_id = ?", sessionID).Order("created_at DESC").Find(&recs).Error
	return recs, err
}

// SuccessfulForWallet reports whether wallet already minted successfully.
func (r *MintRepository) SuccessfulForWallet(wallet string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.MintRecord{}).
		Where("wallet_address = ? AND status = ?", wallet, model.MintStatusSuccess).
		Count(&count).Error
	return count > 0, err
}
