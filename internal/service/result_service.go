package service

import (
	"context"
	"strings"

	"crypto_compass_backend/internal/compass"
	"crypto_compass_backend/internal/config"
	"crypto_compass_backend/internal/model"
	"crypto_compass_backend/internal/repository"
	"crypto_compass_backend/internal/util"
	"crypto_compass_backend/pkg/logger"

	"go.uber.org/zap"
)

type ResultService struct {
	Quiz    *QuizService
	Results *repository.ResultRepository
	Config  config.QuizConfig
}

func NewResultService(quiz *QuizService, results *repository.ResultRepository, cfg config.QuizConfig) *ResultService {
	return &ResultService{Quiz: quiz, Results: results, Config: cfg}
}

// LastResult returns the session's latest result with chart placement.
func (s *ResultService) LastResult(ctx context.Context, sessionID string) (*CompletedTest, error) {
	r, id, err := s.Quiz.LastResult(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return completed(id, *r), nil
}

func (s *ResultService) shareURL(resultID string) string {
	base := strings.TrimSuffix(s.Config.ShareBaseURL, "/")
	if resultID == "" {
		return base
	}
	return base + "/results/" + resultID
}

func (s *ResultService) Share(ctx context.Context, sessionID string) (*compass.ShareSummary, error) {
	r, id, err := s.Quiz.LastResult(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	summary := compass.Share(r, s.shareURL(id))
	if summary == nil {
		return nil, util.ErrNoResult
	}
	return summary, nil
}

// Compare rates the session's last result against other.
func (s *ResultService) Compare(ctx context.Context, sessionID string, other *model.Result) (*compass.Comparison, error) {
	if !compass.ValidateResult(other) {
		return nil, util.ErrInvalidResult
	}
	r, _, err := s.Quiz.LastResult(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cmp := compass.CompareResults(r, other)
	return &cmp, nil
}

type StatisticsReport struct {
	compass.ResultsStatistics
	Archetypes map[string]int64 `json:"archetypes"`
}

// Statistics aggregates the newest stored results.
func (s *ResultService) Statistics(ctx context.Context, limit int) (*StatisticsReport, error) {
	rows, err := s.Results.Recent(limit)
	if err != nil {
		return nil, err
	}

	results := make([]model.Result, 0, len(rows))
	for i := range rows {
		r, err := repository.DecodeResult(&rows[i])
		if err != nil {
			logger.Log.Warn("Skipping undecodable result", zap.String("id", rows[i].ID), zap.Error(err))
			continue
		}
		results = append(results, r)
	}

	counts, err := s.Results.CountByArchetype()
	if err != nil {
		return nil, err
	}
	return &StatisticsReport{
		ResultsStatistics: compass.ResultStatistics(results),
		Archetypes:        counts,
	}, nil
}
