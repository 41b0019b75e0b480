package service

import (
	"context"
	"errors"

	"github.com/dom/champion-rotations/internal/config"
	"github.com/dom/champion-rotations/internal/domain"
	"github.com/dom/champion-rotations/internal/repository"
	"go.uber.org/zap"
)

const (
	dataDragonCDNURL = "https://ddragon.leagueoflegends.com/cdn"
)

type RotationService struct {
	rotationRepo repository.RotationRepository
	imageBaseURL string
	logger       *zap.Logger
}

func NewRotationService(rotationRepo repository.RotationRepository, cfg *config.Config, logger *zap.Logger) *RotationService {
	baseURL := dataDragonCDNURL
	if cfg != nil && cfg.DataDragonBaseURL != "" {
		baseURL = cfg.DataDragonBaseURL
	}
	return &RotationService{
		rotationRepo: rotationRepo,
		imageBaseURL: baseURL,
		logger:       logger.Named("rotation"),
	}
}

// CurrentRotation loads the latest rotation and splits its champions into the
// regular and newbie lists. A date without champions yields domain.ErrNoData.
func (s *RotationService) CurrentRotation(ctx context.Context) (*domain.CurrentRotation, error) {
	date, rows, err := s.rotationRepo.LatestRotation(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoData
	}

	current := &domain.CurrentRotation{
		Regular: make([]domain.PresentationChampion, 0, len(rows)),
		Newbie:  make([]domain.PresentationChampion, 0),
		Info: domain.RotationInfo{
			Date:    date,
			Version: stringValue(rows[0].GameVersion),
		},
	}

	for _, row := range rows {
		version := stringValue(row.GameVersion)
		if version == "" {
			version = current.Info.Version
		}

		champion := domain.PresentationChampion{
			Name:        row.ChampionName,
			Title:       row.Title,
			ImageURL:    domain.ImageURL(s.imageBaseURL, version, row.ImageFull),
			ChampionKey: row.ChampionKey,
		}

		if row.NewbieRotation {
			current.Newbie = append(current.Newbie, champion)
		} else {
			current.Regular = append(current.Regular, champion)
		}
	}

	return current, nil
}

// GetCurrentRotations returns the regular list, the newbie list and the
// rotation info, or three nils. Store failures are logged and reported the
// same way as an empty store, so callers cannot tell an outage from missing
// data; use CurrentRotation when the difference matters.
func (s *RotationService) GetCurrentRotations(ctx context.Context) ([]domain.PresentationChampion, []domain.PresentationChampion, *domain.RotationInfo) {
	current, err := s.CurrentRotation(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			s.logger.Info("no current rotation found")
		} else {
			s.logger.Error("failed to load current rotation", zap.Error(err))
		}
		return nil, nil, nil
	}

	return current.Regular, current.Newbie, &current.Info
}

// GetHistory returns one entry per stored rotation, newest first. On failure
// it returns an empty list together with the error.
func (s *RotationService) GetHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	entries, err := s.rotationRepo.History(ctx)
	if err != nil {
		s.logger.Error("failed to load rotation history", zap.Error(err))
		return []domain.HistoryEntry{}, err
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return entries, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
