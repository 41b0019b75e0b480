package repository

import (
	"context"
	"time"

	"github.com/dom/champion-rotations/internal/domain"
)

type RotationRepository interface {
	// LatestRotation returns the most recent rotation date and every
	// (rotation, champion) row recorded for it, ordered by newbie flag then
	// champion name. It returns domain.ErrNoData when no rotation exists.
	LatestRotation(ctx context.Context) (time.Time, []domain.RotationRow, error)
	History(ctx context.Context) ([]domain.HistoryEntry, error)
}

type Repositories struct {
	Rotation RotationRepository
}
