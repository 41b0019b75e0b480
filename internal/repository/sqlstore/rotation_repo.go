package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dom/champion-rotations/internal/domain"
	"gorm.io/gorm"
)

type rotationRepository struct {
	connector *Connector
}

func NewRotationRepository(connector *Connector) *rotationRepository {
	return &rotationRepository{connector: connector}
}

func (r *rotationRepository) LatestRotation(ctx context.Context) (time.Time, []domain.RotationRow, error) {
	var (
		latest time.Time
		rows   []domain.RotationRow
	)

	err := r.connector.WithConnection(ctx, func(db *gorm.DB) error {
		// Same as MAX(rotation_date), but keeps the column type so every
		// driver scans it as a time.
		var dates []time.Time
		err := db.Model(&domain.ChampionRotation{}).
			Order("rotation_date DESC").
			Limit(1).
			Pluck("rotation_date", &dates).Error
		if err != nil {
			return fmt.Errorf("%w: latest rotation date: %w", domain.ErrQuery, err)
		}
		if len(dates) == 0 {
			return domain.ErrNoData
		}
		latest = dates[0]

		err = db.Table("champion_rotations AS cr").
			Select(`cr.rotation_date, cr.game_version, cr.newbie_rotation, cr.max_newbie_level,
				c.name AS champion_name, c.title, c.image_full, c.champion_key`).
			Joins("JOIN rotation_champions rc ON cr.id = rc.rotation_id").
			Joins("JOIN champions c ON rc.champion_id = c.id").
			Where("cr.rotation_date = ?", latest).
			Order("cr.newbie_rotation, c.name").
			Scan(&rows).Error
		if err != nil {
			return fmt.Errorf("%w: rotation rows: %w", domain.ErrQuery, err)
		}
		return nil
	})
	if err != nil {
		return time.Time{}, nil, err
	}

	return latest, rows, nil
}

func (r *rotationRepository) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry

	err := r.connector.WithConnection(ctx, func(db *gorm.DB) error {
		err := db.Table("champion_rotations AS cr").
			Select("cr.rotation_date, cr.game_version, cr.newbie_rotation, COUNT(*) AS champion_count").
			Joins("JOIN rotation_champions rc ON cr.id = rc.rotation_id").
			Group("cr.id, cr.rotation_date, cr.game_version, cr.newbie_rotation").
			Order("cr.rotation_date DESC, cr.newbie_rotation").
			Scan(&entries).Error
		if err != nil {
			return fmt.Errorf("%w: rotation history: %w", domain.ErrQuery, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
