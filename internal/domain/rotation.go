package domain

import (
	"fmt"
	"strings"
	"time"
)

// ChampionRotation is one free rotation published on a given date. The
// standard rotation and the newbie rotation for the same date are separate rows.
type ChampionRotation struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	RotationDate   time.Time `json:"rotationDate" gorm:"type:date;not null;index"`
	GameVersion    *string   `json:"gameVersion" gorm:"size:32"`
	NewbieRotation bool      `json:"newbieRotation" gorm:"not null"`
	MaxNewbieLevel *int      `json:"maxNewbieLevel"` // only meaningful when NewbieRotation is set
}

func (ChampionRotation) TableName() string {
	return "champion_rotations"
}

// RotationChampion links a rotation to one of its champions.
type RotationChampion struct {
	RotationID uint `json:"rotationId" gorm:"primaryKey"`
	ChampionID uint `json:"championId" gorm:"primaryKey"`
}

func (RotationChampion) TableName() string {
	return "rotation_champions"
}

// RotationRow is a single (rotation, champion) pair produced by joining the
// three rotation tables.
type RotationRow struct {
	RotationDate   time.Time `gorm:"column:rotation_date"`
	GameVersion    *string   `gorm:"column:game_version"`
	NewbieRotation bool      `gorm:"column:newbie_rotation"`
	MaxNewbieLevel *int      `gorm:"column:max_newbie_level"`
	ChampionName   string    `gorm:"column:champion_name"`
	Title          string    `gorm:"column:title"`
	ImageFull      string    `gorm:"column:image_full"`
	ChampionKey    string    `gorm:"column:champion_key"`
}

// PresentationChampion is a champion ready to be shown on a page.
type PresentationChampion struct {
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	ImageURL    string `json:"imageUrl" yaml:"image_url"`
	ChampionKey string `json:"championKey" yaml:"champion_key"`
}

type RotationInfo struct {
	Date    time.Time `json:"date" yaml:"date"`
	Version string    `json:"version" yaml:"version"`
}

type CurrentRotation struct {
	Regular []PresentationChampion `json:"regular" yaml:"regular"`
	Newbie  []PresentationChampion `json:"newbie" yaml:"newbie"`
	Info    RotationInfo           `json:"info" yaml:"info"`
}

// HistoryEntry summarises one historical rotation.
type HistoryEntry struct {
	RotationDate   time.Time `json:"rotationDate" yaml:"rotation_date" gorm:"column:rotation_date"`
	GameVersion    *string   `json:"gameVersion" yaml:"game_version" gorm:"column:game_version"`
	NewbieRotation bool      `json:"newbieRotation" yaml:"newbie_rotation" gorm:"column:newbie_rotation"`
	ChampionCount  int64     `json:"championCount" yaml:"champion_count" gorm:"column:champion_count"`
}

// ImageURL builds the Data Dragon square icon URL for a champion:
// {base}/{version}/img/champion/{imageFull}.
func ImageURL(baseURL, version, imageFull string) string {
	return fmt.Sprintf("%s/%s/img/champion/%s", strings.TrimSuffix(baseURL, "/"), version, imageFull)
}
