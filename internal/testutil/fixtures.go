package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/dom/champion-rotations/internal/domain"
	"gorm.io/gorm"
)

// ChampionBuilder creates test champions with a builder pattern
type ChampionBuilder struct {
	name      string
	title     string
	key       string
	imageFull string
}

// NewChampionBuilder creates a new ChampionBuilder with default values
func NewChampionBuilder() *ChampionBuilder {
	name := fmt.Sprintf("Champion%d", time.Now().UnixNano()%100000)
	return &ChampionBuilder{
		name:      name,
		title:     "the Test Champion",
		key:       name,
		imageFull: name + ".png",
	}
}

// WithName sets the display name, key and image file
func (b *ChampionBuilder) WithName(name string) *ChampionBuilder {
	b.name = name
	b.key = name
	b.imageFull = name + ".png"
	return b
}

// WithTitle sets the champion title
func (b *ChampionBuilder) WithTitle(title string) *ChampionBuilder {
	b.title = title
	return b
}

// WithKey sets the champion key
func (b *ChampionBuilder) WithKey(key string) *ChampionBuilder {
	b.key = key
	return b
}

// WithImageFull sets the image file name
func (b *ChampionBuilder) WithImageFull(imageFull string) *ChampionBuilder {
	b.imageFull = imageFull
	return b
}

// Build creates the champion in the database
func (b *ChampionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Champion {
	t.Helper()

	champion := &domain.Champion{
		Name:        b.name,
		Title:       b.title,
		ChampionKey: b.key,
		ImageFull:   b.imageFull,
	}

	if err := db.Create(champion).Error; err != nil {
		t.Fatalf("failed to create champion: %v", err)
	}

	return champion
}

// RotationBuilder creates test rotations with a builder pattern
type RotationBuilder struct {
	date           time.Time
	version        *string
	newbie         bool
	maxNewbieLevel *int
	champions      []*domain.Champion
}

// NewRotationBuilder creates a regular rotation dated 2024-01-09 on 14.1.1
func NewRotationBuilder() *RotationBuilder {
	version := "14.1.1"
	return &RotationBuilder{
		date:    Date(2024, time.January, 9),
		version: &version,
	}
}

// WithDate sets the rotation date
func (b *RotationBuilder) WithDate(date time.Time) *RotationBuilder {
	b.date = date
	return b
}

// WithVersion sets the game version
func (b *RotationBuilder) WithVersion(version string) *RotationBuilder {
	b.version = &version
	return b
}

// WithoutVersion stores a NULL game version
func (b *RotationBuilder) WithoutVersion() *RotationBuilder {
	b.version = nil
	return b
}

// AsNewbie marks the rotation as the newbie rotation
func (b *RotationBuilder) AsNewbie(maxLevel int) *RotationBuilder {
	b.newbie = true
	b.maxNewbieLevel = &maxLevel
	return b
}

// WithChampions attaches the given champions
func (b *RotationBuilder) WithChampions(champions ...*domain.Champion) *RotationBuilder {
	b.champions = append(b.champions, champions...)
	return b
}

// Build creates the rotation and its champion links in the database
func (b *RotationBuilder) Build(t *testing.T, db *gorm.DB) *domain.ChampionRotation {
	t.Helper()

	rotation := &domain.ChampionRotation{
		RotationDate:   b.date,
		GameVersion:    b.version,
		NewbieRotation: b.newbie,
		MaxNewbieLevel: b.maxNewbieLevel,
	}

	if err := db.Create(rotation).Error; err != nil {
		t.Fatalf("failed to create rotation: %v", err)
	}

	for _, champion := range b.champions {
		link := &domain.RotationChampion{RotationID: rotation.ID, ChampionID: champion.ID}
		if err := db.Create(link).Error; err != nil {
			t.Fatalf("failed to link champion %s: %v", champion.Name, err)
		}
	}

	return rotation
}

// SeedChampions creates one champion per name
func SeedChampions(t *testing.T, db *gorm.DB, names ...string) []*domain.Champion {
	t.Helper()

	champions := make([]*domain.Champion, len(names))
	for i, name := range names {
		champions[i] = NewChampionBuilder().WithName(name).Build(t, db)
	}
	return champions
}

// Date returns midnight UTC on the given day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
