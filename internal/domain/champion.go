package domain

type Champion struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`          // Display name
	Title       string `json:"title" gorm:"size:200"`                  // e.g., "the Darkin Blade"
	ChampionKey string `json:"championKey" gorm:"size:50;uniqueIndex"` // e.g., "Aatrox"
	ImageFull   string `json:"imageFull" gorm:"size:100"`              // e.g., "Aatrox.png"
}

func (Champion) TableName() string {
	return "champions"
}
