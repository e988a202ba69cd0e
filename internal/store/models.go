package store

import "time"

// Review states a card moves through once scheduling lands.
const (
	StateNew      = "new"
	StateLearning = "learning"
	StateReview   = "review"
)

// CardReview is the spaced-repetition record for a single card.
// Reserved for a future review scheduler; the current study modes
// never persist anything here.
type CardReview struct {
	ID         uint    `gorm:"primaryKey"`
	CardID     string  `gorm:"uniqueIndex;not null"`
	State      string  `gorm:"not null;default:new"`
	IntervalD  int     `gorm:"not null;default:0"`
	EaseFactor float64 `gorm:"not null;default:2.5"`
	Lapses     int     `gorm:"not null;default:0"`
	DueAt      time.Time
	ReviewedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
