package model

import (
	"time"
)

// Favorite is a (user, movie) pair, unique per pair. Re-adding an existing
// favorite hits the composite unique index, the constraint violation is
// surfaced to the caller as-is.
type Favorite struct {
	UserId    string    `gorm:"column:user_id;type:uuid;not null;primaryKey;uniqueIndex:favorites_user_movie_key;" json:"userId"`
	MovieId   int64     `gorm:"column:movie_id;type:bigint;not null;primaryKey;uniqueIndex:favorites_user_movie_key;" json:"movieId"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
}

func (Favorite) TableName() string {
	return "favorites"
}
