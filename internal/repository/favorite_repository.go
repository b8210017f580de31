package repository

import (
	"movie_discovery/model"

	"gorm.io/gorm"
)

type IFavoriteRepository interface {
	AddFavorite(userId string, movieId int64) error
	RemoveFavorite(userId string, movieId int64) error
	GetFavoriteMovieIds(userId string) ([]int64, error)
}

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *FavoriteRepository) AddFavorite(userId string, movieId int64) error {
	favorite := model.Favorite{
		UserId:  userId,
		MovieId: movieId,
	}
	// duplicate pair hits the unique index, gorm translates it to
	// gorm.ErrDuplicatedKey
	return r.db.Create(&favorite).Error
}

func (r *FavoriteRepository) RemoveFavorite(userId string, movieId int64) error {
	// deleting an absent row is a no-op, not an error
	return r.db.
		Where("user_id = ? AND movie_id = ?", userId, movieId).
		Delete(&model.Favorite{}).
		Error
}

func (r *FavoriteRepository) GetFavoriteMovieIds(userId string) ([]int64, error) {
	result := make([]int64, 0)
	err := r.db.
		Model(&model.Favorite{}).
		Where("user_id = ?", userId).
		Pluck("movie_id", &result).
		Error
	return result, err
}
