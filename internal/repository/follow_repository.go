package repository

import (
	"movie_discovery/model"

	"gorm.io/gorm"
)

type IFollowRepository interface {
	AddFollow(followerId string, followingId string) error
	RemoveFollow(followerId string, followingId string) error
	GetFollowerIds(userId string) ([]string, error)
	GetFollowingIds(userId string) ([]string, error)
}

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *FollowRepository) AddFollow(followerId string, followingId string) error {
	follow := model.Follow{
		FollowerId:  followerId,
		FollowingId: followingId,
	}
	return r.db.Create(&follow).Error
}

func (r *FollowRepository) RemoveFollow(followerId string, followingId string) error {
	return r.db.
		Where("follower_id = ? AND following_id = ?", followerId, followingId).
		Delete(&model.Follow{}).
		Error
}

//------------------------------------------
//------------------------------------------

func (r *FollowRepository) GetFollowerIds(userId string) ([]string, error) {
	result := make([]string, 0)
	err := r.db.
		Model(&model.Follow{}).
		Where("following_id = ?", userId).
		Pluck("follower_id", &result).
		Error
	return result, err
}

func (r *FollowRepository) GetFollowingIds(userId string) ([]string, error) {
	result := make([]string, 0)
	err := r.db.
		Model(&model.Follow{}).
		Where("follower_id = ?", userId).
		Pluck("following_id", &result).
		Error
	return result, err
}
