package repository

import (
	"movie_discovery/model"

	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(user *model.User, profile *model.Profile) error
	GetUserById(userId string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetProfile(userId string) (*model.Profile, error)
	GetProfilesByIds(userIds []string) ([]model.Profile, error)
	SearchProfiles(pattern string, limit int) ([]model.Profile, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) CreateUser(user *model.User, profile *model.Profile) error {
	// profile row is created alongside registration, same as the upstream
	// trigger used to do
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(profile).Error
	})
}

func (r *UserRepository) GetUserById(userId string) (*model.User, error) {
	var result model.User
	err := r.db.
		Model(&model.User{}).
		Where("id = ?", userId).
		First(&result).
		Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	var result model.User
	err := r.db.
		Model(&model.User{}).
		Where("email = ?", email).
		First(&result).
		Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) GetProfile(userId string) (*model.Profile, error) {
	var result model.Profile
	err := r.db.
		Model(&model.Profile{}).
		Where("id = ?", userId).
		First(&result).
		Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) GetProfilesByIds(userIds []string) ([]model.Profile, error) {
	result := make([]model.Profile, 0)
	if len(userIds) == 0 {
		return result, nil
	}

	err := r.db.
		Model(&model.Profile{}).
		Where("id IN ?", userIds).
		Find(&result).
		Error
	return result, err
}

func (r *UserRepository) SearchProfiles(pattern string, limit int) ([]model.Profile, error) {
	result := make([]model.Profile, 0)
	err := r.db.
		Model(&model.Profile{}).
		Where("username ILIKE ?", "%"+pattern+"%").
		Limit(limit).
		Find(&result).
		Error
	return result, err
}
