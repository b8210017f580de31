package service

import (
	"context"
	"errors"
	"movie_discovery/configs"
	"movie_discovery/internal/repository"
	"movie_discovery/model"
	"strings"
)

type ISocialService interface {
	SearchUsers(ctx context.Context, userId string, pattern string) ([]model.Profile, error)
	Follow(ctx context.Context, userId string, targetId string) error
	Unfollow(ctx context.Context, userId string, targetId string) error
	RemoveFollower(ctx context.Context, userId string, targetId string) error
	GetFollowData(ctx context.Context, userId string) (*model.FollowDataRes, error)
}

var ErrSelfFollow = errors.New("cannot follow yourself")

type SocialService struct {
	followRepo repository.IFollowRepository
	userRepo   repository.IUserRepository
}

func NewSocialService(followRepo repository.IFollowRepository, userRepo repository.IUserRepository) *SocialService {
	return &SocialService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *SocialService) SearchUsers(ctx context.Context, userId string, pattern string) ([]model.Profile, error) {
	// blank pattern short-circuits, a full-table scan helps nobody
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return []model.Profile{}, nil
	}

	limit := int(configs.GetDbConfigs().SearchProfilesLimit)
	return s.userRepo.SearchProfiles(pattern, limit)
}

//------------------------------------------
//------------------------------------------

func (s *SocialService) Follow(ctx context.Context, userId string, targetId string) error {
	if userId == "" {
		return ErrAuthRequired
	}
	if userId == targetId {
		return ErrSelfFollow
	}

	return s.followRepo.AddFollow(userId, targetId)
}

func (s *SocialService) Unfollow(ctx context.Context, userId string, targetId string) error {
	if userId == "" {
		return ErrAuthRequired
	}

	return s.followRepo.RemoveFollow(userId, targetId)
}

// RemoveFollower deletes the same directed edge an unfollow by the other
// side would, only the roles in the pair are swapped.
func (s *SocialService) RemoveFollower(ctx context.Context, userId string, targetId string) error {
	if userId == "" {
		return ErrAuthRequired
	}

	return s.followRepo.RemoveFollow(targetId, userId)
}

//------------------------------------------
//------------------------------------------

// GetFollowData recomputes counts and both expandable lists by re-running
// the two edge queries and their profile resolution. No incremental counter
// exists, the displayed state always matches the store at the time of the
// last mutation made through this service.
func (s *SocialService) GetFollowData(ctx context.Context, userId string) (*model.FollowDataRes, error) {
	if userId == "" {
		return &model.FollowDataRes{
			Followers: []model.Profile{},
			Following: []model.Profile{},
		}, nil
	}

	followerIds, err := s.followRepo.GetFollowerIds(userId)
	if err != nil {
		return nil, err
	}
	followingIds, err := s.followRepo.GetFollowingIds(userId)
	if err != nil {
		return nil, err
	}

	followers, err := s.userRepo.GetProfilesByIds(followerIds)
	if err != nil {
		return nil, err
	}
	following, err := s.userRepo.GetProfilesByIds(followingIds)
	if err != nil {
		return nil, err
	}

	return &model.FollowDataRes{
		Followers:      followers,
		Following:      following,
		FollowersCount: len(followers),
		FollowingCount: len(following),
	}, nil
}
