package service

import (
	"context"
	"movie_discovery/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

//------------------------------------------
//------------------------------------------

type followEdge struct {
	followerId  string
	followingId string
}

type fakeFollowRepo struct {
	edges []followEdge
}

func (f *fakeFollowRepo) AddFollow(followerId string, followingId string) error {
	for _, edge := range f.edges {
		if edge.followerId == followerId && edge.followingId == followingId {
			return gorm.ErrDuplicatedKey
		}
	}
	f.edges = append(f.edges, followEdge{followerId, followingId})
	return nil
}

func (f *fakeFollowRepo) RemoveFollow(followerId string, followingId string) error {
	kept := make([]followEdge, 0)
	for _, edge := range f.edges {
		if edge.followerId != followerId || edge.followingId != followingId {
			kept = append(kept, edge)
		}
	}
	f.edges = kept
	return nil
}

func (f *fakeFollowRepo) GetFollowerIds(userId string) ([]string, error) {
	result := make([]string, 0)
	for _, edge := range f.edges {
		if edge.followingId == userId {
			result = append(result, edge.followerId)
		}
	}
	return result, nil
}

func (f *fakeFollowRepo) GetFollowingIds(userId string) ([]string, error) {
	result := make([]string, 0)
	for _, edge := range f.edges {
		if edge.followerId == userId {
			result = append(result, edge.followingId)
		}
	}
	return result, nil
}

//------------------------------------------
//------------------------------------------

type fakeUserRepo struct {
	users       map[string]*model.User
	profiles    map[string]*model.Profile
	searchCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[string]*model.User{},
		profiles: map[string]*model.Profile{},
	}
}

func (f *fakeUserRepo) CreateUser(user *model.User, profile *model.Profile) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	for _, existing := range f.profiles {
		if existing.Username == profile.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	f.users[user.Id] = user
	f.profiles[profile.Id] = profile
	return nil
}

func (f *fakeUserRepo) GetUserById(userId string) (*model.User, error) {
	user, ok := f.users[userId]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetProfile(userId string) (*model.Profile, error) {
	profile, ok := f.profiles[userId]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (f *fakeUserRepo) GetProfilesByIds(userIds []string) ([]model.Profile, error) {
	result := make([]model.Profile, 0)
	for _, userId := range userIds {
		if profile, ok := f.profiles[userId]; ok {
			result = append(result, *profile)
		}
	}
	return result, nil
}

func (f *fakeUserRepo) SearchProfiles(pattern string, limit int) ([]model.Profile, error) {
	f.searchCalls++
	result := make([]model.Profile, 0)
	for _, profile := range f.profiles {
		if strings.Contains(strings.ToLower(profile.Username), strings.ToLower(pattern)) {
			result = append(result, *profile)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (f *fakeUserRepo) addProfile(userId string, username string) {
	f.users[userId] = &model.User{Id: userId, Email: username + "@example.com"}
	f.profiles[userId] = &model.Profile{Id: userId, Username: username}
}

//------------------------------------------
//------------------------------------------

func newSocialService() (*SocialService, *fakeFollowRepo, *fakeUserRepo) {
	followRepo := &fakeFollowRepo{}
	userRepo := newFakeUserRepo()
	return NewSocialService(followRepo, userRepo), followRepo, userRepo
}

func TestSocialServiceSearchUsers(t *testing.T) {
	socialSvc, _, userRepo := newSocialService()
	userRepo.addProfile("user-1", "alice")
	userRepo.addProfile("user-2", "alicia")
	userRepo.addProfile("user-3", "bob")

	profiles, err := socialSvc.SearchUsers(context.Background(), "user-3", "ali")
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestSocialServiceSearchBlankPatternShortCircuits(t *testing.T) {
	socialSvc, _, userRepo := newSocialService()
	userRepo.addProfile("user-1", "alice")

	profiles, err := socialSvc.SearchUsers(context.Background(), "user-1", "   ")
	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.Equal(t, 0, userRepo.searchCalls)
}

func TestSocialServiceFollowVisibleOnBothSides(t *testing.T) {
	socialSvc, _, userRepo := newSocialService()
	userRepo.addProfile("user-a", "alice")
	userRepo.addProfile("user-b", "bob")

	require.NoError(t, socialSvc.Follow(context.Background(), "user-a", "user-b"))

	dataA, err := socialSvc.GetFollowData(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, dataA.Following, 1)
	assert.Equal(t, "bob", dataA.Following[0].Username)
	assert.Equal(t, 1, dataA.FollowingCount)
	assert.Equal(t, 0, dataA.FollowersCount)

	dataB, err := socialSvc.GetFollowData(context.Background(), "user-b")
	require.NoError(t, err)
	require.Len(t, dataB.Followers, 1)
	assert.Equal(t, "alice", dataB.Followers[0].Username)
	assert.Equal(t, 1, dataB.FollowersCount)
}

func TestSocialServiceSelfFollowRejected(t *testing.T) {
	socialSvc, followRepo, _ := newSocialService()

	err := socialSvc.Follow(context.Background(), "user-a", "user-a")
	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.Empty(t, followRepo.edges)
}

func TestSocialServiceDuplicateFollowRejected(t *testing.T) {
	socialSvc, _, _ := newSocialService()

	require.NoError(t, socialSvc.Follow(context.Background(), "user-a", "user-b"))
	err := socialSvc.Follow(context.Background(), "user-a", "user-b")
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestSocialServiceUnfollow(t *testing.T) {
	socialSvc, _, userRepo := newSocialService()
	userRepo.addProfile("user-a", "alice")
	userRepo.addProfile("user-b", "bob")

	require.NoError(t, socialSvc.Follow(context.Background(), "user-a", "user-b"))
	require.NoError(t, socialSvc.Unfollow(context.Background(), "user-a", "user-b"))

	data, err := socialSvc.GetFollowData(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Empty(t, data.Following)
	assert.Equal(t, 0, data.FollowingCount)
}

func TestSocialServiceRemoveFollowerMirrorsUnfollow(t *testing.T) {
	socialSvc, followRepo, userRepo := newSocialService()
	userRepo.addProfile("user-a", "alice")
	userRepo.addProfile("user-b", "bob")

	// bob removing alice from his followers deletes the exact edge alice's
	// unfollow would delete
	require.NoError(t, socialSvc.Follow(context.Background(), "user-a", "user-b"))
	require.NoError(t, socialSvc.RemoveFollower(context.Background(), "user-b", "user-a"))

	assert.Empty(t, followRepo.edges)
}

func TestSocialServiceMutationsRequireAuth(t *testing.T) {
	socialSvc, _, _ := newSocialService()

	assert.ErrorIs(t, socialSvc.Follow(context.Background(), "", "user-b"), ErrAuthRequired)
	assert.ErrorIs(t, socialSvc.Unfollow(context.Background(), "", "user-b"), ErrAuthRequired)
	assert.ErrorIs(t, socialSvc.RemoveFollower(context.Background(), "", "user-b"), ErrAuthRequired)
}

func TestSocialServiceAnonymousFollowDataIsEmpty(t *testing.T) {
	socialSvc, _, _ := newSocialService()

	data, err := socialSvc.GetFollowData(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, data.Followers)
	assert.Empty(t, data.Following)
	assert.Equal(t, 0, data.FollowersCount)
	assert.Equal(t, 0, data.FollowingCount)
}
