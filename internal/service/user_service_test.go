package service

import (
	"context"
	"movie_discovery/configs"
	"movie_discovery/model"
	"movie_discovery/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setAuthSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "access-token-test-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-token-test-secret")
	configs.LoadEnvVariables()
}

func newUserService() (*UserService, *fakeUserRepo, *CacheService) {
	userRepo := newFakeUserRepo()
	cacheSvc := NewCacheService(newMemKvStore())
	return NewUserService(userRepo, cacheSvc), userRepo, cacheSvc
}

//------------------------------------------
//------------------------------------------

func TestUserServiceSignup(t *testing.T) {
	setAuthSecrets(t)
	userSvc, userRepo, _ := newUserService()

	tokens, err := userSvc.Signup(context.Background(), &model.SignupReq{
		Email:    "Alice@Example.com",
		Password: "long-enough-password",
		Name:     "Alice",
		Username: "alice",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	_, claims, err := util.VerifyToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	user, err := userRepo.GetUserById(claims.UserId)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("long-enough-password")))
}

func TestUserServiceSignupUsernameDefaultsToEmailLocalPart(t *testing.T) {
	setAuthSecrets(t)
	userSvc, userRepo, _ := newUserService()

	tokens, err := userSvc.Signup(context.Background(), &model.SignupReq{
		Email:    "bob@example.com",
		Password: "long-enough-password",
		Name:     "Bob",
	})
	require.NoError(t, err)

	_, claims, err := util.VerifyToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Username)

	profile, err := userRepo.GetProfile(claims.UserId)
	require.NoError(t, err)
	assert.Equal(t, "bob", profile.Username)
}

func TestUserServiceSignupValidation(t *testing.T) {
	setAuthSecrets(t)
	userSvc, _, _ := newUserService()

	_, err := userSvc.Signup(context.Background(), &model.SignupReq{
		Email:    "not-an-email",
		Password: "long-enough-password",
	})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = userSvc.Signup(context.Background(), &model.SignupReq{
		Email:    "alice@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, ErrShortPassword)
}

func TestUserServiceSignupDuplicateEmail(t *testing.T) {
	setAuthSecrets(t)
	userSvc, _, _ := newUserService()

	req := &model.SignupReq{
		Email:    "alice@example.com",
		Password: "long-enough-password",
		Username: "alice",
	}
	_, err := userSvc.Signup(context.Background(), req)
	require.NoError(t, err)

	_, err = userSvc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

//------------------------------------------
//------------------------------------------

func TestUserServiceLogin(t *testing.T) {
	setAuthSecrets(t)
	userSvc, _, _ := newUserService()

	_, err := userSvc.Signup(context.Background(), &model.SignupReq{
		Email:    "alice@example.com",
		Password: "long-enough-password",
		Username: "alice",
	})
	require.NoError(t, err)

	tokens, err := userSvc.Login(context.Background(), &model.LoginReq{
		Email:    "ALICE@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	_, claims, err := util.VerifyToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestUserServiceLoginWrongCredentials(t *testing.T) {
	setAuthSecrets(t)
	userSvc, _, _ := newUserService()

	_, err := userSvc.Signup(context.Background(), &model.SignupReq{
		Email:    "alice@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	_, err = userSvc.Login(context.Background(), &model.LoginReq{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrWrongCredentials)

	// unknown email answers with the same error as a wrong password
	_, err = userSvc.Login(context.Background(), &model.LoginReq{
		Email:    "nobody@example.com",
		Password: "long-enough-password",
	})
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestUserServiceLoginMissingCredentials(t *testing.T) {
	setAuthSecrets(t)
	userSvc, _, _ := newUserService()

	_, err := userSvc.Login(context.Background(), &model.LoginReq{Email: "", Password: ""})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

//------------------------------------------
//------------------------------------------

func TestUserServiceLogoutBlacklistsRefreshToken(t *testing.T) {
	setAuthSecrets(t)
	userSvc, _, cacheSvc := newUserService()

	require.NoError(t, userSvc.Logout(context.Background(), "some-refresh-token"))

	value, err := cacheSvc.GetJwtDataCache(context.Background(), "some-refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "logout", value)
}

func TestUserServiceGetCurrentUser(t *testing.T) {
	setAuthSecrets(t)
	userSvc, userRepo, _ := newUserService()

	userRepo.users["user-1"] = &model.User{
		Id:        "user-1",
		Email:     "alice@example.com",
		Name:      "Alice",
		CreatedAt: time.Now().UTC(),
	}
	userRepo.profiles["user-1"] = &model.Profile{
		Id:        "user-1",
		Username:  "alice",
		AvatarUrl: "https://cdn.example.com/alice.png",
	}

	res, err := userSvc.GetCurrentUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", res.Email)
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, "https://cdn.example.com/alice.png", res.Avatar)

	_, err = userSvc.GetCurrentUser(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
