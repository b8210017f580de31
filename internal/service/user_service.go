package service

import (
	"context"
	"errors"
	"movie_discovery/configs"
	"movie_discovery/internal/repository"
	"movie_discovery/model"
	"movie_discovery/util"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IUserService interface {
	Signup(ctx context.Context, req *model.SignupReq) (*util.TokenDetail, error)
	Login(ctx context.Context, req *model.LoginReq) (*util.TokenDetail, error)
	Logout(ctx context.Context, refreshToken string) error
	GetCurrentUser(ctx context.Context, userId string) (*model.CurrentUserRes, error)
}

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrShortPassword      = errors.New("password is too short")
	ErrWrongCredentials   = errors.New("email and password do not match")
	ErrSignupDisabled     = errors.New("signup is disabled")
	ErrMissingCredentials = errors.New("email and password are required")
)

type UserService struct {
	userRepo repository.IUserRepository
	cacheSvc ICacheService
}

func NewUserService(userRepo repository.IUserRepository, cacheSvc ICacheService) *UserService {
	return &UserService{
		userRepo: userRepo,
		cacheSvc: cacheSvc,
	}
}

//------------------------------------------
//------------------------------------------

func (s *UserService) Signup(ctx context.Context, req *model.SignupReq) (*util.TokenDetail, error) {
	if configs.GetDbConfigs().DisableSignup {
		return nil, ErrSignupDisabled
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := checkmail.ValidateFormat(req.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrShortPassword
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = strings.Split(req.Email, "@")[0]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Id:        uuid.NewString(),
		Email:     req.Email,
		Password:  string(hash),
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: time.Now().UTC(),
	}
	profile := &model.Profile{
		Id:       user.Id,
		Username: username,
	}

	err = s.userRepo.CreateUser(user, profile)
	if err != nil {
		return nil, err
	}

	return util.CreateTokens(user.Id, profile.Username)
}

func (s *UserService) Login(ctx context.Context, req *model.LoginReq) (*util.TokenDetail, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password))
	if err != nil {
		return nil, ErrWrongCredentials
	}

	username := user.Name
	profile, err := s.userRepo.GetProfile(user.Id)
	if err == nil {
		username = profile.Username
	}

	return util.CreateTokens(user.Id, username)
}

func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	// blacklisted until the token would expire on its own
	duration := time.Duration(util.RefreshTokenExpireHour) * time.Hour
	return s.cacheSvc.SetJwtDataCache(ctx, refreshToken, "logout", duration)
}

//------------------------------------------
//------------------------------------------

func (s *UserService) GetCurrentUser(ctx context.Context, userId string) (*model.CurrentUserRes, error) {
	user, err := s.userRepo.GetUserById(userId)
	if err != nil {
		return nil, err
	}

	res := &model.CurrentUserRes{
		Id:    user.Id,
		Email: user.Email,
		Name:  user.Name,
	}

	profile, err := s.userRepo.GetProfile(userId)
	if err == nil {
		res.Username = profile.Username
		res.Avatar = profile.AvatarUrl
	}

	return res, nil
}
