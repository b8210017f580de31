package service

import (
	"context"
	"errors"
	"fmt"
	"movie_discovery/configs"
	"movie_discovery/internal/repository"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
	"time"
)

type IFavoriteService interface {
	AddFavorite(ctx context.Context, userId string, movieId int64) error
	RemoveFavorite(ctx context.Context, userId string, movieId int64) error
	GetFavoriteIds(ctx context.Context, userId string) ([]int64, error)
	GetFavoriteMovies(ctx context.Context, userId string) ([]*model.Movie, error)
}

// ErrAuthRequired is returned by mutations when no session is present.
// Reads stay silent instead: an anonymous list is empty, never an error,
// so anonymous browsing works without special-casing.
var ErrAuthRequired = errors.New("authentication required")

type FavoriteService struct {
	favoriteRepo repository.IFavoriteRepository
	catalogSvc   ICatalogService
	cacheSvc     ICacheService
}

func NewFavoriteService(favoriteRepo repository.IFavoriteRepository, catalogSvc ICatalogService, cacheSvc ICacheService) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		catalogSvc:   catalogSvc,
		cacheSvc:     cacheSvc,
	}
}

//------------------------------------------
//------------------------------------------

func (s *FavoriteService) AddFavorite(ctx context.Context, userId string, movieId int64) error {
	if userId == "" {
		return ErrAuthRequired
	}

	err := s.favoriteRepo.AddFavorite(userId, movieId)
	if err != nil {
		return err
	}

	s.cacheSvc.Invalidate(ctx, model.FavoritesKey(userId))
	return nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userId string, movieId int64) error {
	if userId == "" {
		return ErrAuthRequired
	}

	err := s.favoriteRepo.RemoveFavorite(userId, movieId)
	if err != nil {
		return err
	}

	s.cacheSvc.Invalidate(ctx, model.FavoritesKey(userId))
	return nil
}

func (s *FavoriteService) GetFavoriteIds(ctx context.Context, userId string) ([]int64, error) {
	if userId == "" {
		return []int64{}, nil
	}

	result := make([]int64, 0)
	ttl := time.Duration(configs.GetDbConfigs().FavoritesCacheTtlMin) * time.Minute
	err := s.cacheSvc.Fetch(ctx, model.FavoritesKey(userId), ttl, &result, func() (interface{}, error) {
		return s.favoriteRepo.GetFavoriteMovieIds(userId)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetFavoriteMovies resolves every favorite id against the catalog, the
// detail list is always derived and never stored on its own.
func (s *FavoriteService) GetFavoriteMovies(ctx context.Context, userId string) ([]*model.Movie, error) {
	movieIds, err := s.GetFavoriteIds(ctx, userId)
	if err != nil {
		return nil, err
	}

	movies := make([]*model.Movie, 0, len(movieIds))
	for _, movieId := range movieIds {
		movie, err := s.catalogSvc.GetMovieById(ctx, movieId)
		if err != nil {
			errorMessage := fmt.Sprintf("Error on resolving favorite movie %v: %v", movieId, err)
			errorHandler.SaveError(errorMessage, err)
			continue
		}
		movies = append(movies, movie)
	}
	return movies, nil
}
