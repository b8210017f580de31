package service

import (
	"context"
	"fmt"
	"movie_discovery/model"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

//------------------------------------------
//------------------------------------------

type fakeFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[string][]int64
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: map[string][]int64{}}
}

func (f *fakeFavoriteRepo) AddFavorite(userId string, movieId int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.favorites[userId] {
		if id == movieId {
			return gorm.ErrDuplicatedKey
		}
	}
	f.favorites[userId] = append(f.favorites[userId], movieId)
	return nil
}

func (f *fakeFavoriteRepo) RemoveFavorite(userId string, movieId int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := make([]int64, 0)
	for _, id := range f.favorites[userId] {
		if id != movieId {
			kept = append(kept, id)
		}
	}
	f.favorites[userId] = kept
	return nil
}

func (f *fakeFavoriteRepo) GetFavoriteMovieIds(userId string) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]int64, len(f.favorites[userId]))
	copy(result, f.favorites[userId])
	return result, nil
}

//------------------------------------------
//------------------------------------------

type fakeCatalog struct {
	movies map[int64]*model.Movie
}

func (f *fakeCatalog) GetMovieById(ctx context.Context, movieId int64) (*model.Movie, error) {
	movie, ok := f.movies[movieId]
	if !ok {
		return nil, fmt.Errorf("%w: bad status: 404 Not Found", ErrCatalogRequest)
	}
	return movie, nil
}

func (f *fakeCatalog) GetPopularMovies(ctx context.Context, page int) (*model.MoviePage, error) {
	return &model.MoviePage{}, nil
}

func (f *fakeCatalog) SearchMovies(ctx context.Context, query string, page int) (*model.MoviePage, error) {
	return &model.MoviePage{}, nil
}

func (f *fakeCatalog) GetMovieCredits(ctx context.Context, movieId int64) (*model.Credits, error) {
	return &model.Credits{}, nil
}

func (f *fakeCatalog) GetMovieVideos(ctx context.Context, movieId int64) (*model.VideoPage, error) {
	return &model.VideoPage{}, nil
}

func (f *fakeCatalog) GetTrending(ctx context.Context, page int) (*model.MoviePage, error) {
	return &model.MoviePage{}, nil
}

func (f *fakeCatalog) GetPopularShows(ctx context.Context, page int) (*model.MoviePage, error) {
	return &model.MoviePage{}, nil
}

//------------------------------------------
//------------------------------------------

func newFavoriteService() (*FavoriteService, *fakeFavoriteRepo, *fakeCatalog) {
	favoriteRepo := newFakeFavoriteRepo()
	catalog := &fakeCatalog{movies: map[int64]*model.Movie{}}
	cacheSvc := NewCacheService(newMemKvStore())
	return NewFavoriteService(favoriteRepo, catalog, cacheSvc), favoriteRepo, catalog
}

func TestFavoriteServiceAnonymousListIsEmpty(t *testing.T) {
	favoriteSvc, _, _ := newFavoriteService()

	ids, err := favoriteSvc.GetFavoriteIds(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []int64{}, ids)

	movies, err := favoriteSvc.GetFavoriteMovies(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestFavoriteServiceMutationsRequireAuth(t *testing.T) {
	favoriteSvc, _, _ := newFavoriteService()

	err := favoriteSvc.AddFavorite(context.Background(), "", 603)
	assert.ErrorIs(t, err, ErrAuthRequired)

	err = favoriteSvc.RemoveFavorite(context.Background(), "", 603)
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestFavoriteServiceAddThenRemove(t *testing.T) {
	favoriteSvc, _, _ := newFavoriteService()
	userId := "user-1"

	// warm the cached list first, the mutations must invalidate it
	ids, err := favoriteSvc.GetFavoriteIds(context.Background(), userId)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, favoriteSvc.AddFavorite(context.Background(), userId, 603))
	ids, err = favoriteSvc.GetFavoriteIds(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, []int64{603}, ids)

	require.NoError(t, favoriteSvc.RemoveFavorite(context.Background(), userId, 603))
	ids, err = favoriteSvc.GetFavoriteIds(context.Background(), userId)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFavoriteServiceAddDuplicate(t *testing.T) {
	favoriteSvc, _, _ := newFavoriteService()
	userId := "user-1"

	require.NoError(t, favoriteSvc.AddFavorite(context.Background(), userId, 603))
	err := favoriteSvc.AddFavorite(context.Background(), userId, 603)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestFavoriteServiceRemoveAbsentIsNoop(t *testing.T) {
	favoriteSvc, _, _ := newFavoriteService()

	err := favoriteSvc.RemoveFavorite(context.Background(), "user-1", 42)
	assert.NoError(t, err)
}

func TestFavoriteServiceGetFavoriteMovies(t *testing.T) {
	favoriteSvc, _, catalog := newFavoriteService()
	userId := "user-1"

	catalog.movies[603] = &model.Movie{Id: 603, Title: "The Matrix"}
	catalog.movies[604] = &model.Movie{Id: 604, Title: "The Matrix Reloaded"}

	require.NoError(t, favoriteSvc.AddFavorite(context.Background(), userId, 603))
	require.NoError(t, favoriteSvc.AddFavorite(context.Background(), userId, 604))
	// 605 cannot be resolved against the catalog, the rest of the list
	// still comes back
	require.NoError(t, favoriteSvc.AddFavorite(context.Background(), userId, 605))

	movies, err := favoriteSvc.GetFavoriteMovies(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "The Matrix", movies[0].Title)
	assert.Equal(t, "The Matrix Reloaded", movies[1].Title)
}

func TestFavoriteServiceListsAreIsolatedPerUser(t *testing.T) {
	favoriteSvc, _, _ := newFavoriteService()

	require.NoError(t, favoriteSvc.AddFavorite(context.Background(), "user-1", 603))

	ids, err := favoriteSvc.GetFavoriteIds(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
