package handler

import (
	"context"
	"encoding/json"
	"io"
	"movie_discovery/internal/service"
	"movie_discovery/model"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogService struct {
	err  error
	page *model.MoviePage
}

func (s *stubCatalogService) GetPopularMovies(ctx context.Context, page int) (*model.MoviePage, error) {
	return s.page, s.err
}

func (s *stubCatalogService) SearchMovies(ctx context.Context, query string, page int) (*model.MoviePage, error) {
	return s.page, s.err
}

func (s *stubCatalogService) GetMovieById(ctx context.Context, movieId int64) (*model.Movie, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Movie{Id: movieId}, nil
}

func (s *stubCatalogService) GetMovieCredits(ctx context.Context, movieId int64) (*model.Credits, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Credits{Id: movieId}, nil
}

func (s *stubCatalogService) GetMovieVideos(ctx context.Context, movieId int64) (*model.VideoPage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.VideoPage{Id: movieId}, nil
}

func (s *stubCatalogService) GetTrending(ctx context.Context, page int) (*model.MoviePage, error) {
	return s.page, s.err
}

func (s *stubCatalogService) GetPopularShows(ctx context.Context, page int) (*model.MoviePage, error) {
	return s.page, s.err
}

func newCatalogApp(stub *stubCatalogService) *fiber.App {
	catalogHandler := NewCatalogHandler(stub)
	app := fiber.New()
	app.Get("/v1/catalog/popular", catalogHandler.GetPopularMovies)
	app.Get("/v1/catalog/search", catalogHandler.SearchMovies)
	app.Get("/v1/catalog/movie/:movieId", catalogHandler.GetMovieById)
	return app
}

//------------------------------------------
//------------------------------------------

func TestCatalogHandlerGetPopularMovies(t *testing.T) {
	stub := &stubCatalogService{page: &model.MoviePage{
		Page:    1,
		Results: []model.Movie{{Id: 603, Title: "The Matrix"}},
		HasNext: true,
	}}
	app := newCatalogApp(stub)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/catalog/popular?page=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Data model.MoviePage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.Len(t, parsed.Data.Results, 1)
	assert.True(t, parsed.Data.HasNext)
}

func TestCatalogHandlerSearchRequiresQuery(t *testing.T) {
	app := newCatalogApp(&stubCatalogService{page: &model.MoviePage{}})

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/catalog/search", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCatalogHandlerUpstreamFailureMapsToBadGateway(t *testing.T) {
	app := newCatalogApp(&stubCatalogService{err: service.ErrCatalogRequest})

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/catalog/movie/603", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
