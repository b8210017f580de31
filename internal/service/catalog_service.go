package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"movie_discovery/configs"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
	"net/http"
	"net/url"
	"time"
)

type ICatalogService interface {
	GetPopularMovies(ctx context.Context, page int) (*model.MoviePage, error)
	SearchMovies(ctx context.Context, query string, page int) (*model.MoviePage, error)
	GetMovieById(ctx context.Context, movieId int64) (*model.Movie, error)
	GetMovieCredits(ctx context.Context, movieId int64) (*model.Credits, error)
	GetMovieVideos(ctx context.Context, movieId int64) (*model.VideoPage, error)
	GetTrending(ctx context.Context, page int) (*model.MoviePage, error)
	GetPopularShows(ctx context.Context, page int) (*model.MoviePage, error)
}

var ErrCatalogRequest = errors.New("catalog request failed")

// CatalogService wraps the external read-only catalog api. Pagination is a
// passthrough integer, results are cached under their query key and never
// persisted anywhere else.
type CatalogService struct {
	baseUrl    string
	apiKey     string
	httpClient *http.Client
	cacheSvc   ICacheService
}

func NewCatalogService(cacheSvc ICacheService, baseUrl string, apiKey string) *CatalogService {
	return &CatalogService{
		baseUrl: baseUrl,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cacheSvc: cacheSvc,
	}
}

//------------------------------------------
//------------------------------------------

func (s *CatalogService) GetPopularMovies(ctx context.Context, page int) (*model.MoviePage, error) {
	return s.fetchPage(ctx, "/movie/popular", nil, page, model.PopularMoviesKey(page))
}

func (s *CatalogService) SearchMovies(ctx context.Context, query string, page int) (*model.MoviePage, error) {
	params := url.Values{}
	params.Set("query", query)
	return s.fetchPage(ctx, "/search/movie", params, page, model.SearchMoviesKey(query, page))
}

func (s *CatalogService) GetTrending(ctx context.Context, page int) (*model.MoviePage, error) {
	return s.fetchPage(ctx, "/trending/all/week", nil, page, model.TrendingKey(page))
}

func (s *CatalogService) GetPopularShows(ctx context.Context, page int) (*model.MoviePage, error) {
	return s.fetchPage(ctx, "/tv/popular", nil, page, model.PopularShowsKey(page))
}

func (s *CatalogService) GetMovieById(ctx context.Context, movieId int64) (*model.Movie, error) {
	result := &model.Movie{}
	key := model.MovieDetailKey(movieId)
	err := s.cacheSvc.Fetch(ctx, key, s.cacheTtl(), result, func() (interface{}, error) {
		movie := &model.Movie{}
		err := s.getJson(ctx, fmt.Sprintf("/movie/%v", movieId), nil, movie)
		return movie, err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *CatalogService) GetMovieCredits(ctx context.Context, movieId int64) (*model.Credits, error) {
	result := &model.Credits{}
	key := model.MovieCreditsKey(movieId)
	err := s.cacheSvc.Fetch(ctx, key, s.cacheTtl(), result, func() (interface{}, error) {
		credits := &model.Credits{}
		err := s.getJson(ctx, fmt.Sprintf("/movie/%v/credits", movieId), nil, credits)
		return credits, err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *CatalogService) GetMovieVideos(ctx context.Context, movieId int64) (*model.VideoPage, error) {
	result := &model.VideoPage{}
	key := model.MovieVideosKey(movieId)
	err := s.cacheSvc.Fetch(ctx, key, s.cacheTtl(), result, func() (interface{}, error) {
		videos := &model.VideoPage{}
		err := s.getJson(ctx, fmt.Sprintf("/movie/%v/videos", movieId), nil, videos)
		return videos, err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

//------------------------------------------
//------------------------------------------

func (s *CatalogService) fetchPage(ctx context.Context, path string, params url.Values, page int, key model.QueryKey) (*model.MoviePage, error) {
	if page < 1 {
		page = 1
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("page", fmt.Sprintf("%d", page))

	result := &model.MoviePage{}
	err := s.cacheSvc.Fetch(ctx, key, s.cacheTtl(), result, func() (interface{}, error) {
		moviePage := &model.MoviePage{}
		err := s.getJson(ctx, path, params, moviePage)
		if err != nil {
			return nil, err
		}
		// emptiness is the only pagination signal the client consumes
		moviePage.HasNext = len(moviePage.Results) > 0
		return moviePage, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *CatalogService) getJson(ctx context.Context, path string, params url.Values, dest interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", s.apiKey)
	params.Set("language", "en-US")
	requestUrl := s.baseUrl + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on calling catalog api [%v]: %v", path, err)
		errorHandler.SaveError(errorMessage, err)
		return fmt.Errorf("%w: %v", ErrCatalogRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorMessage := fmt.Sprintf("Error on calling catalog api [%v]: bad status: %v", path, resp.Status)
		errorHandler.SaveError(errorMessage, nil)
		return fmt.Errorf("%w: bad status: %v", ErrCatalogRequest, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogRequest, err)
	}

	return json.Unmarshal(body, dest)
}

func (s *CatalogService) cacheTtl() time.Duration {
	return time.Duration(configs.GetDbConfigs().CatalogCacheTtlMin) * time.Minute
}
