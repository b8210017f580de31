package handler

import (
	"errors"
	"movie_discovery/internal/service"
	"movie_discovery/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ICatalogHandler interface {
	GetPopularMovies(c *fiber.Ctx) error
	SearchMovies(c *fiber.Ctx) error
	GetMovieById(c *fiber.Ctx) error
	GetMovieCredits(c *fiber.Ctx) error
	GetMovieVideos(c *fiber.Ctx) error
	GetTrending(c *fiber.Ctx) error
	GetPopularShows(c *fiber.Ctx) error
	MoviePage(c *fiber.Ctx) error
}

type CatalogHandler struct {
	catalogService service.ICatalogService
}

func NewCatalogHandler(catalogService service.ICatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

//------------------------------------------
//------------------------------------------

// GetPopularMovies godoc
//
//	@Summary		Popular Movies
//	@Description	get a page of popular movies.
//	@Tags			Catalog
//	@Param			page	query		int	false	"page"
//	@Success		200		{object}	model.MoviePage
//	@Failure		502		{object}	response.ResponseErrorModel
//	@Router			/v1/catalog/popular [get]
func (m *CatalogHandler) GetPopularMovies(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	res, err := m.catalogService.GetPopularMovies(c.Context(), page)
	if err != nil {
		return catalogError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// SearchMovies godoc
//
//	@Summary		Search Movies
//	@Description	search movies by title.
//	@Tags			Catalog
//	@Param			query	query		string	true	"search query"
//	@Param			page	query		int		false	"page"
//	@Success		200		{object}	model.MoviePage
//	@Failure		400,502	{object}	response.ResponseErrorModel
//	@Router			/v1/catalog/search [get]
func (m *CatalogHandler) SearchMovies(c *fiber.Ctx) error {
	query := c.Query("query", "")
	if query == "" {
		return response.ResponseError(c, "Invalid search query", fiber.StatusBadRequest)
	}
	page := c.QueryInt("page", 1)

	res, err := m.catalogService.SearchMovies(c.Context(), query, page)
	if err != nil {
		return catalogError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// GetMovieById godoc
//
//	@Summary		Movie Detail
//	@Description	get detail of a movie by id.
//	@Tags			Catalog
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200		{object}	model.Movie
//	@Failure		400,502	{object}	response.ResponseErrorModel
//	@Router			/v1/catalog/movie/:movieId [get]
func (m *CatalogHandler) GetMovieById(c *fiber.Ctx) error {
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId <= 0 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	res, err := m.catalogService.GetMovieById(c.Context(), int64(movieId))
	if err != nil {
		return catalogError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// GetMovieCredits godoc
//
//	@Summary		Movie Credits
//	@Description	get the cast of a movie.
//	@Tags			Catalog
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200		{object}	model.Credits
//	@Failure		400,502	{object}	response.ResponseErrorModel
//	@Router			/v1/catalog/movie/:movieId/credits [get]
func (m *CatalogHandler) GetMovieCredits(c *fiber.Ctx) error {
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId <= 0 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	res, err := m.catalogService.GetMovieCredits(c.Context(), int64(movieId))
	if err != nil {
		return catalogError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// GetMovieVideos godoc
//
//	@Summary		Movie Videos
//	@Description	get trailers and other videos of a movie.
//	@Tags			Catalog
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200		{object}	model.VideoPage
//	@Failure		400,502	{object}	response.ResponseErrorModel
//	@Router			/v1/catalog/movie/:movieId/videos [get]
func (m *CatalogHandler) GetMovieVideos(c *fiber.Ctx) error {
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId <= 0 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	res, err := m.catalogService.GetMovieVideos(c.Context(), int64(movieId))
	if err != nil {
		return catalogError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// GetTrending godoc
//
//	@Summary		Trending
//	@Description	get a page of this week's trending movies and shows.
//	@Tags			Catalog
//	@Param			page	query		int	false	"page"
//	@Success		200		{object}	model.MoviePage
//	@Failure		502		{object}	response.ResponseErrorModel
//	@Router			/v1/catalog/trending [get]
func (m *CatalogHandler) GetTrending(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	res, err := m.catalogService.GetTrending(c.Context(), page)
	if err != nil {
		return catalogError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// GetPopularShows godoc
//
//	@Summary		Popular Shows
//	@Description	get a page of popular tv shows.
//	@Tags			Catalog
//	@Param			page	query		int	false	"page"
//	@Success		200		{object}	model.MoviePage
//	@Failure		502		{object}	response.ResponseErrorModel
//	@Router			/v1/catalog/shows/popular [get]
func (m *CatalogHandler) GetPopularShows(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	res, err := m.catalogService.GetPopularShows(c.Context(), page)
	if err != nil {
		return catalogError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

//------------------------------------------
//------------------------------------------

// MoviePage renders the detail overlay page with synopsis, rating, release
// date and the trailer embed.
func (m *CatalogHandler) MoviePage(c *fiber.Ctx) error {
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId <= 0 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	movie, err := m.catalogService.GetMovieById(c.Context(), int64(movieId))
	if err != nil {
		return catalogError(c, err)
	}

	trailerKey := ""
	videos, err := m.catalogService.GetMovieVideos(c.Context(), int64(movieId))
	if err == nil {
		if trailer := videos.Trailer(); trailer != nil {
			trailerKey = trailer.Key
		}
	}

	return c.Render("movie", fiber.Map{
		"Movie":      movie,
		"TrailerKey": trailerKey,
	})
}

//------------------------------------------
//------------------------------------------

func catalogError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrCatalogRequest) {
		return response.ResponseError(c, response.CatalogUnavailable, fiber.StatusBadGateway)
	}
	return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
}
