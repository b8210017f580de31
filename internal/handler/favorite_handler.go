package handler

import (
	"errors"
	"movie_discovery/api/middleware"
	"movie_discovery/internal/service"
	"movie_discovery/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IFavoriteHandler interface {
	GetFavorites(c *fiber.Ctx) error
	GetFavoriteMovies(c *fiber.Ctx) error
	AddFavorite(c *fiber.Ctx) error
	RemoveFavorite(c *fiber.Ctx) error
}

type FavoriteHandler struct {
	favoriteService service.IFavoriteService
}

func NewFavoriteHandler(favoriteService service.IFavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

//------------------------------------------
//------------------------------------------

// GetFavorites godoc
//
//	@Summary		Favorite Ids
//	@Description	get the current user's favorite movie ids, empty when anonymous.
//	@Tags			Favorites
//	@Success		200	{object}	response.ResponseOKWithDataModel
//	@Router			/v1/favorites [get]
func (m *FavoriteHandler) GetFavorites(c *fiber.Ctx) error {
	userId := ""
	if claims := middleware.GetJwtClaims(c); claims != nil {
		userId = claims.UserId
	}

	res, err := m.favoriteService.GetFavoriteIds(c.Context(), userId)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// GetFavoriteMovies godoc
//
//	@Summary		Favorite Movies
//	@Description	get the current user's favorite movies resolved against the catalog.
//	@Tags			Favorites
//	@Success		200	{object}	response.ResponseOKWithDataModel
//	@Router			/v1/favorites/movies [get]
func (m *FavoriteHandler) GetFavoriteMovies(c *fiber.Ctx) error {
	userId := ""
	if claims := middleware.GetJwtClaims(c); claims != nil {
		userId = claims.UserId
	}

	res, err := m.favoriteService.GetFavoriteMovies(c.Context(), userId)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

//------------------------------------------
//------------------------------------------

// AddFavorite godoc
//
//	@Summary		Add Favorite
//	@Description	add a movie to the current user's favorites.
//	@Tags			Favorites
//	@Param			movieId			path		int	true	"movieId"
//	@Success		200				{object}	response.ResponseOKModel
//	@Failure		400,401,409		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/favorites/add/:movieId [put]
func (m *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId <= 0 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	claims := middleware.GetJwtClaims(c)
	userId := ""
	if claims != nil {
		userId = claims.UserId
	}

	err = m.favoriteService.AddFavorite(c.Context(), userId, int64(movieId))
	if err != nil {
		if errors.Is(err, service.ErrAuthRequired) {
			return response.ResponseError(c, response.NotAuthenticated, fiber.StatusUnauthorized)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.ResponseError(c, response.AlreadyExist, fiber.StatusConflict)
		}
		return response.ResponseError(c, err.Error(), fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, "")
}

// RemoveFavorite godoc
//
//	@Summary		Remove Favorite
//	@Description	remove a movie from the current user's favorites, no-op when absent.
//	@Tags			Favorites
//	@Param			movieId		path		int	true	"movieId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/favorites/remove/:movieId [delete]
func (m *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId <= 0 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	claims := middleware.GetJwtClaims(c)
	userId := ""
	if claims != nil {
		userId = claims.UserId
	}

	err = m.favoriteService.RemoveFavorite(c.Context(), userId, int64(movieId))
	if err != nil {
		if errors.Is(err, service.ErrAuthRequired) {
			return response.ResponseError(c, response.NotAuthenticated, fiber.StatusUnauthorized)
		}
		return response.ResponseError(c, err.Error(), fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, "")
}
