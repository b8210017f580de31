package handler

import (
	"errors"
	"movie_discovery/api/middleware"
	"movie_discovery/internal/service"
	"movie_discovery/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ISocialHandler interface {
	SearchUsers(c *fiber.Ctx) error
	Follow(c *fiber.Ctx) error
	Unfollow(c *fiber.Ctx) error
	RemoveFollower(c *fiber.Ctx) error
	GetFollowData(c *fiber.Ctx) error
}

type SocialHandler struct {
	socialService service.ISocialService
}

func NewSocialHandler(socialService service.ISocialService) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
	}
}

//------------------------------------------
//------------------------------------------

// SearchUsers godoc
//
//	@Summary		Search Users
//	@Description	search profiles by username, case-insensitive substring match.
//	@Tags			Social
//	@Param			username	path		string	true	"username pattern"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		401			{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/social/search [get]
func (m *SocialHandler) SearchUsers(c *fiber.Ctx) error {
	claims := middleware.GetJwtClaims(c)
	pattern := c.Query("username", "")

	res, err := m.socialService.SearchUsers(c.Context(), claims.UserId, pattern)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// GetFollowData godoc
//
//	@Summary		Follow Data
//	@Description	get followers/following lists and counts of the current user.
//	@Tags			Social
//	@Success		200	{object}	model.FollowDataRes
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/social/followData [get]
func (m *SocialHandler) GetFollowData(c *fiber.Ctx) error {
	claims := middleware.GetJwtClaims(c)

	res, err := m.socialService.GetFollowData(c.Context(), claims.UserId)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

//------------------------------------------
//------------------------------------------

// Follow godoc
//
//	@Summary		Follow User
//	@Description	follow another user.
//	@Tags			Social
//	@Param			userId			path		string	true	"target userId"
//	@Success		200				{object}	response.ResponseOKModel
//	@Failure		400,401,409		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/social/follow/:userId [put]
func (m *SocialHandler) Follow(c *fiber.Ctx) error {
	targetId := c.Params("userId", "")
	if targetId == "" || targetId == ":userId" {
		return response.ResponseError(c, "Invalid userId", fiber.StatusBadRequest)
	}

	claims := middleware.GetJwtClaims(c)
	err := m.socialService.Follow(c.Context(), claims.UserId, targetId)
	if err != nil {
		if errors.Is(err, service.ErrSelfFollow) {
			return response.ResponseError(c, response.CantFollowSelf, fiber.StatusBadRequest)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.ResponseError(c, response.AlreadyFollowed, fiber.StatusConflict)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, err.Error(), fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, "")
}

// Unfollow godoc
//
//	@Summary		Unfollow User
//	@Description	remove the follow edge from the current user to the target.
//	@Tags			Social
//	@Param			userId		path		string	true	"target userId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/social/unfollow/:userId [delete]
func (m *SocialHandler) Unfollow(c *fiber.Ctx) error {
	targetId := c.Params("userId", "")
	if targetId == "" || targetId == ":userId" {
		return response.ResponseError(c, "Invalid userId", fiber.StatusBadRequest)
	}

	claims := middleware.GetJwtClaims(c)
	err := m.socialService.Unfollow(c.Context(), claims.UserId, targetId)
	if err != nil {
		return response.ResponseError(c, err.Error(), fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, "")
}

// RemoveFollower godoc
//
//	@Summary		Remove Follower
//	@Description	remove the follow edge from the target to the current user.
//	@Tags			Social
//	@Param			userId		path		string	true	"target userId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/social/follower/:userId [delete]
func (m *SocialHandler) RemoveFollower(c *fiber.Ctx) error {
	targetId := c.Params("userId", "")
	if targetId == "" || targetId == ":userId" {
		return response.ResponseError(c, "Invalid userId", fiber.StatusBadRequest)
	}

	claims := middleware.GetJwtClaims(c)
	err := m.socialService.RemoveFollower(c.Context(), claims.UserId, targetId)
	if err != nil {
		return response.ResponseError(c, err.Error(), fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, "")
}
