package handler

import (
	"errors"
	"movie_discovery/api/middleware"
	"movie_discovery/configs"
	"movie_discovery/internal/service"
	"movie_discovery/model"
	"movie_discovery/pkg/response"
	"movie_discovery/util"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IUserHandler interface {
	Signup(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
	GetMe(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

// Signup godoc
//
//	@Summary		Signup
//	@Description	register with email, password and display name.
//	@Tags			User
//	@Param			body			body		model.SignupReq	true	"registration data"
//	@Success		201				{object}	util.TokenDetail
//	@Failure		400,403,409		{object}	response.ResponseErrorModel
//	@Router			/v1/user/signup [post]
func (m *UserHandler) Signup(c *fiber.Ctx) error {
	var req model.SignupReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	tokens, err := m.userService.Signup(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSignupDisabled):
			return response.ResponseError(c, response.SignupDisabled, fiber.StatusForbidden)
		case errors.Is(err, service.ErrInvalidEmail):
			return response.ResponseError(c, response.InvalidEmail, fiber.StatusBadRequest)
		case errors.Is(err, service.ErrShortPassword):
			return response.ResponseError(c, response.ShortPassword, fiber.StatusBadRequest)
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return response.ResponseError(c, response.EmailAlreadyExist, fiber.StatusConflict)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	setSessionCookie(c, tokens)
	return response.ResponseCreated(c, tokens)
}

// Login godoc
//
//	@Summary		Login
//	@Description	sign in with email and password.
//	@Tags			User
//	@Param			body		body		model.LoginReq	true	"credentials"
//	@Success		200			{object}	util.TokenDetail
//	@Failure		400,401		{object}	response.ResponseErrorModel
//	@Router			/v1/user/login [post]
func (m *UserHandler) Login(c *fiber.Ctx) error {
	var req model.LoginReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	tokens, err := m.userService.Login(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
		case errors.Is(err, service.ErrWrongCredentials):
			return response.ResponseError(c, response.UserPassNotMatch, fiber.StatusUnauthorized)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	setSessionCookie(c, tokens)
	return response.ResponseOKWithData(c, tokens)
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	end the current session, the refresh token goes to the blacklist.
//	@Tags			User
//	@Success		200	{object}	response.ResponseOKModel
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/logout [post]
func (m *UserHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refreshToken", "")
	if refreshToken == "" {
		refreshToken = c.Get("refreshtoken", "")
	}
	if refreshToken == "" {
		return response.ResponseError(c, response.InvalidRefreshToken, fiber.StatusUnauthorized)
	}

	err := m.userService.Logout(c.Context(), refreshToken)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	c.ClearCookie("refreshToken")
	return response.ResponseOK(c, "")
}

// GetMe godoc
//
//	@Summary		Current User
//	@Description	get the current user, null when no session is present.
//	@Tags			User
//	@Success		200	{object}	model.CurrentUserRes
//	@Router			/v1/user/me [get]
func (m *UserHandler) GetMe(c *fiber.Ctx) error {
	claims := middleware.GetJwtClaims(c)
	if claims == nil {
		// absent session is not an error, the gate renders anonymous
		return response.ResponseOKWithData(c, nil)
	}

	res, err := m.userService.GetCurrentUser(c.Context(), claims.UserId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

//------------------------------------------
//------------------------------------------

func setSessionCookie(c *fiber.Ctx, tokens *util.TokenDetail) {
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    tokens.RefreshToken,
		MaxAge:   util.RefreshTokenExpireHour * 3600,
		HTTPOnly: true,
		SameSite: "Lax",
		Domain:   configs.GetConfigs().Domain,
	})
}
