package middleware

import (
	"context"
	"movie_discovery/configs"
	"movie_discovery/db/redis"
	"movie_discovery/pkg/response"
	"movie_discovery/util"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware guards mutating routes: without a valid session the request
// is rejected with 401.
func AuthMiddleware(c *fiber.Ctx) error {
	claims, errMsg := resolveSession(c)
	if claims == nil {
		return response.ResponseError(c, errMsg, fiber.StatusUnauthorized)
	}

	c.Locals("jwtUserData", claims)
	return c.Next()
}

// SessionMiddleware resolves the session when one is present and lets the
// request through as anonymous otherwise. Read routes use it so anonymous
// browsing never errors.
func SessionMiddleware(c *fiber.Ctx) error {
	claims, _ := resolveSession(c)
	if claims != nil {
		c.Locals("jwtUserData", claims)
	}
	return c.Next()
}

func GetJwtClaims(c *fiber.Ctx) *util.MyJwtClaims {
	claims, ok := c.Locals("jwtUserData").(*util.MyJwtClaims)
	if !ok {
		return nil
	}
	return claims
}

//--------------------------------
//--------------------------------

func resolveSession(c *fiber.Ctx) (*util.MyJwtClaims, string) {
	refreshToken := c.Cookies("refreshToken", "")
	if refreshToken == "" {
		refreshToken = c.Get("refreshtoken", "")
		if refreshToken == "" {
			refreshToken = c.Get("refreshToken", "")
		}
	}

	if refreshToken == "" {
		return nil, "Unauthorized, refreshToken not provided"
	}

	// bounded blacklist lookup: when the store does not answer in time the
	// request is treated as anonymous rather than suspended
	timeout := time.Duration(configs.GetDbConfigs().SessionResolveTimeoutSec) * time.Second
	ctx, cancel := context.WithTimeout(c.Context(), timeout)
	defer cancel()

	result, err := redis.GetRedis(ctx, "jwtKey:"+refreshToken)
	if err == nil && result != "" {
		return nil, "Unauthorized, refreshToken is in blacklist"
	}

	token, claims, err := util.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, "Unauthorized, Invalid refreshToken"
	}
	if token == nil || claims == nil {
		return nil, "Unauthorized, Invalid refreshToken metaData"
	}

	//--------------------------------
	//--------------------------------

	accessToken := c.Get("Authorization", "")
	strArr := strings.Split(accessToken, " ")
	if len(strArr) == 2 {
		accessToken = strArr[1]
	} else if len(strArr) == 0 || len(accessToken) < 30 {
		return nil, "Unauthorized, Invalid accessToken"
	}

	token2, claims2, err := util.VerifyToken(accessToken)
	if err != nil {
		return nil, "Unauthorized, Invalid accessToken"
	}
	if token2 == nil || claims2 == nil {
		return nil, "Unauthorized, Invalid accessToken metaData"
	}

	return claims2, ""
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
