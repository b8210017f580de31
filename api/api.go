package api

import (
	"context"
	"errors"
	"fmt"
	"movie_discovery/api/middleware"
	"movie_discovery/configs"
	_ "movie_discovery/docs"
	"movie_discovery/internal/handler"
	"movie_discovery/pkg/response"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/gofiber/template/html/v2"
)

var router *fiber.App

func InitRouter(
	catalogHandler *handler.CatalogHandler,
	favoriteHandler *handler.FavoriteHandler,
	socialHandler *handler.SocialHandler,
	userHandler *handler.UserHandler,
) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		return response.ResponseError(c, "Internal Error", code)
	}

	engine := html.New("./templates", ".tpl")
	router = fiber.New(fiber.Config{
		UnescapePath: true,
		ErrorHandler: defaultErrorHandler,
		Views:        engine,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// rendered detail overlay page
	router.Get("/movie/:movieId", middleware.SessionMiddleware, catalogHandler.MoviePage)

	catalogRoutes := router.Group("v1/catalog")
	{
		catalogRoutes.Get("/popular", catalogHandler.GetPopularMovies)
		catalogRoutes.Get("/search", catalogHandler.SearchMovies)
		catalogRoutes.Get("/trending", catalogHandler.GetTrending)
		catalogRoutes.Get("/shows/popular", catalogHandler.GetPopularShows)
		catalogRoutes.Get("/movie/:movieId", catalogHandler.GetMovieById)
		catalogRoutes.Get("/movie/:movieId/credits", catalogHandler.GetMovieCredits)
		catalogRoutes.Get("/movie/:movieId/videos", catalogHandler.GetMovieVideos)
	}

	favoriteRoutes := router.Group("v1/favorites")
	{
		favoriteRoutes.Get("/", middleware.SessionMiddleware, favoriteHandler.GetFavorites)
		favoriteRoutes.Get("/movies", middleware.SessionMiddleware, favoriteHandler.GetFavoriteMovies)
		favoriteRoutes.Put("/add/:movieId", middleware.AuthMiddleware, favoriteHandler.AddFavorite)
		favoriteRoutes.Delete("/remove/:movieId", middleware.AuthMiddleware, favoriteHandler.RemoveFavorite)
	}

	socialRoutes := router.Group("v1/social")
	{
		socialRoutes.Get("/search", middleware.AuthMiddleware, socialHandler.SearchUsers)
		socialRoutes.Get("/followData", middleware.AuthMiddleware, socialHandler.GetFollowData)
		socialRoutes.Put("/follow/:userId", middleware.AuthMiddleware, socialHandler.Follow)
		socialRoutes.Delete("/unfollow/:userId", middleware.AuthMiddleware, socialHandler.Unfollow)
		socialRoutes.Delete("/follower/:userId", middleware.AuthMiddleware, socialHandler.RemoveFollower)
	}

	userRoutes := router.Group("v1/user")
	{
		userRoutes.Post("/signup", userHandler.Signup)
		userRoutes.Post("/login", userHandler.Login)
		userRoutes.Post("/logout", middleware.AuthMiddleware, userHandler.Logout)
		userRoutes.Get("/me", middleware.SessionMiddleware, userHandler.GetMe)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault) // default
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {

		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.Context(), timeout)

		defer func() {
			// check if context timeout was reached
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {

				// write response and abort the request
				c.SendStatus(fiber.StatusGatewayTimeout)
			}

			//cancel to clear resources after finished
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}
