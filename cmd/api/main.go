package main

import (
	"log"
	"movie_discovery/api"
	"movie_discovery/configs"
	"movie_discovery/db"
	"movie_discovery/db/mongodb"
	"movie_discovery/db/redis"
	"movie_discovery/internal/handler"
	"movie_discovery/internal/repository"
	"movie_discovery/internal/service"
	"movie_discovery/pkg/logger"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						Movie Discovery
// @version					1.0
// @description				Catalog browsing, favorites and follows of the movie discovery project.
// @termsOfService				http://swagger.io/terms/
// @contact.name				API Support
// @contact.url				http://www.swagger.io/support
// @contact.email				support@swagger.io
// @license.name				Apache 2.0
// @license.url				http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()
	logger.Init("movie-discovery-api", os.Getenv("DEVELOPMENT") == "true")
	logger.SetLevel(os.Getenv("LOG_LEVEL"))

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()

	postgres, err := db.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize postgres database connection: %s", err)
	}

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize mongodb database connection: %s", err)
	}
	go configs.LoadDbConfigs(mongoDB.GetDB())

	cacheSvc := service.NewCacheService(redis.NewStore())

	userRep := repository.NewUserRepository(postgres.GetDB())
	favoriteRep := repository.NewFavoriteRepository(postgres.GetDB())
	followRep := repository.NewFollowRepository(postgres.GetDB())

	catalogSvc := service.NewCatalogService(
		cacheSvc,
		configs.GetConfigs().CatalogBaseUrl,
		configs.GetConfigs().CatalogApiKey,
	)
	favoriteSvc := service.NewFavoriteService(favoriteRep, catalogSvc, cacheSvc)
	socialSvc := service.NewSocialService(followRep, userRep)
	userSvc := service.NewUserService(userRep, cacheSvc)

	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	favoriteHandler := handler.NewFavoriteHandler(favoriteSvc)
	socialHandler := handler.NewSocialHandler(socialSvc)
	userHandler := handler.NewUserHandler(userSvc)

	api.InitRouter(catalogHandler, favoriteHandler, socialHandler, userHandler)
	api.Start("0.0.0.0:" + configs.GetConfigs().Port)
}
