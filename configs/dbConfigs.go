package configs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DbConfigData struct {
	Id                       primitive.ObjectID `bson:"_id"`
	Title                    string             `bson:"title"`
	CorsAllowedOrigins       []string           `bson:"corsAllowedOrigins"`
	DisableSignup            bool               `bson:"disableSignup"`
	SearchProfilesLimit      int64              `bson:"searchProfilesLimit"`
	CatalogCacheTtlMin       int64              `bson:"catalogCacheTtlMin"`
	FavoritesCacheTtlMin     int64              `bson:"favoritesCacheTtlMin"`
	SessionResolveTimeoutSec int64              `bson:"sessionResolveTimeoutSec"`
}

var rwm sync.RWMutex
var dbConfigs = DbConfigData{
	SearchProfilesLimit:      20,
	CatalogCacheTtlMin:       10,
	FavoritesCacheTtlMin:     60,
	SessionResolveTimeoutSec: 3,
}

func GetDbConfigs() DbConfigData {
	rwm.RLock()
	defer rwm.RUnlock()
	return dbConfigs
}

func LoadDbConfigs(mongodb *mongo.Database) {
	tick := time.NewTicker(15 * time.Minute)
	load(mongodb)
	for range tick.C {
		load(mongodb)
	}
}

func load(mongodb *mongo.Database) {
	rwm.Lock()
	defer rwm.Unlock()
	err := mongodb.
		Collection("configs").
		FindOne(context.Background(), bson.D{{Key: "title", Value: "server configs"}}).
		Decode(&dbConfigs)
	if err != nil {
		errorMessage := fmt.Sprintf("could not get dbConfig from mongodb: %s", err)
		if configs.PrintErrors {
			log.Println(errorMessage)
		}
		sentry.CaptureException(err)
	}

	// keep sane values when the document misses fields
	if dbConfigs.SearchProfilesLimit <= 0 {
		dbConfigs.SearchProfilesLimit = 20
	}
	if dbConfigs.CatalogCacheTtlMin <= 0 {
		dbConfigs.CatalogCacheTtlMin = 10
	}
	if dbConfigs.FavoritesCacheTtlMin <= 0 {
		dbConfigs.FavoritesCacheTtlMin = 60
	}
	if dbConfigs.SessionResolveTimeoutSec <= 0 {
		dbConfigs.SessionResolveTimeoutSec = 3
	}
}
