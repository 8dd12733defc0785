package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	config "github.com/phillip/charity-admin-go/config"
	"github.com/phillip/charity-admin-go/repository/mongostore"
	"github.com/phillip/charity-admin-go/repository/upstream"
	routes "github.com/phillip/charity-admin-go/routes"
	"github.com/phillip/charity-admin-go/storage"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("could not initialize logger: %v", err)
	}
	defer logger.Sync()
	cfg.Logger = logger.Sugar()

	// --- Repository selection: proxy to the upstream backend when one is
	// configured, otherwise run standalone against Mongo. ---
	switch {
	case cfg.UpstreamURL != "":
		cfg.Repos = upstream.New(cfg.UpstreamURL, cfg.UpstreamToken, cfg.Logger).Store()
		cfg.Logger.Infow("using upstream backend", "url", cfg.UpstreamURL)
	case cfg.MongoURI != "":
		client, err := connectMongo(cfg.MongoURI)
		if err != nil {
			cfg.Logger.Fatalw("could not connect to mongo", "error", err)
		}
		cfg.MongoClient = client
		cfg.Repos = mongostore.New(client, cfg.DBName)
		cfg.Logger.Infow("using standalone mongo store", "db", cfg.DBName)
	default:
		cfg.Logger.Fatal("either UPSTREAM_API_URL or MONGO_URI must be set")
	}

	// --- Storage chain: cloud providers first, local always last. ---
	var providers []storage.Provider
	if cfg.HasSupabase() {
		providers = append(providers,
			storage.NewSupabase(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseBucket))
	}
	if cfg.HasCloudinary() {
		cld, err := storage.NewCloudinary(
			cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			cfg.Logger.Warnw("skipping cloudinary provider", "error", err)
		} else {
			providers = append(providers, cld)
		}
	}
	local, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		cfg.Logger.Fatalw("could not set up local storage", "error", err)
	}
	providers = append(providers, local)
	cfg.Storage = storage.NewChain(cfg.Logger, providers...)
	cfg.Logger.Infow("storage providers configured", "order", cfg.Storage.Providers())

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "If-None-Match"},
		ExposeHeaders:    []string{"ETag", "Last-Modified"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	routes.SetupRoutes(r, cfg)

	cfg.Logger.Infow("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		cfg.Logger.Fatalw("server exited", "error", err)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func connectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}
