package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/phillip/charity-admin-go/repository"
	"github.com/phillip/charity-admin-go/storage"
)

const (
	DefaultMaxFileSize  = 10 << 20 // 10 MiB
	DefaultAllowedTypes = "image/jpeg,image/jpg,image/png,image/webp,image/gif"
)

// Config carries both the environment settings and the constructed
// dependencies (logger, repositories, storage chain). Handlers receive it at
// construction; nothing reads the environment after startup.
type Config struct {
	Port string
	Env  string // development | production

	UpstreamURL   string
	UpstreamToken string
	PublicBaseURL string

	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseBucket     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	UploadMaxSize      int64
	UploadAllowedTypes []string
	UploadDir          string

	MongoURI string
	DBName   string

	JWTSecret string

	Logger      *zap.SugaredLogger
	MongoClient *mongo.Client
	Repos       repository.Store
	Storage     *storage.Chain
}

func Load() *Config {
	// Missing .env is fine; deployments configure through the environment.
	_ = godotenv.Load()

	maxSize := int64(DefaultMaxFileSize)
	if v := os.Getenv("UPLOAD_MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxSize = n
		}
	}

	return &Config{
		Port: getenv("PORT", "8080"),
		Env:  getenv("APP_ENV", "development"),

		UpstreamURL:   strings.TrimRight(os.Getenv("UPSTREAM_API_URL"), "/"),
		UpstreamToken: os.Getenv("UPSTREAM_API_TOKEN"),
		PublicBaseURL: strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),

		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		SupabaseBucket:     getenv("SUPABASE_BUCKET", "dashboard-uploads"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		UploadMaxSize:      maxSize,
		UploadAllowedTypes: splitList(getenv("UPLOAD_ALLOWED_TYPES", DefaultAllowedTypes)),
		UploadDir:          getenv("UPLOAD_DIR", "public/uploads"),

		MongoURI: os.Getenv("MONGO_URI"),
		DBName:   getenv("MONGO_DB", "charity_admin"),

		JWTSecret: os.Getenv("JWT_SECRET"),
	}
}

func (c *Config) Development() bool {
	return c.Env != "production"
}

func (c *Config) HasSupabase() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}

func (c *Config) HasCloudinary() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// AllowedType reports whether a MIME type is in the configured allow-list.
func (c *Config) AllowedType(mimeType string) bool {
	for _, t := range c.UploadAllowedTypes {
		if strings.EqualFold(t, mimeType) {
			return true
		}
	}
	return false
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
