package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings holds everything read from the environment (or .env).
type Settings struct {
	Env  string
	Port string

	DBDriver string
	DBDSN    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CacheBackend string
	CacheTTL     time.Duration

	PostsPerPage int

	JWTSecret string
	TokenTTL  time.Duration

	MediaRoot      string
	MediaURL       string
	MaxUploadBytes int64

	LoginRate  float64
	LoginBurst int

	CookieSecure bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8000")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "yatube.db")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_BACKEND", "memory")
	v.SetDefault("CACHE_TTL", "20s")
	v.SetDefault("POSTS_PER_PAGE", 10)
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("MEDIA_ROOT", "media")
	v.SetDefault("MEDIA_URL", "/media")
	v.SetDefault("MAX_UPLOAD_BYTES", 5<<20)
	v.SetDefault("LOGIN_RATE", 1.0)
	v.SetDefault("LOGIN_BURST", 5)
	v.SetDefault("COOKIE_SECURE", false)
}

// Init loads .env (if present) and returns the resolved settings.
func Init() *Settings {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	s := FromViper(v)
	if s.JWTSecret == "" {
		Logger.Fatal("JWT_SECRET is not set")
	}
	if s.CacheBackend == "redis" && s.RedisAddr == "" {
		Logger.Fatal("REDIS_ADDR is not set")
	}
	return s
}

// FromViper maps viper keys onto Settings. Split out from Init so tests can
// feed a pre-populated viper instance.
func FromViper(v *viper.Viper) *Settings {
	return &Settings{
		Env:            v.GetString("APP_ENV"),
		Port:           v.GetString("APP_PORT"),
		DBDriver:       v.GetString("DB_DRIVER"),
		DBDSN:          v.GetString("DB_DSN"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RedisDB:        v.GetInt("REDIS_DB"),
		CacheBackend:   v.GetString("CACHE_BACKEND"),
		CacheTTL:       v.GetDuration("CACHE_TTL"),
		PostsPerPage:   v.GetInt("POSTS_PER_PAGE"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		MediaRoot:      v.GetString("MEDIA_ROOT"),
		MediaURL:       v.GetString("MEDIA_URL"),
		MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
		LoginRate:      v.GetFloat64("LOGIN_RATE"),
		LoginBurst:     v.GetInt("LOGIN_BURST"),
		CookieSecure:   v.GetBool("COOKIE_SECURE"),
	}
}
