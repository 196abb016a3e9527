package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	s := FromViper(v)
	assert.Equal(t, "8000", s.Port)
	assert.Equal(t, "sqlite", s.DBDriver)
	assert.Equal(t, "memory", s.CacheBackend)
	assert.Equal(t, 20*time.Second, s.CacheTTL)
	assert.Equal(t, 10, s.PostsPerPage)
	assert.Equal(t, 24*time.Hour, s.TokenTTL)
	assert.Equal(t, int64(5<<20), s.MaxUploadBytes)
	assert.Equal(t, 1.0, s.LoginRate)
	assert.Equal(t, 5, s.LoginBurst)
	assert.False(t, s.CookieSecure)
	assert.Empty(t, s.JWTSecret)
}

func TestFromViperEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("POSTS_PER_PAGE", "25")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_SECRET", "s3cr3t")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	s := FromViper(v)
	assert.Equal(t, "postgres", s.DBDriver)
	assert.Equal(t, "redis", s.CacheBackend)
	assert.Equal(t, time.Minute, s.CacheTTL)
	assert.Equal(t, 25, s.PostsPerPage)
	assert.Equal(t, 3, s.RedisDB)
	assert.Equal(t, "s3cr3t", s.JWTSecret)
}

func TestDialector(t *testing.T) {
	for _, driver := range []string{"", "sqlite", "mysql", "postgres"} {
		d, err := Dialector(driver, "dsn")
		assert.NoError(t, err, driver)
		assert.NotNil(t, d)
	}

	_, err := Dialector("oracle", "dsn")
	assert.Error(t, err)
}
