package main

import (
	"os"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	dbadapter "yatube/internal/adapters/database"
	"yatube/internal/adapters/httpapi"
	mediaadapter "yatube/internal/adapters/media"
	"yatube/internal/adapters/memory"
	redisadapter "yatube/internal/adapters/redis"
	"yatube/internal/config"
	commentapp "yatube/internal/core/comment/service"
	followapp "yatube/internal/core/follow/service"
	groupapp "yatube/internal/core/group/service"
	postapp "yatube/internal/core/post/service"
	userapp "yatube/internal/core/user/service"
	"yatube/internal/ports/pagecache"
)

func main() {
	config.InitLogger()
	settings := config.Init() // بارگذاری تنظیمات از .env

	// اتصال به دیتابیس و اجرای مایگریشن‌ها
	db := config.InitDB(settings)
	if err := dbadapter.AutoMigrate(db); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	var redisClient *redis.Client
	var cache pagecache.PageCache
	switch settings.CacheBackend {
	case "redis":
		redisClient = config.InitRedis(settings)
		cache = redisadapter.NewPageCacheRedis(redisClient, redisadapter.DefaultPagePrefix)
	default:
		cache = memory.NewPageCache(memory.DefaultPageCacheSize, settings.CacheTTL)
	}
	config.Logger.Info("Page cache ready", zap.String("backend", settings.CacheBackend), zap.Duration("ttl", settings.CacheTTL))

	// بستن منابع بعد از اتمام کار سرور
	defer closeResources(config.Logger, redisClient)

	storage, err := mediaadapter.NewLocalStorage(settings.MediaRoot)
	if err != nil {
		config.Logger.Fatal("Media storage unavailable", zap.Error(err))
	}

	userRepo := dbadapter.NewUserRepositoryDatabase(db)       // آداپتر خروجی
	groupRepo := dbadapter.NewGroupRepositoryDatabase(db)     // آداپتر خروجی
	postRepo := dbadapter.NewPostRepositoryDatabase(db)       // آداپتر خروجی
	commentRepo := dbadapter.NewCommentRepositoryDatabase(db) // آداپتر خروجی
	followRepo := dbadapter.NewFollowRepositoryDatabase(db)   // آداپتر خروجی

	uc := httpapi.UseCases{
		Users:    userapp.NewUserService(userRepo, []byte(settings.JWTSecret), settings.TokenTTL, config.Logger),
		Posts:    postapp.NewPostService(postRepo, groupRepo, userRepo, commentRepo, storage, settings.PostsPerPage, config.Logger),
		Groups:   groupapp.NewGroupService(groupRepo, config.Logger),
		Comments: commentapp.NewCommentService(commentRepo, postRepo, config.Logger),
		Follows:  followapp.NewFollowService(followRepo, userRepo, config.Logger),
	}
	r := httpapi.SetupRoutes(uc, httpapi.Options{ // تزریق یوزکیس به آداپتر ورودی
		Cache:          cache,
		CacheTTL:       settings.CacheTTL,
		MediaRoot:      settings.MediaRoot,
		MediaURL:       settings.MediaURL,
		MaxUploadBytes: settings.MaxUploadBytes,
		LoginRate:      settings.LoginRate,
		LoginBurst:     settings.LoginBurst,
		SecureCookie:   settings.CookieSecure,
		Logger:         config.Logger,
	})

	config.Logger.Info("App is running...", zap.String("port", settings.Port))
	if err := r.Run(":" + settings.Port); err != nil {
		config.Logger.Error("Server failed to start", zap.Error(err))
		closeResources(config.Logger, redisClient)
		os.Exit(1)
	}
}

// closeResources بستن اتصالات به Redis و دیتابیس
func closeResources(logger *zap.Logger, redisClient *redis.Client) {
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}

	sqlDB, err := config.DB.DB() // گرفتن *sql.DB از *gorm.DB
	if err != nil {
		logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
	_ = logger.Sync()
}
