package httpapi

import (
	"context"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/adapters/httpapi/middleware"
	commentPort "yatube/internal/ports/comment"
	followPort "yatube/internal/ports/follow"
	groupPort "yatube/internal/ports/group"
	"yatube/internal/ports/pagecache"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"
)

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	LoginUser(ctx context.Context, in userPort.LoginInput) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, in userPort.SignupInput) (*userPort.UserDTO, error)
	ParseToken(raw string) (*userPort.Claims, error)
}

type PostUseCase interface {
	ListPosts(ctx context.Context, page int) (*postPort.PageDTO, error)
	ListGroupPosts(ctx context.Context, slug string, page int) (*groupPort.GroupDTO, *postPort.PageDTO, error)
	ListProfilePosts(ctx context.Context, username string, page int) (*userPort.UserDTO, *postPort.PageDTO, error)
	ListFollowedPosts(ctx context.Context, userID string, page int) (*postPort.PageDTO, error)
	GetPostDetail(ctx context.Context, postID, viewerID string) (*postPort.PostDetailDTO, error)
	CreatePost(ctx context.Context, authorID string, in postPort.PostInput) (*postPort.PostDTO, error)
	GetPostForEdit(ctx context.Context, postID, actorID string) (*postPort.EditResult, error)
	EditPost(ctx context.Context, postID, actorID string, in postPort.PostInput) (*postPort.EditResult, error)
}

type GroupUseCase interface {
	ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, postID, authorID string, in commentPort.CommentInput) (*commentPort.CommentDTO, error)
}

type FollowUseCase interface {
	Follow(ctx context.Context, actorID, username string) (followPort.FollowOutcome, error)
	Unfollow(ctx context.Context, actorID, username string) error
	IsFollowing(ctx context.Context, actorID, authorID string) (bool, error)
}

// IndexCachePrefix namespaces the home feed inside the page cache.
const IndexCachePrefix = "index_page"

type UseCases struct {
	Users    UserUseCase
	Posts    PostUseCase
	Groups   GroupUseCase
	Comments CommentUseCase
	Follows  FollowUseCase
}

type Options struct {
	Cache    pagecache.PageCache
	CacheTTL time.Duration

	MediaRoot      string
	MediaURL       string
	MaxUploadBytes int64

	LoginRate  float64
	LoginBurst int

	// SecureCookie marks the session cookie HTTPS-only.
	SecureCookie bool

	Logger *zap.Logger
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(uc UseCases, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.MediaURL == "" {
		opts.MediaURL = "/media"
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 5 << 20
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 20 * time.Second
	}

	tmpl, err := loadTemplates(opts.MediaURL)
	if err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(
		middleware.RequestLogger(opts.Logger),
		gin.Recovery(),
		middleware.Metrics(),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics", opts.MediaURL})),
		middleware.JWTAuthMiddleware(uc.Users),
	)
	r.SetHTMLTemplate(tmpl)

	pc := NewPostController(uc.Posts, uc.Groups, uc.Follows, opts.MaxUploadBytes, opts.Logger)
	cc := NewCommentController(uc.Comments, opts.Logger)
	fc := NewFollowController(uc.Follows, uc.Posts, opts.Logger)
	usc := NewUserController(uc.Users, opts.SecureCookie, opts.Logger)
	limiter := middleware.NewRateLimiter(opts.LoginRate, opts.LoginBurst, opts.Logger)

	if opts.MediaRoot != "" {
		r.Static(opts.MediaURL, opts.MediaRoot)
	}
	r.GET("/metrics", middleware.MetricsHandler())

	// home feed: cached per URI, never invalidated by writes
	if opts.Cache != nil {
		r.GET("/", middleware.CachePage(opts.Cache, opts.CacheTTL, IndexCachePrefix, opts.Logger), pc.Index)
	} else {
		r.GET("/", pc.Index)
	}
	r.GET("/group/:slug/", pc.GroupPosts)
	r.GET("/profile/:username/", pc.Profile)
	r.GET("/posts/:id/", pc.PostDetail)
	r.POST("/posts/:id/", pc.PostDetailSubmit)

	// مسیرهای نیازمند ورود
	auth := r.Group("/", middleware.LoginRequired())
	auth.GET("/create/", pc.CreateForm)
	auth.POST("/create/", pc.CreatePost)
	auth.GET("/posts/:id/edit/", pc.EditForm)
	auth.POST("/posts/:id/edit/", pc.EditPost)
	auth.POST("/posts/:id/comment/", cc.AddComment)
	auth.GET("/follow/", fc.FollowIndex)
	auth.GET("/profile/:username/follow/", fc.Follow)
	auth.GET("/profile/:username/unfollow/", fc.Unfollow)

	// مسیرهای ثبت‌نام و ورود
	accounts := r.Group("/auth", limiter.Handler())
	accounts.GET("/signup/", usc.SignupForm)
	accounts.POST("/signup/", usc.Signup)
	accounts.GET("/login/", usc.LoginForm)
	accounts.POST("/login/", usc.Login)
	accounts.GET("/logout/", usc.Logout)
	accounts.POST("/logout/", usc.Logout)

	r.GET("/about/author/", AboutAuthor)
	r.GET("/about/tech/", AboutTech)

	r.NoRoute(notFound)
	return r
}
