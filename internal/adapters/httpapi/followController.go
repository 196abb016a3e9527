package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/adapters/httpapi/middleware"
)

type FollowController struct {
	fc     FollowUseCase
	posts  PostUseCase
	logger *zap.Logger
}

func NewFollowController(fc FollowUseCase, posts PostUseCase, logger *zap.Logger) *FollowController {
	return &FollowController{fc: fc, posts: posts, logger: logger}
}

// FollowIndex renders the feed of posts by followed authors.
func (ctl *FollowController) FollowIndex(c *gin.Context) {
	page, err := ctl.posts.ListFollowedPosts(c.Request.Context(), middleware.UserID(c), pageParam(c))
	if err != nil {
		fail(c, ctl.logger, err)
		return
	}
	c.HTML(http.StatusOK, "posts/follow.html", pageData(c, "Подписки", gin.H{
		"Page": page,
	}))
}

// Follow redirects to the profile for every outcome, including self follow
// and an already existing edge.
func (ctl *FollowController) Follow(c *gin.Context) {
	username := c.Param("username")
	if _, err := ctl.fc.Follow(c.Request.Context(), middleware.UserID(c), username); err != nil {
		fail(c, ctl.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}

func (ctl *FollowController) Unfollow(c *gin.Context) {
	username := c.Param("username")
	if err := ctl.fc.Unfollow(c.Request.Context(), middleware.UserID(c), username); err != nil {
		fail(c, ctl.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}
