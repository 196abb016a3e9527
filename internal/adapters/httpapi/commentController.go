package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/apperr"
	commentPort "yatube/internal/ports/comment"
)

type CommentController struct {
	cc     CommentUseCase
	logger *zap.Logger
}

func NewCommentController(cc CommentUseCase, logger *zap.Logger) *CommentController {
	return &CommentController{cc: cc, logger: logger}
}

// AddComment always lands back on the post, whether or not the comment was accepted.
func (ctl *CommentController) AddComment(c *gin.Context) {
	postID := c.Param("id")
	in := commentPort.CommentInput{Text: c.PostForm("text")}

	_, err := ctl.cc.AddComment(c.Request.Context(), postID, middleware.UserID(c), in)
	if err != nil && !apperr.IsValidation(err) {
		fail(c, ctl.logger, err)
		return
	}
	c.Redirect(http.StatusFound, detailURL(postID))
}
