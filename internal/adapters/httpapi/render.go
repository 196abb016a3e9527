package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/apperr"
)

// pageData is the context every template receives. Viewer is the logged-in
// username; Shared pages are served to everyone from cache and must not
// mention the viewer.
func pageData(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Viewer"] = middleware.Username(c)
	data["Shared"] = false
	return data
}

func sharedPageData(title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Viewer"] = ""
	data["Shared"] = true
	return data
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "core/404.html", pageData(c, "Страница не найдена", gin.H{
		"Path": c.Request.URL.Path,
	}))
}

// fail renders the error page matching err.
func fail(c *gin.Context, logger *zap.Logger, err error) {
	if errors.Is(err, apperr.ErrNotFound) {
		notFound(c)
		return
	}
	_ = c.Error(err)
	logger.Error("Request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.HTML(http.StatusInternalServerError, "core/500.html", pageData(c, "Ошибка сервера", nil))
}

// pageParam reads ?page=. Anything that is not a number means page 1; the
// service clamps the rest.
func pageParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return n
}

// safeNext accepts only local absolute paths as a post-login target.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return "/"
	}
	return next
}
