package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func AboutAuthor(c *gin.Context) {
	c.HTML(http.StatusOK, "about/author.html", pageData(c, "Об авторе", nil))
}

func AboutTech(c *gin.Context) {
	c.HTML(http.StatusOK, "about/tech.html", pageData(c, "Технологии", nil))
}
