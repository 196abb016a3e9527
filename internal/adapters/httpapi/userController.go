package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/apperr"
	userPort "yatube/internal/ports/user"
)

type UserController struct {
	uc           UserUseCase
	secureCookie bool
	logger       *zap.Logger
}

func NewUserController(uc UserUseCase, secureCookie bool, logger *zap.Logger) *UserController {
	return &UserController{uc: uc, secureCookie: secureCookie, logger: logger}
}

func (ctl *UserController) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "users/signup.html", pageData(c, "Регистрация", gin.H{
		"Form":   userPort.SignupInput{},
		"Errors": map[string]string{},
	}))
}

// Signup creates the account and sends the visitor to the home page. The
// new user still has to log in.
func (ctl *UserController) Signup(c *gin.Context) {
	var in userPort.SignupInput
	if err := c.ShouldBind(&in); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	_, err := ctl.uc.RegisterUser(c.Request.Context(), in)
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		in.Password1, in.Password2 = "", ""
		c.HTML(http.StatusOK, "users/signup.html", pageData(c, "Регистрация", gin.H{
			"Form":   in,
			"Errors": ve.Fields,
		}))
	case err != nil:
		fail(c, ctl.logger, err)
	default:
		c.Redirect(http.StatusFound, "/")
	}
}

func (ctl *UserController) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "users/login.html", pageData(c, "Войти", gin.H{
		"Form":   userPort.LoginInput{},
		"Next":   c.Query("next"),
		"Failed": false,
	}))
}

func (ctl *UserController) Login(c *gin.Context) {
	var in userPort.LoginInput
	if err := c.ShouldBind(&in); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	next := c.PostForm("next")

	res, err := ctl.uc.LoginUser(c.Request.Context(), in)
	if err != nil {
		if !apperr.IsValidation(err) && !errors.Is(err, apperr.ErrInvalidCredentials) {
			fail(c, ctl.logger, err)
			return
		}
		in.Password = ""
		c.HTML(http.StatusOK, "users/login.html", pageData(c, "Войти", gin.H{
			"Form":   in,
			"Next":   next,
			"Failed": true,
		}))
		return
	}

	maxAge := int(time.Until(time.Unix(res.ExpiresAt, 0)).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, res.Token, maxAge, "/", "", ctl.secureCookie, true)
	c.Redirect(http.StatusFound, safeNext(next))
}

// Logout drops the session cookie and shows the goodbye page.
func (ctl *UserController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", ctl.secureCookie, true)
	data := pageData(c, "Вы вышли из системы", nil)
	data["Viewer"] = ""
	c.HTML(http.StatusOK, "users/logged_out.html", data)
}
