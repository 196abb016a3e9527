package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/apperr"
	"yatube/internal/core/post"
	"yatube/internal/ports/media"
	postPort "yatube/internal/ports/post"
)

type PostController struct {
	pc        PostUseCase
	groups    GroupUseCase
	follows   FollowUseCase
	maxUpload int64
	logger    *zap.Logger
}

func NewPostController(pc PostUseCase, groups GroupUseCase, follows FollowUseCase, maxUpload int64, logger *zap.Logger) *PostController {
	return &PostController{pc: pc, groups: groups, follows: follows, maxUpload: maxUpload, logger: logger}
}

// Index renders the home feed. The page is shared through the page cache,
// so it is rendered without the viewer.
func (ctl *PostController) Index(c *gin.Context) {
	page, err := ctl.pc.ListPosts(c.Request.Context(), pageParam(c))
	if err != nil {
		fail(c, ctl.logger, err)
		return
	}
	c.HTML(http.StatusOK, "posts/index.html", sharedPageData("Последние обновления на сайте", gin.H{
		"Page": page,
	}))
}

func (ctl *PostController) GroupPosts(c *gin.Context) {
	group, page, err := ctl.pc.ListGroupPosts(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		fail(c, ctl.logger, err)
		return
	}
	c.HTML(http.StatusOK, "posts/group_list.html", pageData(c, "Записи сообщества "+group.Title, gin.H{
		"Group": group,
		"Page":  page,
	}))
}

func (ctl *PostController) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	author, page, err := ctl.pc.ListProfilePosts(ctx, c.Param("username"), pageParam(c))
	if err != nil {
		fail(c, ctl.logger, err)
		return
	}

	viewerID := middleware.UserID(c)
	followButton := viewerID != author.ID
	following := false
	if followButton {
		following, err = ctl.follows.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			fail(c, ctl.logger, err)
			return
		}
	}

	c.HTML(http.StatusOK, "posts/profile.html", pageData(c, "Профайл пользователя "+author.DisplayName, gin.H{
		"Author":       author,
		"Page":         page,
		"Count":        page.Total,
		"FollowButton": followButton,
		"Following":    following,
	}))
}

func (ctl *PostController) PostDetail(c *gin.Context) {
	detail, err := ctl.pc.GetPostDetail(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		fail(c, ctl.logger, err)
		return
	}
	c.HTML(http.StatusOK, "posts/post_detail.html", pageData(c, "Пост "+post.Preview(detail.Post.Text, titleLen), gin.H{
		"Detail": detail,
	}))
}

// PostDetailSubmit forwards a form posted to the detail page on to the
// comment route, keeping method and body.
func (ctl *PostController) PostDetailSubmit(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf("/posts/%s/comment/", c.Param("id")))
}

func (ctl *PostController) CreateForm(c *gin.Context) {
	ctl.renderForm(c, http.StatusOK, postPort.PostInput{}, nil, nil)
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	in, verr := ctl.bindPost(c)
	if verr != nil {
		ctl.renderForm(c, http.StatusOK, in, verr.Fields, nil)
		return
	}

	_, err := ctl.pc.CreatePost(c.Request.Context(), middleware.UserID(c), in)
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		ctl.renderForm(c, http.StatusOK, in, ve.Fields, nil)
	case err != nil:
		fail(c, ctl.logger, err)
	default:
		c.Redirect(http.StatusFound, "/profile/"+middleware.Username(c)+"/")
	}
}

func (ctl *PostController) EditForm(c *gin.Context) {
	res, err := ctl.pc.GetPostForEdit(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		fail(c, ctl.logger, err)
		return
	}
	if res.Outcome == postPort.EditDenied {
		c.Redirect(http.StatusFound, detailURL(res.Post.ID))
		return
	}

	in := postPort.PostInput{Text: res.Post.Text}
	if res.Post.Group != nil {
		in.GroupID = res.Post.Group.ID
	}
	ctl.renderForm(c, http.StatusOK, in, nil, res.Post)
}

func (ctl *PostController) EditPost(c *gin.Context) {
	ctx := c.Request.Context()
	current, err := ctl.pc.GetPostForEdit(ctx, c.Param("id"), middleware.UserID(c))
	if err != nil {
		fail(c, ctl.logger, err)
		return
	}
	if current.Outcome == postPort.EditDenied {
		c.Redirect(http.StatusFound, detailURL(current.Post.ID))
		return
	}

	in, verr := ctl.bindPost(c)
	if verr != nil {
		ctl.renderForm(c, http.StatusOK, in, verr.Fields, current.Post)
		return
	}

	res, err := ctl.pc.EditPost(ctx, current.Post.ID, middleware.UserID(c), in)
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		ctl.renderForm(c, http.StatusOK, in, ve.Fields, current.Post)
	case err != nil:
		fail(c, ctl.logger, err)
	default:
		// applied and denied look the same from outside
		c.Redirect(http.StatusFound, detailURL(res.Post.ID))
	}
}

// bindPost reads the multipart form. Upload problems are reported as a
// validation error on the image field.
func (ctl *PostController) bindPost(c *gin.Context) (postPort.PostInput, *apperr.ValidationError) {
	var in postPort.PostInput
	in.Text = c.PostForm("text")
	in.GroupID = c.PostForm("group")
	_, in.ClearImage = c.GetPostForm("image-clear")

	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return in, nil
	}
	if err != nil {
		return in, apperr.NewValidationError("image", "The submitted data was not a file.")
	}
	if fh.Size > ctl.maxUpload {
		return in, apperr.NewValidationError("image", "The uploaded file is too large.")
	}
	f, err := fh.Open()
	if err != nil {
		return in, apperr.NewValidationError("image", "The submitted file is empty.")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, ctl.maxUpload))
	if err != nil || len(data) == 0 {
		return in, apperr.NewValidationError("image", "The submitted file is empty.")
	}
	in.Image = &media.Upload{Filename: fh.Filename, Data: data}
	return in, nil
}

// renderForm shows the create form, or the edit form when editing is set.
func (ctl *PostController) renderForm(c *gin.Context, status int, in postPort.PostInput, errs map[string]string, editing *postPort.PostDTO) {
	groups, err := ctl.groups.ListGroups(c.Request.Context())
	if err != nil {
		fail(c, ctl.logger, err)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}

	title, action, currentImage := "Новый пост", "/create/", ""
	if editing != nil {
		title, action = "Редактировать пост", "/posts/"+editing.ID+"/edit/"
		currentImage = editing.Image
	}
	in.Image = nil
	c.HTML(status, "posts/post_create.html", pageData(c, title, gin.H{
		"Form":         in,
		"Errors":       errs,
		"Groups":       groups,
		"IsEdit":       editing != nil,
		"Action":       action,
		"CurrentImage": currentImage,
	}))
}

func detailURL(postID string) string { return "/posts/" + postID + "/" }

// titleLen is how much of a post's text the detail page title shows.
const titleLen = 30
