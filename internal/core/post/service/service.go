package postapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"yatube/internal/core/apperr"
	groupEntity "yatube/internal/core/group"
	postEntity "yatube/internal/core/post"
	commentPort "yatube/internal/ports/comment"
	groupPort "yatube/internal/ports/group"
	"yatube/internal/ports/media"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"
)

// imageDir is where post images live below the media root.
const imageDir = "posts"

type PostService struct {
	PostRepository    postPort.PostRepository
	GroupRepository   groupPort.GroupRepository
	UserRepository    userPort.UserRepository
	CommentRepository commentPort.CommentRepository
	Media             media.Storage

	// Now stamps new posts. Tests replace it to get distinct publication dates.
	Now func() time.Time

	pageSize int
	logger   *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
	commentRepo commentPort.CommentRepository,
	storage media.Storage,
	pageSize int,
	logger *zap.Logger,
) *PostService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &PostService{
		PostRepository:    postRepo,
		GroupRepository:   groupRepo,
		UserRepository:    userRepo,
		CommentRepository: commentRepo,
		Media:             storage,
		Now:               time.Now,
		pageSize:          pageSize,
		logger:            logger,
	}
}

// ListPosts returns one page of every post, newest first.
func (s *PostService) ListPosts(ctx context.Context, page int) (*postPort.PageDTO, error) {
	return s.page(ctx, postPort.Filter{}, page)
}

// ListGroupPosts returns the group and one page of its posts.
func (s *PostService) ListGroupPosts(ctx context.Context, slug string, page int) (*groupPort.GroupDTO, *postPort.PageDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	p, err := s.page(ctx, postPort.Filter{GroupID: &g.ID}, page)
	if err != nil {
		return nil, nil, err
	}
	return groupPort.ToGroupDTO(g), p, nil
}

// ListProfilePosts returns the author and one page of their posts. Page.Total
// is the author's post count.
func (s *PostService) ListProfilePosts(ctx context.Context, username string, page int) (*userPort.UserDTO, *postPort.PageDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	p, err := s.page(ctx, postPort.Filter{AuthorID: &u.ID}, page)
	if err != nil {
		return nil, nil, err
	}
	return userPort.ToUserDTO(u), p, nil
}

// ListFollowedPosts returns posts written by the authors userID follows.
func (s *PostService) ListFollowedPosts(ctx context.Context, userID string, page int) (*postPort.PageDTO, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}
	return s.page(ctx, postPort.Filter{FollowedBy: &uid}, page)
}

func (s *PostService) page(ctx context.Context, f postPort.Filter, requested int) (*postPort.PageDTO, error) {
	total, err := s.PostRepository.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	w := postEntity.Paginate(requested, total, s.pageSize)
	posts := []*postEntity.Post{}
	if total > 0 {
		posts, err = s.PostRepository.List(ctx, f, w.Offset, w.Limit)
		if err != nil {
			return nil, fmt.Errorf("list posts: %w", err)
		}
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, postPort.ToPostDTO(p))
	}
	return &postPort.PageDTO{
		Posts:       dtos,
		Number:      w.Number,
		NumPages:    w.NumPages,
		Total:       total,
		HasPrevious: w.HasPrevious(),
		HasNext:     w.HasNext(),
	}, nil
}

// GetPostDetail loads a post with its comments and its author's post count.
// viewerID may be empty for anonymous visitors.
func (s *PostService) GetPostDetail(ctx context.Context, postID, viewerID string) (*postPort.PostDetailDTO, error) {
	p, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.CommentRepository.ListByPost(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	count, err := s.PostRepository.Count(ctx, postPort.Filter{AuthorID: &p.AuthorID})
	if err != nil {
		return nil, fmt.Errorf("count author posts: %w", err)
	}

	dto := &postPort.PostDetailDTO{
		Post:            postPort.ToPostDTO(p),
		Comments:        make([]*commentPort.CommentDTO, 0, len(comments)),
		AuthorPostCount: count,
		CanEdit:         viewerID != "" && viewerID == p.AuthorID.String(),
	}
	for _, c := range comments {
		dto.Comments = append(dto.Comments, commentPort.ToCommentDTO(c))
	}
	return dto, nil
}

// CreatePost ایجاد یک پست جدید
func (s *PostService) CreatePost(ctx context.Context, authorID string, in postPort.PostInput) (*postPort.PostDTO, error) {
	uid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}

	g, image, err := s.clean(ctx, &in)
	if err != nil {
		return nil, err
	}

	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     in.Text,
		PubDate:  s.Now(),
		Image:    image,
		AuthorID: uid,
	}
	if g != nil {
		p.GroupID = &g.ID
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	created.Group = g

	s.logger.Info("Post created", zap.String("post_id", created.ID.String()), zap.String("author_id", authorID))
	return postPort.ToPostDTO(created), nil
}

// GetPostForEdit returns the post when actorID may edit it, EditDenied otherwise.
func (s *PostService) GetPostForEdit(ctx context.Context, postID, actorID string) (*postPort.EditResult, error) {
	p, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	res := &postPort.EditResult{Outcome: postPort.EditApplied, Post: postPort.ToPostDTO(p)}
	if p.AuthorID.String() != actorID {
		res.Outcome = postPort.EditDenied
	}
	return res, nil
}

// EditPost overwrites text, group and image of a post in place. Anyone but
// the author gets EditDenied and the post is left untouched. A missing image
// in the input keeps the stored one unless ClearImage is set.
func (s *PostService) EditPost(ctx context.Context, postID, actorID string, in postPort.PostInput) (*postPort.EditResult, error) {
	p, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.AuthorID.String() != actorID {
		s.logger.Warn("Edit denied for non-author",
			zap.String("post_id", p.ID.String()),
			zap.String("actor_id", actorID))
		return &postPort.EditResult{Outcome: postPort.EditDenied, Post: postPort.ToPostDTO(p)}, nil
	}

	g, image, err := s.clean(ctx, &in)
	if err != nil {
		return nil, err
	}

	p.Text = in.Text
	p.Group = g
	p.GroupID = nil
	if g != nil {
		p.GroupID = &g.ID
	}
	switch {
	case image != "":
		p.Image = image
	case in.ClearImage:
		p.Image = ""
	}
	if err := s.PostRepository.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.logger.Info("Post edited", zap.String("post_id", p.ID.String()))
	return &postPort.EditResult{Outcome: postPort.EditApplied, Post: postPort.ToPostDTO(p)}, nil
}

func (s *PostService) findPost(ctx context.Context, postID string) (*postEntity.Post, error) {
	id, err := uuid.FromString(postID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	return s.PostRepository.FindByID(ctx, id)
}

// clean validates the form, resolves the chosen group and stores the image.
// The image is written last so a rejected form leaves nothing on disk.
func (s *PostService) clean(ctx context.Context, in *postPort.PostInput) (*groupEntity.Group, string, error) {
	in.Text = strings.TrimSpace(in.Text)
	in.GroupID = strings.TrimSpace(in.GroupID)

	verr := &apperr.ValidationError{}
	if err := apperr.Validate(in); err != nil {
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			return nil, "", err
		}
		verr = ve
	}

	var g *groupEntity.Group
	if in.GroupID != "" && verr.Fields["group"] == "" {
		found, err := s.GroupRepository.FindByID(ctx, in.GroupID)
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			verr.Add("group", "Select a valid choice. That choice is not one of the available choices.")
		case err != nil:
			return nil, "", err
		default:
			g = found
		}
	}

	var ext string
	hasImage := in.Image != nil && len(in.Image.Data) > 0
	if hasImage {
		m := mimetype.Detect(in.Image.Data)
		if !strings.HasPrefix(m.String(), "image/") {
			verr.Add("image", "Upload a valid image. The file you uploaded was either not an image or a corrupted image.")
		}
		ext = m.Extension()
		if in.ClearImage {
			verr.Add("image", "Please either submit a file or check the clear checkbox, not both.")
		}
	}

	if len(verr.Fields) > 0 {
		return nil, "", verr
	}

	var image string
	if hasImage {
		if s.Media == nil {
			return nil, "", errors.New("media storage is not configured")
		}
		path, err := s.Media.Save(ctx, imageDir, ext, in.Image.Data)
		if err != nil {
			return nil, "", fmt.Errorf("store image: %w", err)
		}
		image = path
	}
	return g, image, nil
}
