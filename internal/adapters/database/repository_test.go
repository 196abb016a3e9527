package database_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/internal/adapters/database"
	"yatube/internal/core/apperr"
	"yatube/internal/core/comment"
	"yatube/internal/core/follow"
	"yatube/internal/core/group"
	"yatube/internal/core/post"
	"yatube/internal/core/user"
	postPort "yatube/internal/ports/post"
	"yatube/internal/testutil"
)

type fixture struct {
	users    *database.UserRepositoryDatabase
	groups   *database.GroupRepositoryDatabase
	posts    *database.PostRepositoryDatabase
	comments *database.CommentRepositoryDatabase
	follows  *database.FollowRepositoryDatabase
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	return &fixture{
		users:    database.NewUserRepositoryDatabase(db),
		groups:   database.NewGroupRepositoryDatabase(db),
		posts:    database.NewPostRepositoryDatabase(db),
		comments: database.NewCommentRepositoryDatabase(db),
		follows:  database.NewFollowRepositoryDatabase(db),
	}
}

func (f *fixture) user(t *testing.T, username string) *user.User {
	u, err := f.users.Create(context.Background(), &user.User{Username: username, Password: "x"})
	require.NoError(t, err)
	return u
}

func (f *fixture) post(t *testing.T, author *user.User, g *group.Group, text string, at time.Time) *post.Post {
	p := &post.Post{Text: text, AuthorID: author.ID, PubDate: at}
	if g != nil {
		p.GroupID = &g.ID
	}
	created, err := f.posts.Create(context.Background(), p)
	require.NoError(t, err)
	return created
}

func TestUserRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "auth")
	assert.NotEqual(t, uuid.Nil, u.ID)

	got, err := f.users.FindByUsername(ctx, "auth")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = f.users.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.users.Create(ctx, &user.User{Username: "auth", Password: "x"})
	assert.Error(t, err, "username must be unique")
}

func TestGroupRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g, err := f.groups.Create(ctx, &group.Group{Title: "Тестовая группа", Slug: "test", Description: "Тестовое описание"})
	require.NoError(t, err)

	got, err := f.groups.FindBySlug(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.ID)
	assert.Equal(t, "Тестовая группа", got.String())

	got, err = f.groups.FindByID(ctx, g.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "test", got.Slug)

	_, err = f.groups.FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.groups.Create(ctx, &group.Group{Title: "dup", Slug: "test"})
	assert.Error(t, err, "slug must be unique")

	list, err := f.groups.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPostRepositoryListOrderAndFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	auth := f.user(t, "auth")
	other := f.user(t, "other")
	g, err := f.groups.Create(ctx, &group.Group{Title: "g", Slug: "g"})
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		f.post(t, auth, g, fmt.Sprintf("grouped %d", i), base.Add(time.Duration(i)*time.Minute))
	}
	f.post(t, other, nil, "loose", base.Add(time.Hour))

	all, err := f.posts.List(ctx, postPort.Filter{}, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "loose", all[0].Text, "newest first")
	assert.Equal(t, "grouped 4", all[1].Text)
	assert.Equal(t, "auth", all[1].Author.Username)
	require.NotNil(t, all[1].Group)
	assert.Equal(t, "g", all[1].Group.Slug)
	assert.Nil(t, all[0].Group)

	n, err := f.posts.Count(ctx, postPort.Filter{GroupID: &g.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	n, err = f.posts.Count(ctx, postPort.Filter{AuthorID: &other.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	page, err := f.posts.List(ctx, postPort.Filter{GroupID: &g.ID}, 3, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "grouped 1", page[0].Text)
	assert.Equal(t, "grouped 0", page[1].Text)
}

func TestPostRepositoryFollowedBy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reader := f.user(t, "reader")
	followed := f.user(t, "followed")
	stranger := f.user(t, "stranger")
	now := time.Now()
	f.post(t, followed, nil, "visible", now)
	f.post(t, stranger, nil, "hidden", now)

	require.NoError(t, f.follows.Create(ctx, &follow.Follow{UserID: reader.ID, AuthorID: followed.ID}))

	posts, err := f.posts.List(ctx, postPort.Filter{FollowedBy: &reader.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "visible", posts[0].Text)

	n, err := f.posts.Count(ctx, postPort.Filter{FollowedBy: &stranger.ID})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPostRepositoryUpdateKeepsImmutableColumns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	auth := f.user(t, "auth")
	g, err := f.groups.Create(ctx, &group.Group{Title: "g", Slug: "g"})
	require.NoError(t, err)
	pub := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	p := f.post(t, auth, g, "before", pub)

	p.Text = "after"
	p.GroupID = nil
	p.Image = "posts/x.gif"
	require.NoError(t, f.posts.Update(ctx, p))

	got, err := f.posts.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Text)
	assert.Nil(t, got.GroupID)
	assert.Equal(t, "posts/x.gif", got.Image)
	assert.Equal(t, auth.ID, got.AuthorID)
	assert.True(t, pub.Equal(got.PubDate))

	_, err = f.posts.FindByID(ctx, uuid.Must(uuid.NewV4()))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCommentRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	auth := f.user(t, "auth")
	p := f.post(t, auth, nil, "post", time.Now())
	base := time.Now()
	for i := 0; i < 3; i++ {
		_, err := f.comments.Create(ctx, &comment.Comment{
			PostID:   p.ID,
			AuthorID: auth.ID,
			Text:     fmt.Sprintf("c%d", i),
			Created:  base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	list, err := f.comments.ListByPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c0", list[0].Text)
	assert.Equal(t, "auth", list[0].Author.Username)

	_, err = f.comments.Create(ctx, &comment.Comment{
		PostID:   uuid.Must(uuid.NewV4()),
		AuthorID: auth.ID,
		Text:     "orphan",
		Created:  time.Now(),
	})
	assert.Error(t, err, "post foreign key is enforced")
}

func TestFollowRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.user(t, "a")
	b := f.user(t, "b")

	ok, err := f.follows.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.follows.Create(ctx, &follow.Follow{UserID: a.ID, AuthorID: b.ID}))
	require.NoError(t, f.follows.Create(ctx, &follow.Follow{UserID: a.ID, AuthorID: b.ID}), "duplicate is ignored")

	ok, err = f.follows.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.follows.Exists(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, ok, "edges are directed")

	n, err := f.follows.Delete(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = f.follows.Delete(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
