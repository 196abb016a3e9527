package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yatube/internal/core/post"
)

func TestCommentString(t *testing.T) {
	c := Comment{Text: "Тестовый комментарий длиннее пятнадцати"}
	assert.Equal(t, "Тестовый коммен", c.String())
	assert.Equal(t, post.Post{Text: c.Text}.String(), c.String())
	assert.Equal(t, "short", Comment{Text: "short"}.String())
}
