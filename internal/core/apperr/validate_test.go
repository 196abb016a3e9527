package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Text  string `form:"text" validate:"required"`
	Slug  string `form:"slug" validate:"required,slug"`
	Email string `form:"email" validate:"omitempty,email"`
	Login string `form:"login" validate:"omitempty,username"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		in     sample
		fields []string
	}{
		{name: "valid", in: sample{Text: "hello", Slug: "test_1"}},
		{name: "empty text", in: sample{Slug: "ok"}, fields: []string{"text"}},
		{name: "bad slug", in: sample{Text: "x", Slug: "no spaces"}, fields: []string{"slug"}},
		{name: "bad email", in: sample{Text: "x", Slug: "s", Email: "nope"}, fields: []string{"email"}},
		{name: "username chars", in: sample{Text: "x", Slug: "s", Login: "me.you@x+y-z_1"}},
		{name: "bad username", in: sample{Text: "x", Slug: "s", Login: "a/b"}, fields: []string{"login"}},
		{name: "everything", in: sample{Slug: "!", Email: "nope"}, fields: []string{"text", "slug", "email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			got := Fields(err)
			assert.Len(t, got, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, got, f)
			}
		})
	}
}

func TestValidationErrorWrapping(t *testing.T) {
	err := fmt.Errorf("create post: %w", NewValidationError("text", "This field is required."))
	assert.True(t, IsValidation(err))
	assert.Equal(t, map[string]string{"text": "This field is required."}, Fields(err))
	assert.Equal(t, "create post: validation failed: text: This field is required.", err.Error())

	assert.False(t, IsValidation(ErrNotFound))
	assert.Nil(t, Fields(errors.New("boom")))
}

func TestAddKeepsFirstMessage(t *testing.T) {
	ve := &ValidationError{}
	ve.Add("text", "first")
	ve.Add("text", "second")
	assert.Equal(t, "first", ve.Fields["text"])
}
