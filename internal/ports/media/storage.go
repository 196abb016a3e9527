package media

import "context"

// Upload is an image attached to a post form.
type Upload struct {
	Filename string
	Data     []byte
}

// Storage persists uploaded files and returns their path relative to the
// media root.
type Storage interface {
	Save(ctx context.Context, dir, ext string, data []byte) (string, error)
}
