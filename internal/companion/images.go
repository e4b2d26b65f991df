package companion

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// placeholderPNG is a 1x1 transparent PNG served when no assets directory
// is configured.
var placeholderPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// Images serves get_img from a directory. Paths cannot leave the directory.
type Images struct {
	dir string
}

// NewImages returns an image source rooted at dir. An empty dir serves
// the placeholder for every path.
func NewImages(dir string) *Images {
	return &Images{dir: dir}
}

func (i *Images) Image(_ context.Context, path string) ([]byte, error) {
	name := strings.TrimLeft(path, "/")
	if name == "" {
		return nil, fmt.Errorf("%w: empty path", ErrImageNotFound)
	}
	if i.dir == "" {
		return placeholderPNG, nil
	}

	root, err := os.OpenRoot(i.dir)
	if err != nil {
		return nil, fmt.Errorf("error opening assets dir: %w", err)
	}
	defer root.Close()

	img, err := root.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return nil, fmt.Errorf("error reading image %s: %w", path, err)
	}
	return img, nil
}
