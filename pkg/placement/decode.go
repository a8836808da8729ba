package placement

import (
	"image"
	"io"
	"os"

	// Registered decoders. WebP comes from golang.org/x/image; the rest
	// are stdlib.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/pinpress/pinpress/pkg/errors"
)

// Decode reads and decodes artwork from r.
// Supported formats: PNG, JPEG, GIF, WebP.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidImage, err, "decode image")
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidImage, "image has no pixels (%s, %dx%d)", format, b.Dx(), b.Dy())
	}
	return img, nil
}

// DecodeFile reads and decodes artwork from the file at path.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Decode(f)
}
