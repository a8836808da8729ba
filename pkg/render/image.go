package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"

	"github.com/pinpress/pinpress/pkg/errors"
)

// imageDataURI encodes the bitmap as a base64 PNG data URI for embedding
// in SVG. The bitmap is read-only; encoding never mutates pixel data.
func imageDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("data:image/png;base64,")

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode artwork")
	}
	buf.WriteString(base64.StdEncoding.EncodeToString(pngBuf.Bytes()))
	return buf.String(), nil
}
