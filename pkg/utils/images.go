package utils

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"
)

// MAX_AVATAR_DIM bounds profile pictures; anything larger gets downscaled
// preserving aspect ratio before it is stored.
const MAX_AVATAR_DIM = 512

// NormalizeAvatar decodes a base64 profile picture (with or without a
// data-URI prefix) and returns the bytes to store. Oversized images are
// re-encoded as PNG after scaling.
func NormalizeAvatar(encoded string) ([]byte, error) {
	if idx := strings.Index(encoded, ","); idx != -1 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= MAX_AVATAR_DIM && height <= MAX_AVATAR_DIM {
		return raw, nil
	}

	if width >= height {
		height = height * MAX_AVATAR_DIM / width
		width = MAX_AVATAR_DIM
	} else {
		width = width * MAX_AVATAR_DIM / height
		height = MAX_AVATAR_DIM
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
