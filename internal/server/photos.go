package server

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

var errUnsupportedImage = errors.New("unsupported image format (use JPG, PNG, or GIF)")

// savePhoto decodes an uploaded image, downscales anything wider than
// maxWidth, and writes it as an optimized JPEG under photosDir. Returns the
// roster-relative path ("photos/<file>").
func (s *Server) savePhoto(src io.Reader, filename string) (string, error) {
	filename = securePhotoFilename(filename)
	if filename == "" {
		return "", errors.New("photo filename is required")
	}

	limited := io.LimitReader(src, int64(s.cfg.MaxPhotoBytes)+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return "", err
	}
	if len(data) > s.cfg.MaxPhotoBytes {
		return "", fmt.Errorf("photo exceeds %d byte limit", s.cfg.MaxPhotoBytes)
	}

	decoded, _, err := image.Decode(strings.NewReader(string(data)))
	if err != nil {
		return "", errUnsupportedImage
	}
	decoded = downscale(decoded, s.cfg.MaxPhotoWidth)

	if err := os.MkdirAll(s.cfg.PhotosDir, 0o755); err != nil {
		return "", err
	}
	target := filepath.Join(s.cfg.PhotosDir, filename)
	out, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer out.Close()
	if err := jpeg.Encode(out, decoded, &jpeg.Options{Quality: 85}); err != nil {
		return "", err
	}
	return "photos/" + filename, nil
}

// downscale resizes to maxWidth preserving aspect ratio; smaller images pass
// through untouched.
func downscale(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if maxWidth <= 0 || bounds.Dx() <= maxWidth {
		return img
	}
	ratio := float64(maxWidth) / float64(bounds.Dx())
	height := int(float64(bounds.Dy()) * ratio)
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}

// officialPhotoFilename builds the canonical photo name for an official.
func officialPhotoFilename(state, position, name string) string {
	base := fmt.Sprintf("%s_%s_%s",
		strings.ReplaceAll(strings.TrimSpace(state), " ", "_"),
		strings.ReplaceAll(strings.TrimSpace(position), " ", "_"),
		strings.ReplaceAll(strings.TrimSpace(name), " ", "_"),
	)
	return securePhotoFilename(base + ".jpg")
}

// securePhotoFilename strips path components and anything outside a safe
// character set, and forces a known image extension.
func securePhotoFilename(filename string) string {
	filename = filepath.Base(strings.TrimSpace(filename))
	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		}
	}
	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" {
		return ""
	}
	lower := strings.ToLower(cleaned)
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif"} {
		if strings.HasSuffix(lower, ext) {
			return cleaned
		}
	}
	return cleaned + ".jpg"
}

// validPhotoContentType accepts the browser-supplied type for early rejection;
// the decode step is the real gate.
func validPhotoContentType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif":
		return true
	}
	return false
}
