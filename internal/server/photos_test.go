package server

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"guess-that-official/internal/config"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func photoTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	dir := t.TempDir()
	cfg.PhotosDir = filepath.Join(dir, "photos")
	cfg.OfficialsFile = filepath.Join(dir, "officials.json")
	return New(nil, cfg)
}

func TestSavePhotoWritesJPEG(t *testing.T) {
	srv := photoTestServer(t)
	path, err := srv.savePhoto(bytes.NewReader(testPNG(t, 100, 80)), "kathy.png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if path != "photos/kathy.png.jpg" && path != "photos/kathy.png" {
		t.Fatalf("unexpected path %s", path)
	}
	if _, err := os.Stat(filepath.Join(srv.cfg.PhotosDir, filepath.Base(path))); err != nil {
		t.Fatalf("expected photo on disk: %v", err)
	}
}

func TestSavePhotoDownscalesWideImages(t *testing.T) {
	srv := photoTestServer(t)
	path, err := srv.savePhoto(bytes.NewReader(testPNG(t, 1600, 400)), "wide.jpg")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	file, err := os.Open(filepath.Join(srv.cfg.PhotosDir, filepath.Base(path)))
	if err != nil {
		t.Fatalf("open saved photo: %v", err)
	}
	defer file.Close()
	decoded, _, err := image.Decode(file)
	if err != nil {
		t.Fatalf("decode saved photo: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 800 || bounds.Dy() != 200 {
		t.Fatalf("expected 800x200, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestSavePhotoRejectsGarbage(t *testing.T) {
	srv := photoTestServer(t)
	if _, err := srv.savePhoto(bytes.NewReader([]byte("not an image")), "bad.jpg"); err == nil {
		t.Fatal("expected decode failure")
	}
}

func TestSavePhotoRejectsOversized(t *testing.T) {
	srv := photoTestServer(t)
	srv.cfg.MaxPhotoBytes = 64
	if _, err := srv.savePhoto(bytes.NewReader(testPNG(t, 200, 200)), "big.png"); err == nil {
		t.Fatal("expected size rejection")
	}
}

func TestDownscaleLeavesSmallImagesAlone(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	if out := downscale(img, 800); out != image.Image(img) {
		t.Fatal("small images must pass through untouched")
	}
}

func TestSecurePhotoFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"../../etc/passwd", "passwd.jpg"},
		{"kathy hochul.jpg", "kathyhochul.jpg"},
		{"photo.PNG", "photo.PNG"},
		{"...", ""},
		{"résumé.gif", "rsum.gif"},
	}
	for _, tc := range cases {
		if got := securePhotoFilename(tc.in); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestOfficialPhotoFilename(t *testing.T) {
	got := officialPhotoFilename("New York", "Governor", "Kathy Hochul")
	if got != "New_York_Governor_Kathy_Hochul.jpg" {
		t.Fatalf("unexpected filename %s", got)
	}
}

func TestValidPhotoContentType(t *testing.T) {
	for _, ok := range []string{"image/jpeg", "image/jpg", "image/png", "image/gif"} {
		if !validPhotoContentType(ok) {
			t.Fatalf("expected %s to pass", ok)
		}
	}
	if validPhotoContentType("application/pdf") {
		t.Fatal("expected pdf rejection")
	}
}
