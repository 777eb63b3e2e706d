package mvp

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// twoRowPNG is a 3x2 picture, red on top and blue below.
func twoRowPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for x := 0; x < 3; x++ {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func checkFlipped(t *testing.T, img *image.RGBA) {
	t.Helper()
	if got := img.Bounds().Size(); got != image.Pt(3, 2) {
		t.Fatalf("Expected 3x2 image, got %v", got)
	}
	if got := img.RGBAAt(0, 0); got != blue {
		t.Errorf("Expected first row blue after flip, got %v", got)
	}
	if got := img.RGBAAt(2, 1); got != red {
		t.Errorf("Expected last row red after flip, got %v", got)
	}
}

func TestFetchImage(t *testing.T) {
	data := twoRowPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer srv.Close()

	img, err := FetchImage(context.Background(), srv.Client(), srv.URL+"/cube.png")
	if err != nil {
		t.Fatalf("FetchImage failed: %v", err)
	}
	checkFlipped(t, img)
}

func TestFetchImageBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := FetchImage(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Error("Expected error for 404 response")
	}
}

func TestFetchImageNotAnImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not a picture</html>"))
	}))
	defer srv.Close()

	if _, err := FetchImage(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Error("Expected decode error for html body")
	}
}

func TestFetchImageTimeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(done)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := FetchImage(ctx, srv.Client(), srv.URL); err == nil {
		t.Error("Expected error when the context expires")
	}
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.png")
	if err := os.WriteFile(path, twoRowPNG(t), 0o644); err != nil {
		t.Fatalf("Failed to write texture: %v", err)
	}

	img, err := OpenImage(context.Background(), nil, path)
	if err != nil {
		t.Fatalf("OpenImage failed: %v", err)
	}
	checkFlipped(t, img)
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestOpenImageUsesHTTP(t *testing.T) {
	data := twoRowPNG(t)
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(data)
	}))
	defer srv.Close()

	if _, err := OpenImage(context.Background(), srv.Client(), srv.URL); err != nil {
		t.Fatalf("OpenImage failed: %v", err)
	}
	if hits != 1 {
		t.Errorf("Expected exactly one request, got %d", hits)
	}
}

func TestFlipVerticalOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(0, 2, blue)

	flipped := FlipVertical(img)
	if got := flipped.RGBAAt(0, 0); got != blue {
		t.Errorf("Expected blue on top, got %v", got)
	}
	if got := flipped.RGBAAt(0, 1); got != (color.RGBA{}) {
		t.Errorf("Expected middle row untouched, got %v", got)
	}
	if got := flipped.RGBAAt(0, 2); got != red {
		t.Errorf("Expected red at the bottom, got %v", got)
	}
}
