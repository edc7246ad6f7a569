package media

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func mp4Box(name string, payload []byte) []byte {
	out := make([]byte, 8+len(payload))
	binary.BigEndian.PutUint32(out[0:4], uint32(len(out)))
	copy(out[4:8], name)
	copy(out[8:], payload)
	return out
}

func mp4Ftyp() []byte {
	payload := append([]byte("isom"), 0, 0, 2, 0)
	return mp4Box("ftyp", append(payload, []byte("isom")...))
}

func mp4Mvhd(timescale, duration uint32) []byte {
	payload := make([]byte, 20)
	binary.BigEndian.PutUint32(payload[12:16], timescale)
	binary.BigEndian.PutUint32(payload[16:20], duration)
	return mp4Box("mvhd", payload)
}

func writeTestMP4(t *testing.T, d time.Duration) string {
	t.Helper()
	data := append(mp4Ftyp(), mp4Box("moov", mp4Mvhd(1000, uint32(d.Milliseconds())))...)
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "pick.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPickImagePassthrough(t *testing.T) {
	path := writeTestPNG(t, 8, 8)

	a, err := PickImage(path, ImageOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind != KindImagen {
		t.Errorf("Kind = %q", a.Kind)
	}
	if a.MIME != "image/png" {
		t.Errorf("MIME = %q, want image/png", a.MIME)
	}
	if !strings.HasPrefix(a.URL, "data:image/png;base64,") {
		t.Errorf("URL = %q, want a png data URI", a.URL[:min(len(a.URL), 40)])
	}
}

func TestPickImageRecompressesToJPEG(t *testing.T) {
	path := writeTestPNG(t, 8, 8)

	a, err := PickImage(path, ImageOptions{Recompress: true})
	if err != nil {
		t.Fatal(err)
	}
	if a.MIME != "image/jpeg" {
		t.Errorf("MIME = %q, want image/jpeg", a.MIME)
	}
	if !strings.HasPrefix(a.URL, "data:image/jpeg;base64,") {
		t.Errorf("URL = %q, want a jpeg data URI", a.URL[:min(len(a.URL), 40)])
	}
}

func TestPickImageResizesWideImages(t *testing.T) {
	path := writeTestPNG(t, 64, 16)

	a, err := PickImage(path, ImageOptions{Recompress: true, MaxWidth: 32, Quality: 80})
	if err != nil {
		t.Fatal(err)
	}
	if a.MIME != "image/jpeg" {
		t.Errorf("MIME = %q", a.MIME)
	}
}

func TestPickImageRejectsNonImages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := PickImage(path, ImageOptions{}); err == nil {
		t.Fatal("text file accepted as image")
	}
}

func TestPickVideoURLPassesThrough(t *testing.T) {
	a, err := PickVideo("https://cdn.example.com/clip.mp4")
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind != KindVideo || a.URL != "https://cdn.example.com/clip.mp4" {
		t.Errorf("attachment = %+v", a)
	}
}

func TestPickVideoRejectsNonVideoFiles(t *testing.T) {
	path := writeTestPNG(t, 4, 4)
	if _, err := PickVideo(path); err == nil {
		t.Fatal("png accepted as video")
	}
}

func TestPickVideoWithinDurationCap(t *testing.T) {
	path := writeTestMP4(t, 30*time.Second)

	a, err := PickVideo(path)
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind != KindVideo || a.MIME != "video/mp4" {
		t.Errorf("attachment = %+v", a)
	}
}

func TestPickVideoOverDurationCapRejected(t *testing.T) {
	path := writeTestMP4(t, MaxVideoDuration+30*time.Second)

	if _, err := PickVideo(path); err == nil {
		t.Fatal("video over the duration cap accepted")
	}
}

func TestPickVideoWithoutReadableDurationRejected(t *testing.T) {
	// An ftyp-only file sniffs as video/mp4 but carries no movie header,
	// so its length cannot be checked.
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, mp4Ftyp(), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := PickVideo(path); err == nil {
		t.Fatal("video with unreadable duration accepted")
	}
}

func TestVideoDurationReadsMovieHeader(t *testing.T) {
	data := append(mp4Ftyp(), mp4Box("moov", mp4Mvhd(600, 27000))...)
	d, err := videoDuration(data)
	if err != nil {
		t.Fatal(err)
	}
	if d != 45*time.Second {
		t.Errorf("duration = %s, want 45s", d)
	}
}
