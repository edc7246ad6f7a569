// Package media prepares picked files for upload: images are optionally
// resized and recompressed client-side and embedded as data URIs; videos
// travel as direct references.
package media

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"image/jpeg"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// Kind is the media type of an attachment, in the API's vocabulary.
type Kind string

const (
	KindImagen Kind = "imagen"
	KindVideo  Kind = "video"
)

// Attachment is a prepared media payload. For images, URL is an embedded
// data URI; for videos it is a direct reference.
type Attachment struct {
	Kind Kind
	URL  string
	MIME string
}

// Image pipeline defaults: the recompression target width and JPEG
// quality applied when no configuration overrides them.
const (
	DefaultMaxWidth = 1024
	DefaultQuality  = 70
)

// ImageOptions control the image pipeline.
type ImageOptions struct {
	// Recompress resizes to MaxWidth and re-encodes as JPEG at Quality.
	// When false the picked bytes are embedded unchanged.
	Recompress bool
	MaxWidth   int
	Quality    int
}

func (o ImageOptions) withDefaults() ImageOptions {
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.Quality <= 0 {
		o.Quality = DefaultQuality
	}
	return o
}

// PickImage reads an image file and prepares it for embedding.
func PickImage(path string, opts ImageOptions) (*Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, fmt.Errorf("%s is not an image (detected %s)", path, mime.String())
	}

	if !opts.Recompress {
		return &Attachment{
			Kind: KindImagen,
			URL:  dataURI(mime.String(), data),
			MIME: mime.String(),
		}, nil
	}

	opts = opts.withDefaults()
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if img.Bounds().Dx() > opts.MaxWidth {
		img = imaging.Resize(img, opts.MaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	return &Attachment{
		Kind: KindImagen,
		URL:  dataURI("image/jpeg", buf.Bytes()),
		MIME: "image/jpeg",
	}, nil
}

// MaxVideoDuration caps the videos the picker accepts.
const MaxVideoDuration = 60 * time.Second

// PickVideo prepares a video reference. Local files are sniffed to make
// sure they are video and their duration must be readable and within
// MaxVideoDuration; http(s) URLs pass through untouched (already-hosted
// media was capped when it was uploaded). Videos are transmitted as
// references rather than embedded payloads pending a dedicated
// media-hosting integration.
func PickVideo(ref string) (*Attachment, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return &Attachment{Kind: KindVideo, URL: ref}, nil
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("reading video: %w", err)
	}
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "video/") {
		return nil, fmt.Errorf("%s is not a video (detected %s)", ref, mime.String())
	}

	duration, err := videoDuration(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	if duration > MaxVideoDuration {
		return nil, fmt.Errorf("%s is %s long; videos may be at most %s", ref, duration.Round(time.Second), MaxVideoDuration)
	}
	return &Attachment{Kind: KindVideo, URL: ref, MIME: mime.String()}, nil
}

// videoDuration reads the duration from the MP4-family movie header
// (moov/mvhd), the container phone cameras record. A video whose
// duration cannot be determined is rejected rather than waved through.
func videoDuration(data []byte) (time.Duration, error) {
	moov, ok := findBox(data, "moov")
	if !ok {
		return 0, fmt.Errorf("could not determine video duration")
	}
	mvhd, ok := findBox(moov, "mvhd")
	if !ok || len(mvhd) < 20 {
		return 0, fmt.Errorf("could not determine video duration")
	}

	var timescale, duration uint64
	switch mvhd[0] {
	case 0:
		timescale = uint64(binary.BigEndian.Uint32(mvhd[12:16]))
		duration = uint64(binary.BigEndian.Uint32(mvhd[16:20]))
	case 1:
		if len(mvhd) < 32 {
			return 0, fmt.Errorf("could not determine video duration")
		}
		timescale = uint64(binary.BigEndian.Uint32(mvhd[20:24]))
		duration = binary.BigEndian.Uint64(mvhd[24:32])
	default:
		return 0, fmt.Errorf("could not determine video duration")
	}
	if timescale == 0 {
		return 0, fmt.Errorf("could not determine video duration")
	}
	return time.Duration(duration) * time.Second / time.Duration(timescale), nil
}

// findBox returns the payload of the first top-level box with the given
// type among the sibling boxes in data.
func findBox(data []byte, boxType string) ([]byte, bool) {
	for len(data) >= 8 {
		size := uint64(binary.BigEndian.Uint32(data[0:4]))
		name := string(data[4:8])
		header := uint64(8)
		if size == 1 {
			if len(data) < 16 {
				return nil, false
			}
			size = binary.BigEndian.Uint64(data[8:16])
			header = 16
		}
		if size < header || size > uint64(len(data)) {
			return nil, false
		}
		if name == boxType {
			return data[header:size], true
		}
		data = data[size:]
	}
	return nil, false
}

func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
