package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"net/http"

	"github.com/juson/ghibliai/internal/studio"
)

// maxFormSize leaves room for the prompt and the hidden data URL next to the file.
const maxFormSize = 3 * studio.MaxFileSize

var errTooLarge = errors.New("upload too large")

// readUploadedImage returns the file posted in the "file" field, or nil when
// none was sent.
func (h *Handler) readUploadedImage(r *http.Request) (*studio.File, error) {
	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	if header.Size > studio.MaxFileSize {
		return nil, errTooLarge
	}
	data, err := studio.ReadLimited(file)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	f := studio.NewFile(header.Filename, header.Header.Get("Content-Type"), data)
	width, height, err := imageDimensions(data)
	if err != nil {
		slog.Debug("Failed to get image dimensions", "filename", f.Name, "error", err)
	}
	slog.Info("Image uploaded", "filename", f.Name, "mime", f.MIMEType, "bytes", len(data), "width", width, "height", height)
	return &f, nil
}

// previewFile decodes the hidden data URL field restored from an earlier
// submission.
func previewFile(dataURL string) (*studio.File, error) {
	mimeType, data, err := studio.DecodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	if len(data) > studio.MaxFileSize {
		return nil, errTooLarge
	}
	f := studio.NewFile("", mimeType, data)
	return &f, nil
}

func imageDimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
