package studio

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize bounds the size of an uploaded image.
const MaxFileSize = 10 * 1024 * 1024

// File is an image picked through the drop zone or the file browser.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

// NewFile resolves the MIME type of data. A declared type wins unless it is
// empty or generic, in which case the content is sniffed.
func NewFile(name, declared string, data []byte) File {
	mimeType := declared
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	mimeType = strings.TrimSpace(strings.ToLower(mimeType))
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mimetype.Detect(data).String()
		if i := strings.Index(mimeType, ";"); i >= 0 {
			mimeType = mimeType[:i]
		}
	}
	return File{Name: name, MIMEType: mimeType, Data: data}
}

// ReadFile loads an image from disk.
func ReadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	data, err := ReadLimited(f)
	if err != nil {
		return File{}, err
	}
	return NewFile(filepath.Base(path), "", data), nil
}

// ReadLimited reads r, failing when it exceeds MaxFileSize.
func ReadLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file contents: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("file too large (max %dMB)", MaxFileSize/1024/1024)
	}
	return data, nil
}

func (f File) IsImage() bool {
	return strings.HasPrefix(f.MIMEType, "image/")
}

func (f File) DataURL() string {
	return EncodeDataURL(f.MIMEType, f.Data)
}

// EncodeDataURL renders data as a base64 data URL.
func EncodeDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL splits a base64 data URL into its MIME type and payload.
func DecodeDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL")
	}
	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("data URL is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URL: %w", err)
	}
	return mimeType, data, nil
}
