// Package dataurl encodes image bytes as RFC 2397 data URLs so category
// images and the site logo can be stored inline with the rest of the data.
package dataurl

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// MaxSize is the largest file EncodeFile accepts
const MaxSize = 5 << 20

// Encode returns a base64 data URL for data. The media type is sniffed
// from the content and must be an image.
func Encode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image")
	}
	mediaType := http.DetectContentType(data)
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("unsupported media type %s", mediaType)
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// EncodeFile reads the image at path and encodes it
func EncodeFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if info.Size() > MaxSize {
		return "", fmt.Errorf("image %s is larger than %d bytes", path, MaxSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	url, err := Encode(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return url, nil
}

// Decode returns the media type and bytes of a base64 data URL
func Decode(url string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL")
	}
	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("data URL is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URL: %w", err)
	}
	return mediaType, data, nil
}
