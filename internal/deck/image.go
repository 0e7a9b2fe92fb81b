package deck

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EncodeImageRef reads an image file and returns it as an embeddable data
// reference, so the slide carries its content instead of a path that may
// disappear before the presentation runs.
func EncodeImageRef(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	mime := "image/png"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	case ".gif":
		mime = "image/gif"
	case ".webp":
		mime = "image/webp"
	}

	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}

// ImageLabel describes an image reference for terminal display.
func ImageLabel(ref string) string {
	if !strings.HasPrefix(ref, "data:") {
		return ref
	}
	mime := strings.TrimPrefix(ref, "data:")
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if i := strings.IndexByte(ref, ','); i >= 0 {
		kb := (len(ref) - i - 1) * 3 / 4 / 1024
		return fmt.Sprintf("embedded %s (%d KB)", mime, kb)
	}
	return "embedded image"
}
