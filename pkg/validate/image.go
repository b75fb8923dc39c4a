package validate

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUnsupportedImage = errors.New("unsupported image extension")

var imageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// ImageExtension returns the lower-cased extension of filename if it is an allowed image type.
func ImageExtension(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := imageExtensions[ext]; !ok {
		return "", ErrUnsupportedImage
	}
	return ext, nil
}

// UploadName builds profile_<yyyymmddHHMM>_<random>.<ext>.
func UploadName(prefix, ext string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + "_" + now.UTC().Format("200601021504") + "_" + suffix + "." + ext
}
