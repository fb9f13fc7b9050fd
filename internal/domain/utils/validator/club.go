package validator

import "strings"

// MaxLogoSize is the upload ceiling for club logos.
const MaxLogoSize = 5 << 20 // 5 MiB

var logoExtensions = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/svg+xml": "svg",
}

func ClubName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// ClubLogo reports whether the declared content type is allowed and the
// payload fits the ceiling. The returned extension is used for the
// storage path.
func ClubLogo(contentType string, size int) (string, bool) {
	ext, ok := logoExtensions[contentType]
	if !ok || size == 0 || size > MaxLogoSize {
		return "", false
	}
	return ext, true
}
