package quote

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"bagpresto/internal/core/apperr"
)

// MaxLogoSize is the largest accepted logo upload, 2 MiB.
const MaxLogoSize = 2 << 20

// Logo is an uploaded image that passed the checks.
type Logo struct {
	ContentType string
	Extension   string
	Size        int64
}

// ValidateLogo rejects uploads larger than MaxLogoSize or whose declared or
// sniffed content type is not a raster image. data is the full file content.
func ValidateLogo(declaredType string, data []byte) (Logo, error) {
	size := int64(len(data))
	if size == 0 {
		return Logo{}, apperr.New(apperr.CodeUpload, "Le fichier est vide")
	}
	if size > MaxLogoSize {
		return Logo{}, apperr.New(apperr.CodeUpload, "Le fichier est trop volumineux (max 2 Mo)")
	}
	if declaredType != "" && !isImage(declaredType) {
		return Logo{}, apperr.New(apperr.CodeUpload, "Veuillez sélectionner une image")
	}
	detected := mimetype.Detect(data)
	if !isImage(detected.String()) {
		return Logo{}, apperr.New(apperr.CodeUpload, "Veuillez sélectionner une image").
			WithDetails(map[string]string{"content_type": fmt.Sprintf("type détecté %s", detected.String())})
	}
	return Logo{
		ContentType: baseType(detected.String()),
		Extension:   detected.Extension(),
		Size:        size,
	}, nil
}

// isImage accepts raster image types. SVG is refused: it can carry script
// and logos are served from the API origin.
func isImage(contentType string) bool {
	ct := strings.ToLower(baseType(strings.TrimSpace(contentType)))
	return strings.HasPrefix(ct, "image/") && ct != "image/svg+xml"
}

func baseType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		return strings.TrimSpace(contentType[:i])
	}
	return contentType
}
