package quote

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bagpresto/internal/core/apperr"
)

var pngHeader = []byte{
	0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n',
	0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

func TestValidateLogo_AcceptsImage(t *testing.T) {
	logo, err := ValidateLogo("image/png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", logo.ContentType)
	assert.Equal(t, ".png", logo.Extension)
	assert.Equal(t, int64(len(pngHeader)), logo.Size)
}

func TestValidateLogo_Rejects(t *testing.T) {
	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, MaxLogoSize)...)

	tests := []struct {
		name     string
		declared string
		data     []byte
	}{
		{"empty", "image/png", nil},
		{"too large", "image/png", big},
		{"declared pdf", "application/pdf", pngHeader},
		{"text posing as image", "image/png", []byte("hello world, not an image")},
		{"declared svg", "image/svg+xml", pngHeader},
		{"svg posing as png", "image/png", []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateLogo(tt.declared, tt.data)
			assert.Equal(t, apperr.CodeUpload, apperr.CodeOf(err))
		})
	}
}

func TestCheckPassword(t *testing.T) {
	assert.NoError(t, CheckPassword("123456"))
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(CheckPassword("12345")))
}
