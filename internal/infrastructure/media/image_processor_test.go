package media

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExtension(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"svg", "data:image/svg+xml;base64,AAAA", "svg"},
		{"png", "data:image/png;base64,AAAA", "png"},
		{"jpeg", "data:image/jpeg;base64,AAAA", "jpg"},
		{"jpg", "data:image/jpg;base64,AAAA", "jpg"},
		{"webp", "data:image/webp;base64,AAAA", "webp"},
		{"gif is not supported", "data:image/gif;base64,AAAA", ""},
		{"tiff is not supported", "data:image/tiff;base64,AAAA", ""},
		{"not a data uri", "plain text", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractExtension(tc.data))
		})
	}
}

func TestProcessUploadRejectsUnknownFormat(t *testing.T) {
	p := NewImageProcessor(t.TempDir(), nil)

	set, err := p.ProcessUpload("data:image/gif;base64,AAAA", "animation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image format")
	assert.Nil(t, set)
}

func TestProcessUploadRejectsEmptyData(t *testing.T) {
	p := NewImageProcessor(t.TempDir(), nil)

	set, err := p.ProcessUpload("", "empty")
	require.Error(t, err)
	assert.Nil(t, set)
}

func TestProcessUploadStoresSVGVerbatim(t *testing.T) {
	base := t.TempDir()
	p := NewImageProcessor(base, nil)

	svg := `<svg xmlns="http://www.w3.org/2000/svg"/>`
	data := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))

	set, err := p.ProcessUpload(data, "logo")
	require.NoError(t, err)
	require.NotNil(t, set)

	assert.True(t, strings.HasPrefix(set.Original, "/media/images/logo-"))
	assert.True(t, strings.HasSuffix(set.Original, ".svg"))
	assert.Empty(t, set.Variants)
	assert.Empty(t, set.SrcSet)

	stored, err := os.ReadFile(filepath.Join(base, "images", filepath.Base(set.Original)))
	require.NoError(t, err)
	assert.Equal(t, svg, string(stored))
}
