package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Café  Olé!! ", "cafe-ole"},
		{"a--b__c", "a-b-c"},
		{"متجر", ""},
		{"Shop 2024", "shop-2024"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}

	long := Slugify(string(bytes.Repeat([]byte("ab-"), 60)))
	assert.LessOrEqual(t, len(long), 100)
	assert.True(t, ValidSlug(long))
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("summer-sale-2"))
	assert.False(t, ValidSlug("Summer"))
	assert.False(t, ValidSlug("-lead"))
	assert.False(t, ValidSlug("double--dash"))
	assert.False(t, ValidSlug(""))
}

func TestDetectImage(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.White)
	require.NoError(t, png.Encode(&buf, img))

	contentType, ext, err := DetectImage(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, ".png", ext)

	_, _, err = DetectImage(nil)
	assert.Error(t, err)

	_, _, err = DetectImage([]byte("just some text"))
	assert.Error(t, err)

	_, _, err = DetectImage(make([]byte, MaxImageSize+1))
	assert.Error(t, err)
}
