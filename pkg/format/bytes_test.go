package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "0 B", Format(0))
	assert.Equal(t, "512 B", Format(512))
	assert.Equal(t, "1 KB", Format(1024))
	assert.Equal(t, "1.50 KB", Format(1536))
	assert.Equal(t, "1 MB", Format(1024*1024))
	assert.Equal(t, "5 MB", Format(5*1024*1024))
	assert.Equal(t, "1 GB", Format(1024*1024*1024))
	assert.Equal(t, "10.5 KB", Format(10752))
}

func TestFormatAsUnit(t *testing.T) {
	assert.Equal(t, "5MB", FormatAsUnit(5*1024*1024))
	assert.Equal(t, "50MB", FormatAsUnit(50*1024*1024))
	assert.Equal(t, "1GB", FormatAsUnit(1024*1024*1024))
	assert.Equal(t, "5GB", FormatAsUnit(5*1024*1024*1024))
	assert.Equal(t, "500KB", FormatAsUnit(500*1024))
	assert.Equal(t, "1000 bytes", FormatAsUnit(1000))
}
