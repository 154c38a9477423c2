package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMimeType(t *testing.T) {
	pdf := []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n")

	mime, err := ValidateMimeType(bytes.NewReader(pdf), []string{MimePDF})
	require.NoError(t, err)
	assert.Equal(t, MimePDF, mime)

	_, err = ValidateMimeType(bytes.NewReader([]byte("plain text notes")), []string{MimePDF, MimeVideo})
	assert.ErrorIs(t, err, ErrInvalidFileType)
	assert.True(t, IsValidation(err))
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "video", ContentTypeFor("video/mp4", "lecture.mp4"))
	assert.Equal(t, "video", ContentTypeFor("application/octet-stream", "lecture.MKV"))
	assert.Equal(t, "document", ContentTypeFor(MimePDF, "notes.pdf"))
}
