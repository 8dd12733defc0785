package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPublicID(t *testing.T) {
	t.Run("versioned delivery URL", func(t *testing.T) {
		id, err := extractPublicID("/demo/image/upload/v1234567890/uploads/abc123.jpg")
		require.NoError(t, err)
		assert.Equal(t, "uploads/abc123", id)
	})

	t.Run("unversioned URL", func(t *testing.T) {
		id, err := extractPublicID("/demo/image/upload/uploads/abc123.png")
		require.NoError(t, err)
		assert.Equal(t, "uploads/abc123", id)
	})

	t.Run("folder starting with v is not a version", func(t *testing.T) {
		id, err := extractPublicID("/demo/image/upload/volunteers/abc.jpg")
		require.NoError(t, err)
		assert.Equal(t, "volunteers/abc", id)
	})

	t.Run("no upload segment", func(t *testing.T) {
		_, err := extractPublicID("/demo/image/abc.jpg")
		assert.Error(t, err)
	})
}
