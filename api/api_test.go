package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)

	for _, path := range []string{"/healthz", "/normalize", "/generate"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
	assert.Equal(t, "normalize", doc.Paths.Find("/normalize").Post.OperationID)
	assert.NotPanics(t, func() { MustLoad() })
}
