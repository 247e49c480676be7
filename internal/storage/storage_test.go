package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLocalCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "nested", "manifest.json")

	err := Write(context.Background(), dest, []byte(`{"ok":true}`))
	require.NoError(t, err)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(got))
}

func TestParseS3URI(t *testing.T) {
	bucket, key, isS3 := parseS3URI("s3://my-bucket/renders/seq.json")
	assert.True(t, isS3)
	assert.Equal(t, "my-bucket", bucket)
	assert.Equal(t, "renders/seq.json", key)

	_, _, isS3 = parseS3URI("renders/seq.json")
	assert.False(t, isS3)

	_, _, isS3 = parseS3URI("s3://bucket-only")
	assert.False(t, isS3)
}
