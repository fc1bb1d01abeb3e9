package fsutil_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reglet-dev/reglet-integrations/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LimitedReader_EnforcesLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		limit     int64
		wantError bool
	}{
		{name: "content under limit", content: "hello", limit: 10},
		{name: "content at limit", content: "hello", limit: 5},
		{name: "content over limit", content: "hello world", limit: 5, wantError: true},
		{name: "empty content", content: "", limit: 10},
		{name: "zero limit blocks content", content: "hello", limit: 0, wantError: true},
		{name: "zero limit allows empty", content: "", limit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reader := fsutil.NewLimitedReader(strings.NewReader(tt.content), tt.limit)
			data, err := io.ReadAll(reader)

			if tt.wantError {
				require.Error(t, err)
				var sizeErr *fsutil.SizeLimitExceededError
				require.ErrorAs(t, err, &sizeErr)
				assert.Equal(t, tt.limit, sizeErr.Limit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(data))
		})
	}
}

func Test_LimitedReader_StreamingEnforcement(t *testing.T) {
	t.Parallel()

	content := bytes.Repeat([]byte("x"), 1000)
	limit := int64(100)

	reader := fsutil.NewLimitedReader(bytes.NewReader(content), limit)

	buf := make([]byte, 10)
	var totalRead int64
	var hitError bool

	for {
		n, err := reader.Read(buf)
		totalRead += int64(n)
		if err != nil {
			var sizeErr *fsutil.SizeLimitExceededError
			hitError = errors.As(err, &sizeErr)
			break
		}
	}

	assert.True(t, hitError, "expected SizeLimitExceededError during streaming read")
	assert.Equal(t, limit, totalRead)
}

func Test_SizeLimitExceededError_Message(t *testing.T) {
	t.Parallel()

	err := &fsutil.SizeLimitExceededError{Limit: 1024, Read: 2048}
	assert.Equal(t, "size limit exceeded: read 2048 bytes, limit is 1.0 KB", err.Error())
}

func Test_ReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"leadconduit-zip"}`), 0o600))

	data, err := fsutil.ReadFile(path, fsutil.DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"leadconduit-zip"}`, string(data))

	_, err = fsutil.ReadFile(path, 4)
	var sizeErr *fsutil.SizeLimitExceededError
	assert.ErrorAs(t, err, &sizeErr)

	_, err = fsutil.ReadFile(filepath.Join(t.TempDir(), "missing.json"), fsutil.DefaultLimit)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_FormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes int64
		want  string
	}{
		{500, "500 bytes"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fsutil.FormatSize(tt.bytes))
	}
}
