package gjson_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/chatexport"
	"github.com/fwojciec/chatexport/gjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Verifier implements chatexport.Verifier at compile time.
var _ chatexport.Verifier = (*gjson.Verifier)(nil)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chat.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestVerifier_Verify(t *testing.T) {
	t.Parallel()

	t.Run("summarizes first and last messages", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, `[
  {"speaker": "user", "text": "გამარჯობა"},
  {"speaker": "assistant", "text": "middle"},
  {"speaker": "assistant", "text": "bye"}
]`)

		got, err := gjson.NewVerifier().Verify(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, 3, got.Count)
		assert.Equal(t, "{\n  \"speaker\": \"user\",\n  \"text\": \"გამარჯობა\"\n}", got.First)
		assert.Equal(t, "{\n  \"speaker\": \"assistant\",\n  \"text\": \"bye\"\n}", got.Last)
	})

	t.Run("leaves last empty for a single message", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, `[{"speaker":"user","text":"only"}]`)

		got, err := gjson.NewVerifier().Verify(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, 1, got.Count)
		assert.Contains(t, got.First, `"only"`)
		assert.Empty(t, got.Last)
	})

	t.Run("reports an empty array", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, `[]`)

		got, err := gjson.NewVerifier().Verify(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, 0, got.Count)
		assert.Empty(t, got.First)
	})

	t.Run("returns EINVALID for malformed JSON", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, `[{"speaker": "user",`)

		_, err := gjson.NewVerifier().Verify(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, chatexport.EINVALID, chatexport.ErrorCode(err))
	})

	t.Run("returns EINVALID when the document is not an array", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, `{"speaker": "user", "text": "hi"}`)

		_, err := gjson.NewVerifier().Verify(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, chatexport.EINVALID, chatexport.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := gjson.NewVerifier().Verify(context.Background(), filepath.Join(t.TempDir(), "none.json"))

		require.Error(t, err)
		assert.Equal(t, chatexport.ENOTFOUND, chatexport.ErrorCode(err))
	})
}
