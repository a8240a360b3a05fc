package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/chatexport"
	main "github.com/fwojciec/chatexport/cmd/chatexport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chatPage = `<!DOCTYPE html>
<html><body><main>
<article data-testid="conversation-turn-1">
<div data-message-author-role="user"><div class="whitespace-pre-wrap">Hello</div></div>
</article>
<article data-testid="conversation-turn-2">
<div data-message-author-role="assistant"><div class="markdown"><p>Hi <strong>there</strong>!</p></div></div>
</article>
</main></body></html>`

// writeHTML writes content to name inside dir and returns its path.
func writeHTML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readHistory(t *testing.T, path string) []*chatexport.ChatMessage {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var history []*chatexport.ChatMessage
	require.NoError(t, json.Unmarshal(data, &history))
	return history
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "chatexport")
	assert.Contains(t, stdout.String(), "html-file")
	assert.Contains(t, stdout.String(), "--lang")
}

func TestMain_Run_LocalizedHelp(t *testing.T) {
	t.Parallel()

	t.Run("English by default", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-h"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Extracts chat history")
		assert.Contains(t, stdout.String(), "Path to the HTML file")
	})

	t.Run("Georgian when requested before --help", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--lang", "ka", "--help"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "ამოიღებს")
		assert.Contains(t, stdout.String(), "HTML ფაილის")
		assert.NotContains(t, stdout.String(), "Extracts chat history")
	})

	t.Run("Georgian with an attached flag value", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--help", "--lang=ka"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "ამოიღებს")
	})
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_OutputRequiresSingleInput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"-o", "out.json", "a.html", "b.html"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")
	assert.False(t, main.ErrorReported(err))
}

func TestMain_Run_RejectsUnknownLanguage(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--lang", "fr", "chat.html"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON next to the input and verifies it", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeHTML(t, dir, "chat.html", chatPage)
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{input}, &stdout, &stderr)

		require.NoError(t, err)
		output := filepath.Join(dir, "chat.json")
		assert.Equal(t, []*chatexport.ChatMessage{
			{Speaker: chatexport.SpeakerUser, Text: "Hello"},
			{Speaker: chatexport.SpeakerAssistant, Text: "Hi there!"},
		}, readHistory(t, output))
		assert.Equal(t, "Chat history successfully extracted to "+output+"\n"+
			"\n--- Verification ---\n"+
			"Extracted 2 messages.\n"+
			"First message:\n"+
			"{\n  \"speaker\": \"user\",\n  \"text\": \"Hello\"\n}\n"+
			"Last message:\n"+
			"{\n  \"speaker\": \"assistant\",\n  \"text\": \"Hi there!\"\n}\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("honors --output and --no-verify", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeHTML(t, dir, "chat.html", chatPage)
		output := filepath.Join(dir, "history.json")
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--no-verify", "-o", output, input}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Len(t, readHistory(t, output), 2)
		assert.Equal(t, "Chat history successfully extracted to "+output+"\n", stdout.String())
		_, statErr := os.Stat(filepath.Join(dir, "chat.json"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("prints Georgian messages", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeHTML(t, dir, "chat.html", chatPage)
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--lang", "ka", "--no-verify", input}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, "ჩატის ისტორია წარმატებით იქნა შენახული ფაილში: "+filepath.Join(dir, "chat.json")+"\n", stdout.String())
	})

	t.Run("fails for a missing input", func(t *testing.T) {
		t.Parallel()

		input := filepath.Join(t.TempDir(), "missing.html")
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{input}, &stdout, &stderr)

		require.Error(t, err)
		assert.Equal(t, chatexport.ENOTFOUND, chatexport.ErrorCode(err))
		assert.True(t, main.ErrorReported(err))
		assert.Equal(t, "Error: HTML file not found at "+input+"\n", stdout.String())
	})

	t.Run("fails without creating a file when nothing is extracted", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeHTML(t, dir, "empty.html", `<html><body><p>nothing</p></body></html>`)
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{input}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "No direct message containers found either.")
		_, statErr := os.Stat(filepath.Join(dir, "empty.json"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("logs structured records when verbose", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeHTML(t, dir, "chat.html", chatPage)
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-v", "--no-verify", input}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "extract chat history")
		assert.Contains(t, stderr.String(), "strategy=turns")
		assert.Contains(t, stderr.String(), "write chat history")
		assert.Contains(t, stderr.String(), "lang=en")
	})
}

func TestMain_Run_Batch(t *testing.T) {
	t.Parallel()

	t.Run("prints outputs in input order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first := writeHTML(t, dir, "first.html", chatPage)
		second := writeHTML(t, dir, "second.html", chatPage)
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--no-verify", "-c", "2", first, second}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, "==> "+first+" <==\n"+
			"Chat history successfully extracted to "+filepath.Join(dir, "first.json")+"\n"+
			"\n"+
			"==> "+second+" <==\n"+
			"Chat history successfully extracted to "+filepath.Join(dir, "second.json")+"\n", stdout.String())
	})

	t.Run("fails when any input fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		good := writeHTML(t, dir, "good.html", chatPage)
		missing := filepath.Join(dir, "missing.html")
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--no-verify", missing, good}, &stdout, &stderr)

		require.EqualError(t, err, "1 of 2 files failed")
		assert.True(t, main.ErrorReported(err))
		assert.Contains(t, stdout.String(), "\n\n1 of 2 files failed.\n")
		assert.Len(t, readHistory(t, filepath.Join(dir, "good.json")), 2)
	})
}

// Not parallel: modifies the process environment.
func TestMain_Run_LanguageFromEnvironment(t *testing.T) {
	t.Setenv("CHATEXPORT_LANG", "ka")

	dir := t.TempDir()
	input := filepath.Join(dir, "missing.html")
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{input}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, "შეცდომა: HTML ფაილი ვერ მოიძებნა მითითებულ გზაზე: "+input+"\n", stdout.String())
}
