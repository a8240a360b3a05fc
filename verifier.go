package chatexport

import "context"

// Verification summarizes a chat history file read back from disk.
type Verification struct {
	Count int

	// First and Last hold the indented JSON of the first and last
	// messages. Last is empty when Count < 2.
	First string
	Last  string
}

// Verifier re-reads a written chat history file.
type Verifier interface {
	// Verify reads the file at path.
	// Returns ENOTFOUND if the file does not exist and EINVALID if it
	// cannot be decoded.
	Verify(ctx context.Context, path string) (*Verification, error)
}
