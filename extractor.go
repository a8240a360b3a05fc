package chatexport

import "context"

// Strategy names the DOM shape an extraction was performed against.
type Strategy string

// Strategy constants, in the order they are attempted.
const (
	// StrategyTurns locates conversation-turn articles, each holding at
	// most one message container per role.
	StrategyTurns Strategy = "turns"

	// StrategyContainers locates role-tagged message containers directly.
	// Used only when no conversation turns exist.
	StrategyContainers Strategy = "containers"
)

// Skip records a message that was identified by role but whose content
// root could not be found.
type Skip struct {
	Speaker Speaker

	// Position is the 1-based position of the turn or container.
	Position int
}

// Extraction holds the outcome of extracting a chat history from HTML.
type Extraction struct {
	Strategy Strategy

	// Found is the number of turns or containers located.
	Found int

	// Messages in document order.
	Messages []*ChatMessage

	Skipped []Skip
}

// Extractor extracts chat history from exported chat HTML.
type Extractor interface {
	// Extract processes raw HTML and returns the ordered chat history.
	// Returns ENOTFOUND when neither conversation turns nor message
	// containers exist in the document.
	Extract(html string) (*Extraction, error)
}

// Loader reads raw HTML documents.
type Loader interface {
	// Load returns the content of the HTML file at path.
	// Returns ENOTFOUND if the file does not exist.
	Load(ctx context.Context, path string) (string, error)
}
