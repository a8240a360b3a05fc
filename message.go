package chatexport

import "context"

// Speaker identifies the author of a chat message.
type Speaker string

// Speaker constants. The set is closed: extractors never emit other values.
const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// ParseSpeaker maps an author-role attribute value to a Speaker.
// Returns false for roles outside the closed set (e.g. "system", "tool").
func ParseSpeaker(role string) (Speaker, bool) {
	switch Speaker(role) {
	case SpeakerUser:
		return SpeakerUser, true
	case SpeakerAssistant:
		return SpeakerAssistant, true
	}
	return "", false
}

// ChatMessage is a single extracted message.
// Text may be empty; an empty string is a valid, retained value.
type ChatMessage struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Validate returns an error if the message contains invalid fields.
func (m *ChatMessage) Validate() error {
	if _, ok := ParseSpeaker(string(m.Speaker)); !ok {
		return Errorf(EINVALID, "invalid speaker %q", m.Speaker)
	}
	return nil
}

// HistoryWriter persists an ordered chat history.
type HistoryWriter interface {
	// WriteHistory writes history to path.
	// Returns EINVALID for an empty history or an invalid message.
	WriteHistory(ctx context.Context, path string, history []*ChatMessage) error
}
