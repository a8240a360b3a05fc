package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/chatexport"
)

// Ensure Extractor implements chatexport.Extractor at compile time.
var _ chatexport.Extractor = (*Extractor)(nil)

const (
	// turnSelector matches conversation turns in the primary DOM shape.
	turnSelector = `article[data-testid^="conversation-turn-"]`

	// containerSelector matches role-tagged message containers.
	containerSelector = "div[data-message-author-role]"

	roleAttr = "data-message-author-role"

	userRootSelector      = "div.whitespace-pre-wrap"
	assistantRootSelector = "div.markdown"
)

// strategy locates message nodes for one DOM shape and resolves each node
// to a speaker and content root.
type strategy struct {
	kind    chatexport.Strategy
	locate  func(doc *goquery.Document) *goquery.Selection
	resolve func(node *goquery.Selection) resolution
}

// resolution is the outcome of resolving one located node.
type resolution struct {
	// ok is false when no role could be identified; the node is skipped
	// without a diagnostic.
	ok      bool
	speaker chatexport.Speaker

	// root is nil when the role was identified but its content root is
	// missing.
	root *goquery.Selection
}

// strategies are tried in order; the first one that locates any node wins.
var strategies = []strategy{
	{kind: chatexport.StrategyTurns, locate: locateTurns, resolve: resolveTurn},
	{kind: chatexport.StrategyContainers, locate: locateContainers, resolve: resolveContainer},
}

// Extractor extracts chat history from exported chat pages.
// It understands two DOM shapes: conversation-turn articles wrapping
// role-tagged containers, and bare role-tagged containers.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the chat history in document order.
func (e *Extractor) Extract(html string) (*chatexport.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, chatexport.Errorf(chatexport.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, s := range strategies {
		nodes := s.locate(doc)
		if nodes.Length() == 0 {
			continue
		}
		return s.extract(nodes), nil
	}

	return nil, chatexport.Errorf(chatexport.ENOTFOUND, "no conversation turns or message containers found")
}

func (s strategy) extract(nodes *goquery.Selection) *chatexport.Extraction {
	result := &chatexport.Extraction{
		Strategy: s.kind,
		Found:    nodes.Length(),
		Messages: []*chatexport.ChatMessage{},
	}

	nodes.Each(func(i int, node *goquery.Selection) {
		res := s.resolve(node)
		if !res.ok {
			return
		}
		if res.root == nil {
			result.Skipped = append(result.Skipped, chatexport.Skip{
				Speaker:  res.speaker,
				Position: i + 1,
			})
			return
		}
		result.Messages = append(result.Messages, &chatexport.ChatMessage{
			Speaker: res.speaker,
			Text:    renderRoot(res.speaker, res.root),
		})
	})

	return result
}

func locateTurns(doc *goquery.Document) *goquery.Selection {
	return doc.Find(turnSelector)
}

func locateContainers(doc *goquery.Document) *goquery.Selection {
	return doc.Find(containerSelector)
}

// resolveTurn finds the user or assistant container inside a turn.
// A user container takes precedence when a turn holds both.
func resolveTurn(turn *goquery.Selection) resolution {
	if c := turn.Find(roleSelector(chatexport.SpeakerUser)).First(); c.Length() > 0 {
		return resolution{ok: true, speaker: chatexport.SpeakerUser, root: findRoot(c, userRootSelector)}
	}
	if c := turn.Find(roleSelector(chatexport.SpeakerAssistant)).First(); c.Length() > 0 {
		return resolution{ok: true, speaker: chatexport.SpeakerAssistant, root: findRoot(c, assistantRootSelector)}
	}
	return resolution{}
}

// resolveContainer reads the role from the container itself. The content
// root may use either class, since this shape varies between exports.
func resolveContainer(container *goquery.Selection) resolution {
	role, _ := container.Attr(roleAttr)
	speaker, ok := chatexport.ParseSpeaker(role)
	if !ok {
		return resolution{}
	}
	return resolution{
		ok:      true,
		speaker: speaker,
		root:    findRoot(container, userRootSelector, assistantRootSelector),
	}
}

func roleSelector(speaker chatexport.Speaker) string {
	return `div[` + roleAttr + `="` + string(speaker) + `"]`
}

// findRoot returns the first descendant matching the first selector that
// matches anything, or nil.
func findRoot(container *goquery.Selection, selectors ...string) *goquery.Selection {
	for _, selector := range selectors {
		if root := container.Find(selector).First(); root.Length() > 0 {
			return root
		}
	}
	return nil
}

// renderRoot converts a content root to message text. User messages are
// plain text; assistant messages are rendered block by block.
func renderRoot(speaker chatexport.Speaker, root *goquery.Selection) string {
	if speaker == chatexport.SpeakerUser {
		return joinedText(root, "\n")
	}
	return RenderBlocks(root)
}
