package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// breakingElements end the current text segment. Inline elements (code,
// strong, a, span, ...) do not, so their text joins the surrounding run.
var breakingElements = map[atom.Atom]bool{
	atom.Address:    true,
	atom.Article:    true,
	atom.Aside:      true,
	atom.Blockquote: true,
	atom.Br:         true,
	atom.Caption:    true,
	atom.Dd:         true,
	atom.Details:    true,
	atom.Div:        true,
	atom.Dl:         true,
	atom.Dt:         true,
	atom.Figcaption: true,
	atom.Figure:     true,
	atom.Footer:     true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Header:     true,
	atom.Hr:         true,
	atom.Li:         true,
	atom.Main:       true,
	atom.Nav:        true,
	atom.Ol:         true,
	atom.P:          true,
	atom.Pre:        true,
	atom.Section:    true,
	atom.Summary:    true,
	atom.Table:      true,
	atom.Tbody:      true,
	atom.Td:         true,
	atom.Tfoot:      true,
	atom.Th:         true,
	atom.Thead:      true,
	atom.Tr:         true,
	atom.Ul:         true,
}

// hiddenElements never contribute text.
var hiddenElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
	atom.Noscript: true,
}

// segments returns the text runs below the selected nodes. Runs are split
// at block-level element boundaries, trimmed, and empty runs are dropped.
// Whitespace inside a run, including newlines, is preserved.
func segments(sel *goquery.Selection) []string {
	var (
		out []string
		run strings.Builder
	)

	flush := func() {
		if s := strings.TrimSpace(run.String()); s != "" {
			out = append(out, s)
		}
		run.Reset()
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			run.WriteString(n.Data)
		case html.ElementNode:
			if hiddenElements[n.DataAtom] {
				return
			}
			breaking := breakingElements[n.DataAtom]
			if breaking {
				flush()
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
			if breaking {
				flush()
			}
		}
	}

	for _, n := range sel.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		flush()
	}

	return out
}

// joinedText returns the selection's text segments joined by sep.
func joinedText(sel *goquery.Selection, sep string) string {
	return strings.Join(segments(sel), sep)
}
