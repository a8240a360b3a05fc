package goquery

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/chatexport"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BlockKind identifies how a content block is rendered.
type BlockKind int

// BlockKind constants.
const (
	BlockUnknown BlockKind = iota
	BlockParagraph
	BlockCode
	BlockUnorderedList
	BlockOrderedList
	BlockHeading
	BlockBlockquote
	BlockTable
	BlockRule
)

// DefaultLanguage is the fence tag used when a code block has no
// language marker.
const DefaultLanguage = "text"

// controlLabels are button captions found next to the language label in
// code block headers.
var controlLabels = map[string]bool{
	"copy":      true,
	"edit":      true,
	"copy code": true,
}

// ClassifyBlock returns the block kind of n.
// Anything that is not a recognized element is BlockUnknown.
func ClassifyBlock(n *html.Node) BlockKind {
	if n == nil || n.Type != html.ElementNode {
		return BlockUnknown
	}
	switch n.DataAtom {
	case atom.P:
		return BlockParagraph
	case atom.Pre:
		return BlockCode
	case atom.Ul:
		return BlockUnorderedList
	case atom.Ol:
		return BlockOrderedList
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return BlockHeading
	case atom.Blockquote:
		return BlockBlockquote
	case atom.Table:
		return BlockTable
	case atom.Hr:
		return BlockRule
	}
	return BlockUnknown
}

// RenderContent parses an HTML fragment and renders its top-level blocks
// as if the fragment were an assistant message's content root.
func RenderContent(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", chatexport.Errorf(chatexport.EINVALID, "failed to parse HTML: %v", err)
	}
	return RenderBlocks(doc.Find("body")), nil
}

// RenderBlocks renders the direct element children of root in document
// order and joins the non-empty fragments with blank lines.
// Only direct children are treated as blocks.
func RenderBlocks(root *goquery.Selection) string {
	var fragments []string
	root.Children().Each(func(_ int, block *goquery.Selection) {
		fragments = append(fragments, RenderBlock(block))
	})
	return chatexport.JoinFragments(fragments)
}

// RenderBlock renders a single block. Unknown blocks render as "".
func RenderBlock(block *goquery.Selection) string {
	n := block.Get(0)
	switch ClassifyBlock(n) {
	case BlockParagraph:
		return joinedText(block, "\n")
	case BlockCode:
		return renderCode(block)
	case BlockUnorderedList:
		return renderList(block, false)
	case BlockOrderedList:
		return renderList(block, true)
	case BlockHeading:
		return renderHeading(block, headingLevel(n))
	case BlockBlockquote:
		return renderBlockquote(block)
	case BlockTable:
		return renderTable(block)
	case BlockRule:
		return "\n---\n"
	default:
		return ""
	}
}

func renderCode(pre *goquery.Selection) string {
	src := pre
	if code := pre.Find("code").First(); code.Length() > 0 {
		src = code
	}
	return "```" + CodeLanguage(pre) + "\n" + trimCode(src.Text()) + "\n```"
}

// CodeLanguage detects the language of a code block from its preceding
// sibling. The sibling must be a div with both the "flex" and
// "items-center" classes; its nested elements are scanned from last to
// first for a label that is not a control button caption.
//
// Only the immediately preceding element is considered. Searching further
// back for any earlier div would let the header of one code block label
// every later block that has none.
func CodeLanguage(pre *goquery.Selection) string {
	header := pre.Prev()
	if !header.Is("div") || !header.HasClass("flex") || !header.HasClass("items-center") {
		return DefaultLanguage
	}

	candidates := header.Find("*")
	for i := candidates.Length() - 1; i >= 0; i-- {
		label := strings.TrimSpace(candidates.Eq(i).Text())
		if label != "" && !controlLabels[strings.ToLower(label)] {
			return label
		}
	}
	return DefaultLanguage
}

// trimCode removes leading blank lines and trailing whitespace while
// keeping the indentation of the first code line.
func trimCode(s string) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 || strings.TrimSpace(s[:i]) != "" {
			return s
		}
		s = s[i+1:]
	}
}

// renderList renders direct list items one per line. Continuation lines
// inside an item are indented by two spaces.
func renderList(list *goquery.Selection, ordered bool) string {
	var lines []string
	list.ChildrenFiltered("li").Each(func(i int, item *goquery.Selection) {
		prefix := "- "
		if ordered {
			prefix = strconv.Itoa(i+1) + ". "
		}
		text := strings.ReplaceAll(joinedText(item, "\n"), "\n", "\n  ")
		lines = append(lines, strings.TrimRight(prefix+text, " "))
	})
	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace)
}

func headingLevel(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	}
	return 6
}

func renderHeading(heading *goquery.Selection, level int) string {
	return strings.Repeat("#", level) + " " + joinedText(heading, " ")
}

func renderBlockquote(quote *goquery.Selection) string {
	var lines []string
	for _, line := range strings.Split(joinedText(quote, "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, "> "+line)
		}
	}
	return strings.Join(lines, "\n")
}

// renderTable renders a table as pipe-delimited rows. The header row is
// the first row of a direct thead, else the first row of the table; it is
// never repeated among the body rows. Rows without cells are omitted.
func renderTable(table *goquery.Selection) string {
	rows := tableRows(table)

	var header *goquery.Selection
	body := rows
	if thead := table.ChildrenFiltered("thead").First(); thead.Length() > 0 {
		header = thead.ChildrenFiltered("tr").First()
		body = rows.FilterFunction(func(_ int, row *goquery.Selection) bool {
			return row.Get(0).Parent.DataAtom != atom.Thead
		})
	} else if rows.Length() > 0 {
		header = rows.First()
		body = rows.Slice(1, rows.Length())
	}

	var lines []string
	if header != nil {
		if cells := rowCells(header); len(cells) > 0 {
			separator := make([]string, len(cells))
			for i := range separator {
				separator[i] = "---"
			}
			lines = append(lines, pipeRow(cells), pipeRow(separator))
		}
	}

	body.Each(func(_ int, row *goquery.Selection) {
		if cells := rowCells(row); len(cells) > 0 {
			lines = append(lines, pipeRow(cells))
		}
	})

	return strings.Join(lines, "\n")
}

// tableRows returns the rows that belong to table itself: direct tr
// children and tr children of its direct thead, tbody and tfoot sections.
// Rows of nested tables are excluded.
func tableRows(table *goquery.Selection) *goquery.Selection {
	tableNode := table.Get(0)
	return table.Find("tr").FilterFunction(func(_ int, row *goquery.Selection) bool {
		parent := row.Get(0).Parent
		if parent == tableNode {
			return true
		}
		switch parent.DataAtom {
		case atom.Thead, atom.Tbody, atom.Tfoot:
			return parent.Parent == tableNode
		}
		return false
	})
}

// rowCells returns the text of the row's direct th and td children.
// Whitespace-only cells are kept as empty strings to preserve columns.
func rowCells(row *goquery.Selection) []string {
	return row.ChildrenFiltered("th, td").Map(func(_ int, cell *goquery.Selection) string {
		return joinedText(cell, " ")
	})
}

func pipeRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
