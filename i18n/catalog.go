// Package i18n provides localized diagnostic messages backed by
// golang.org/x/text message catalogs.
package i18n

import (
	"sort"
	"strconv"

	"github.com/fwojciec/chatexport"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLanguage is used when no language is selected.
const DefaultLanguage = "en"

// Ensure Catalog implements chatexport.Catalog at compile time.
var _ chatexport.Catalog = (*Catalog)(nil)

// Catalog formats messages for a single language.
// It is immutable and safe for concurrent use.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// NewCatalog returns the catalog for lang ("en" or "ka").
// Returns EINVALID for unsupported languages.
func NewCatalog(lang string) (*Catalog, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	tag, ok := tags[lang]
	if !ok {
		return nil, chatexport.Errorf(chatexport.EINVALID, "unsupported language %q", lang)
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for code, messages := range translations {
		for key, msg := range messages {
			if err := b.SetString(tags[code], string(key), msg); err != nil {
				return nil, chatexport.Errorf(chatexport.EINTERNAL, "build catalog: %v", err)
			}
		}
	}

	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
	}, nil
}

// Language returns the catalog's language tag.
func (c *Catalog) Language() string {
	return c.tag.String()
}

// Sprintf formats the message identified by key. Integer arguments are
// converted to plain digits first, since the printer would otherwise apply
// locale grouping ("1,234").
func (c *Catalog) Sprintf(key chatexport.MessageKey, args ...any) string {
	plain := make([]any, len(args))
	for i, arg := range args {
		if n, ok := arg.(int); ok {
			plain[i] = strconv.Itoa(n)
			continue
		}
		plain[i] = arg
	}
	return c.printer.Sprintf(string(key), plain...)
}

// Languages returns the supported language codes in sorted order.
func Languages() []string {
	langs := make([]string, 0, len(tags))
	for lang := range tags {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
