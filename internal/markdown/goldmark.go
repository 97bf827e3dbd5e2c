package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// New returns a markdown converter producing HTML. Raw HTML blocks in the
// source are not rendered.
func New() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.NewTypographer(
				extension.WithTypographicSubstitutions(map[extension.TypographicPunctuation][]byte{
					extension.LeftDoubleQuote:  []byte("« "),
					extension.RightDoubleQuote: []byte(" »"),
				}),
			),
		),
	)
}
