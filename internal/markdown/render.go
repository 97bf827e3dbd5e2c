package markdown

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
	gmParser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ToHTML renders the given markdown source to HTML ready to be embedded
// in a page.
func ToHTML(source string) (template.HTML, error) {
	md := New()

	transformer := &Transformer{
		transformers: []NodeTransformer{
			StripUnsafeLinks,
		},
	}

	md.Parser().AddOptions(gmParser.WithASTTransformers(
		util.Prioritized(
			transformer,
			999,
		),
	))

	data := []byte(source)
	root := md.Parser().Parse(text.NewReader(data))

	if err := transformer.Error(); err != nil {
		return "", errors.WithStack(err)
	}

	var buff bytes.Buffer

	if err := md.Renderer().Render(&buff, data, root); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buff.String()), nil
}
