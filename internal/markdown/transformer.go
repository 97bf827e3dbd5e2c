package markdown

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type NodeTransformer interface {
	Transform(n ast.Node) error
}

type NodeTransformerFunc func(n ast.Node) error

func (f NodeTransformerFunc) Transform(n ast.Node) error {
	if err := f(n); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Transformer applies node transformers to every node of a parsed document.
type Transformer struct {
	transformers []NodeTransformer
	err          error
}

func (t *Transformer) Transform(root *ast.Document, reader text.Reader, pc parser.Context) {
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		for _, nodeTransformer := range t.transformers {
			if err := nodeTransformer.Transform(n); err != nil {
				return ast.WalkStop, errors.WithStack(err)
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		t.err = errors.WithStack(err)
	}
}

func (t *Transformer) Error() error {
	if t.err == nil {
		return nil
	}

	return errors.WithStack(t.err)
}

var unsafeSchemes = [][]byte{[]byte("javascript:"), []byte("vbscript:"), []byte("data:")}

// StripUnsafeLinks replaces the destination of links and images using a
// scriptable or inline scheme.
var StripUnsafeLinks NodeTransformerFunc = func(n ast.Node) error {
	strip := func(destination []byte) []byte {
		lower := bytes.ToLower(bytes.TrimSpace(destination))
		for _, scheme := range unsafeSchemes {
			if bytes.HasPrefix(lower, scheme) {
				return []byte("#")
			}
		}
		return destination
	}

	switch typ := n.(type) {
	case *ast.Image:
		typ.Destination = strip(typ.Destination)
	case *ast.Link:
		typ.Destination = strip(typ.Destination)
	}

	return nil
}
