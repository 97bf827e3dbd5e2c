package component

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

var layouts = ParseTemplates(templatesFS, nil, "templates/*.gohtml")

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

// Funcs returns the helpers available to every template. Helpers depending
// on the request are bound to the given context at render time.
func Funcs(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		"url": func(paths ...string) string {
			return string(BaseURL(ctx, WithPath(paths...)))
		},
		"withQuery": func(kv ...string) string {
			return string(CurrentURL(ctx, WithValues(kv...)))
		},
		"active": func(path string) bool {
			return MatchPathPrefix(ctx, path)
		},
		"classes": ClassNames,
		"safeURL": func(s string) template.URL {
			if !strings.HasPrefix(s, "data:image/") {
				return template.URL("")
			}
			return template.URL(s)
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format(dateLayout)
		},
		"datetime": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format(dateTimeLayout)
		},
		"comma": func(v int) string {
			return humanize.Comma(int64(v))
		},
		"decimal": func(v float64) string {
			return humanize.FtoaWithDigits(v, 1)
		},
		"bytes": func(v int64) string {
			return humanize.IBytes(uint64(v))
		},
		"percent": func(part, total int) int {
			if total == 0 {
				return 0
			}
			return part * 100 / total
		},
	}
}

// ParseTemplates parses the given templates with the shared helpers and the
// given package specific ones.
func ParseTemplates(fsys fs.FS, funcs template.FuncMap, patterns ...string) *template.Template {
	return template.Must(
		template.New("").
			Funcs(Funcs(context.Background())).
			Funcs(funcs).
			ParseFS(fsys, patterns...),
	)
}

// Template renders the named template of the set as a component.
func Template(set *template.Template, name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cloned, err := set.Clone()
		if err != nil {
			return errors.WithStack(err)
		}

		cloned.Funcs(Funcs(ctx))

		tmpl := cloned.Lookup(name)
		if tmpl == nil {
			return errors.Errorf("could not find template '%s'", name)
		}

		if err := templ.FromGoHTML(tmpl, data).Render(ctx, w); err != nil {
			return errors.Wrapf(err, "could not render template '%s'", name)
		}

		return nil
	})
}
