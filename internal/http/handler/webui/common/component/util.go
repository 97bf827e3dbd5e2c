package component

import (
	"context"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/vitrine/internal/http/context"
	"github.com/bornholm/vitrine/internal/http/url"
)

var (
	WithPath        = url.WithPath
	WithoutValues   = url.WithoutValues
	WithValuesReset = url.WithValuesReset
	WithValues      = url.WithValues
)

func BaseURL(ctx context.Context, funcs ...url.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := url.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func CurrentURL(ctx context.Context, funcs ...url.MutationFunc) templ.SafeURL {
	currentURL := httpCtx.CurrentURL(ctx)
	mutated := url.Mutate(currentURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func MatchPath(ctx context.Context, path string) bool {
	currentURL := httpCtx.CurrentURL(ctx)
	return currentURL.Path == path
}

// MatchPathPrefix reports whether the current path is below the given path.
// The admin index only matches itself.
func MatchPathPrefix(ctx context.Context, path string) bool {
	if path == "/admin/" {
		return MatchPath(ctx, path)
	}

	return strings.HasPrefix(httpCtx.CurrentURL(ctx).Path, path)
}

// ClassNames merges class lists, later classes overriding conflicting ones.
func ClassNames(classes ...string) string {
	return twmerge.Merge(classes...)
}
