package url

import (
	"net/url"
	"path"
	"strings"
)

type MutationFunc func(u *url.URL)

// Mutate returns a mutated copy of the given url.
func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	var mutated url.URL
	if u != nil {
		mutated = *u
	}

	for _, fn := range funcs {
		fn(&mutated)
	}

	return &mutated
}

// WithPath joins the given paths to the url path. A trailing slash on the
// last element is preserved.
func WithPath(paths ...string) MutationFunc {
	return func(u *url.URL) {
		if len(paths) == 0 {
			return
		}

		joined := path.Join(append([]string{"/", u.Path}, paths...)...)

		if strings.HasSuffix(paths[len(paths)-1], "/") && !strings.HasSuffix(joined, "/") {
			joined += "/"
		}

		u.Path = joined
	}
}

// WithValues sets query values from key/value pairs.
func WithValues(kv ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()

		for i := 0; i+1 < len(kv); i += 2 {
			query.Set(kv[i], kv[i+1])
		}

		u.RawQuery = query.Encode()
	}
}

func WithoutValues(keys ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()

		for _, k := range keys {
			query.Del(k)
		}

		u.RawQuery = query.Encode()
	}
}

func WithValuesReset() MutationFunc {
	return func(u *url.URL) {
		u.RawQuery = ""
	}
}
