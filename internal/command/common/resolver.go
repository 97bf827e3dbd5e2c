package common

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"gopkg.in/yaml.v3"
)

func NewResolverSourceFromFlagFunc(flag string) func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
	return func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
		if path := cCtx.String(flag); path != "" {
			return NewFileInputSource(path)
		}

		return altsrc.NewMapInputSource("", map[any]any{}), nil
	}
}

// NewFileInputSource reads flag values from a YAML (or JSON) file.
func NewFileInputSource(path string) (altsrc.InputSourceContext, error) {
	ext := filepath.Ext(path)
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return nil, errors.Errorf("no parser associated with '%s' file extension", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read '%s'", path)
	}

	values := map[any]any{}

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s'", path)
	}

	return altsrc.NewMapInputSource(path, values), nil
}
