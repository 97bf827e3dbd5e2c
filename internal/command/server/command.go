package server

import (
	"github.com/bornholm/vitrine/internal/config"
	"github.com/bornholm/vitrine/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Run the vitrine HTTP server, configured with VITRINE_* environment variables",
		Action: func(cCtx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			if err := setup.RunServer(cCtx.Context, conf); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
