package common

import (
	"net/url"

	"github.com/bornholm/vitrine/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramServer = "server"
	paramConfig = "config"
)

var (
	flagServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:3003",
		EnvVars: []string{"VITRINE_CLI_SERVER"},
		Usage:   "Vitrine server base url",
	})
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
	}, flags...)
}

// LoadFlagsFromConfig fills the unset flags with the values of the YAML
// file given by the global config flag.
func LoadFlagsFromConfig(flags []cli.Flag) cli.BeforeFunc {
	return altsrc.InitInputSourceWithContext(flags, NewResolverSourceFromFlagFunc(paramConfig))
}

func GetClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse server url '%s'", rawServerURL)
	}

	return client.New(
		client.WithBaseURL(serverURL),
	), nil
}
