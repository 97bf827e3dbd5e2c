package panel

import (
	"encoding/json"

	"github.com/bornholm/vitrine/internal/command/common"
	"github.com/bornholm/vitrine/internal/core/panel"
	"github.com/bornholm/vitrine/internal/http/handler/api"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagTop      = "top"
	flagLeft     = "left"
	flagRight    = "right"
	flagBottom   = "bottom"
	flagViewport = "viewport"
	flagMaxWidth = "max-width"
	flagEdgeGap  = "edge-gap"
	flagRemote   = "remote"
)

func Command() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.Float64Flag{Name: flagTop, Usage: "Trigger top coordinate"},
		&cli.Float64Flag{Name: flagLeft, Usage: "Trigger left coordinate", Required: true},
		&cli.Float64Flag{Name: flagRight, Usage: "Trigger right coordinate", Required: true},
		&cli.Float64Flag{Name: flagBottom, Usage: "Trigger bottom coordinate"},
		&cli.Float64Flag{Name: flagViewport, Usage: "Viewport width", Required: true},
		&cli.Float64Flag{Name: flagMaxWidth, Value: 380, Usage: "Panel maximum width"},
		&cli.Float64Flag{Name: flagEdgeGap, Value: 12, Usage: "Gap kept between the panel and the viewport edges"},
		&cli.BoolFlag{Name: flagRemote, Usage: "Ask the server instead of computing locally"},
	)

	return &cli.Command{
		Name:  "panel",
		Usage: "Notification panel utilities",
		Subcommands: []*cli.Command{
			{
				Name:   "origin",
				Usage:  "Compute where the notification panel opens for a trigger",
				Flags:  flags,
				Before: common.LoadFlagsFromConfig(flags),
				Action: func(cCtx *cli.Context) error {
					trigger := panel.Rect{
						Top:    cCtx.Float64(flagTop),
						Left:   cCtx.Float64(flagLeft),
						Right:  cCtx.Float64(flagRight),
						Bottom: cCtx.Float64(flagBottom),
					}

					viewport := cCtx.Float64(flagViewport)
					if viewport <= 0 {
						return errors.Errorf("viewport width must be positive, got %v", viewport)
					}

					var origin any

					if cCtx.Bool(flagRemote) {
						client, err := common.GetClient(cCtx)
						if err != nil {
							return errors.WithStack(err)
						}

						remote, err := client.ComputePanelOrigin(cCtx.Context, api.ComputePanelOriginRequest{
							Trigger:       trigger,
							ViewportWidth: viewport,
							MaxWidth:      cCtx.Float64(flagMaxWidth),
							EdgeGap:       cCtx.Float64(flagEdgeGap),
						})
						if err != nil {
							return errors.WithStack(err)
						}

						origin = remote
					} else {
						origin = panel.ComputeOrigin(trigger, viewport, cCtx.Float64(flagMaxWidth), cCtx.Float64(flagEdgeGap))
					}

					encoder := json.NewEncoder(cCtx.App.Writer)
					encoder.SetIndent("", "  ")

					return errors.WithStack(encoder.Encode(origin))
				},
			},
		},
	}
}
