package seed

import (
	"fmt"
	"text/tabwriter"

	"github.com/bornholm/vitrine/internal/adapter/seed"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/service"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagFile = "file"
)

var seedFiles = []string{"records.yaml", "site.yaml"}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Inspect the embedded seed data",
		Subcommands: []*cli.Command{
			{
				Name:  "dump",
				Usage: "Print an embedded seed file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    flagFile,
						Aliases: []string{"f"},
						Value:   "records.yaml",
						Usage:   fmt.Sprintf("Seed file to print (available: %v)", seedFiles),
					},
				},
				Action: func(cCtx *cli.Context) error {
					raw, err := seed.NewSource().Raw(cCtx.String(flagFile))
					if err != nil {
						return errors.Wrapf(err, "could not read seed file '%s'", cCtx.String(flagFile))
					}

					if _, err := cCtx.App.Writer.Write(raw); err != nil {
						return errors.WithStack(err)
					}

					return nil
				},
			},
			{
				Name:  "stats",
				Usage: "Print the figures computed from the seed records",
				Action: func(cCtx *cli.Context) error {
					ctx := cCtx.Context

					source := seed.NewSource()

					stats, err := service.NewStatsService(source.RecordSources()).Compute(ctx)
					if err != nil {
						return errors.WithStack(err)
					}

					w := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)

					rows := []struct {
						Label string
						Value any
					}{
						{model.KindIntern.Label(), stats.Interns},
						{"Stagiaires en poste", stats.ActiveInterns},
						{model.KindEmployee.Label(), stats.Employees},
						{"Employés en congé", stats.EmployeesOnLeave},
						{model.KindApplicant.Label(), stats.Applicants},
						{"Candidatures en cours", stats.OpenApplications},
						{model.KindNotification.Label(), stats.Notifications},
						{"Notifications non lues", stats.UnreadNotifications},
						{"Score moyen", fmt.Sprintf("%.1f", stats.AverageInternScore)},
					}

					for _, r := range rows {
						if _, err := fmt.Fprintf(w, "%s\t%v\n", r.Label, r.Value); err != nil {
							return errors.WithStack(err)
						}
					}

					return errors.WithStack(w.Flush())
				},
			},
		},
	}
}
