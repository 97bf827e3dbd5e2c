package records

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/bornholm/vitrine/internal/command/common"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagKind  = "kind"
	flagQuery = "query"
	flagPage  = "page"
	flagLimit = "limit"
	flagJSON  = "json"
)

func Command() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringFlag{
			Name:     flagKind,
			Aliases:  []string{"k"},
			Usage:    fmt.Sprintf("Record kind (available: %v)", model.Kinds),
			Required: true,
		},
		&cli.StringFlag{
			Name:    flagQuery,
			Aliases: []string{"q"},
			Usage:   "Case insensitive search term",
		},
		&cli.IntFlag{
			Name:  flagPage,
			Value: 0,
			Usage: "Page to retrieve, starting at 0",
		},
		&cli.IntFlag{
			Name:  flagLimit,
			Value: 20,
			Usage: "Records per page",
		},
		&cli.BoolFlag{
			Name:  flagJSON,
			Usage: "Print the raw JSON records",
		},
	)

	return &cli.Command{
		Name:  "records",
		Usage: "Query the records of a vitrine server",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List records of a kind",
				Flags:  flags,
				Before: common.LoadFlagsFromConfig(flags),
				Action: func(cCtx *cli.Context) error {
					kind := model.Kind(cCtx.String(flagKind))
					if !kind.Valid() {
						return errors.Errorf("unknown record kind '%s'", kind)
					}

					vitrine, err := common.GetClient(cCtx)
					if err != nil {
						return errors.WithStack(err)
					}

					page, err := vitrine.ListRecords(cCtx.Context, kind,
						client.WithListRecordsQuery(cCtx.String(flagQuery)),
						client.WithListRecordsPage(cCtx.Int(flagPage)),
						client.WithListRecordsLimit(cCtx.Int(flagLimit)),
					)
					if err != nil {
						return errors.WithStack(err)
					}

					if cCtx.Bool(flagJSON) {
						encoder := json.NewEncoder(cCtx.App.Writer)
						encoder.SetIndent("", "  ")
						return errors.WithStack(encoder.Encode(page))
					}

					return printRecords(cCtx, page)
				},
			},
		},
	}
}

type recordHeader struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Email string `json:"email"`
}

func printRecords(cCtx *cli.Context, page *client.RecordsPage) error {
	w := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(w, "ID\tNAME\tEMAIL"); err != nil {
		return errors.WithStack(err)
	}

	for _, raw := range page.Records {
		var header recordHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return errors.WithStack(err)
		}

		name := header.Name
		if name == "" {
			name = header.Title
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", header.ID, name, header.Email); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := w.Flush(); err != nil {
		return errors.WithStack(err)
	}

	_, err := fmt.Fprintf(cCtx.App.Writer, "\n%d record(s) of %d, page %d\n", len(page.Records), page.Total, page.Page)

	return errors.WithStack(err)
}
