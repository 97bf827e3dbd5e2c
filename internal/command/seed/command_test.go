package seed

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func runSeedCommand(t *testing.T, args ...string) string {
	var buff bytes.Buffer

	app := &cli.App{
		Name:     "vitrine",
		Writer:   &buff,
		Commands: []*cli.Command{Command()},
	}

	if err := app.RunContext(context.Background(), append([]string{"vitrine", "seed"}, args...)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return buff.String()
}

func TestDumpCommand(t *testing.T) {
	output := runSeedCommand(t, "dump", "--file", "site.yaml")

	if !strings.Contains(output, "Datawise") {
		t.Errorf("expected site.yaml to mention the company name, got %s", output)
	}
}

func TestStatsCommand(t *testing.T) {
	output := runSeedCommand(t, "stats")

	for _, label := range []string{"Stagiaires", "Employés", "Score moyen"} {
		if !strings.Contains(output, label) {
			t.Errorf("expected output to contain '%s', got %s", label, output)
		}
	}
}
