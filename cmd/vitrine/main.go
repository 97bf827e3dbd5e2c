package main

import (
	"github.com/bornholm/vitrine/internal/command"
	"github.com/bornholm/vitrine/internal/command/panel"
	"github.com/bornholm/vitrine/internal/command/records"
	"github.com/bornholm/vitrine/internal/command/seed"
	"github.com/bornholm/vitrine/internal/command/server"
)

func main() {
	command.Main(
		"vitrine", "showcase website and back-office demo",
		server.Command(),
		seed.Command(),
		panel.Command(),
		records.Command(),
	)
}
