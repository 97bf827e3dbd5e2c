package config

import "time"

type Workspace struct {
	Size int           `env:"SIZE,expand" envDefault:"1000"`
	TTL  time.Duration `env:"TTL,expand" envDefault:"2h"`
}

type Panel struct {
	MaxWidth float64 `env:"MAX_WIDTH,expand" envDefault:"380"`
	EdgeGap  float64 `env:"EDGE_GAP,expand" envDefault:"12"`
}

type Sentry struct {
	DSN         string `env:"DSN,expand"`
	Environment string `env:"ENVIRONMENT,expand" envDefault:"development"`
}
