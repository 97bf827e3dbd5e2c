package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	DSN   string        `env:"DSN" envDefault:"vitrine.sqlite"`
	Cache DatabaseCache `envPrefix:"CACHE_"`
}

type DatabaseCache struct {
	Enabled bool          `env:"ENABLED,expand" envDefault:"true"`
	Size    int           `env:"SIZE,expand" envDefault:"512"`
	TTL     time.Duration `env:"TTL,expand" envDefault:"5m"`
}
