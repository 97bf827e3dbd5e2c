package build

// Overridden at build time with -ldflags "-X github.com/bornholm/vitrine/internal/build.ShortVersion=..."
var (
	ShortVersion = "unknown"
	LongVersion  = "unknown"
)
