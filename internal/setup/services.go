package setup

import (
	"context"

	"github.com/bornholm/vitrine/internal/adapter/seed"
	"github.com/bornholm/vitrine/internal/config"
	"github.com/bornholm/vitrine/internal/core/service"
)

var getSeedSource = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*seed.Source, error) {
	return seed.NewSource(), nil
})

var getWorkspaceRegistryFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.WorkspaceRegistry, error) {
	source, err := getSeedSource(ctx, conf)
	if err != nil {
		return nil, err
	}

	return service.NewWorkspaceRegistry(source.RecordSources(), conf.Workspace.Size, conf.Workspace.TTL), nil
})

var getStatsServiceFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.StatsService, error) {
	source, err := getSeedSource(ctx, conf)
	if err != nil {
		return nil, err
	}

	return service.NewStatsService(source.RecordSources()), nil
})
