package dataloader

import (
	"context"

	"generationscli/internal/config"
	"generationscli/pkg/contracts/domain"
)

// Sources lists the files of one run
type Sources struct {
	Legislature string
	Executive   string
	Population  string
	Layout      PopulationLayout
}

// SourcesFromConfig builds the run sources from resolved paths and the
// population layout of the configuration
func SourcesFromConfig(cfg *config.Config, paths *config.Paths) Sources {
	return Sources{
		Legislature: paths.LegislatureFile,
		Executive:   paths.ExecutiveFile,
		Population:  paths.PopulationFile,
		Layout:      LayoutFromConfig(cfg.Population),
	}
}

// LoadDataset reads all three inputs. The first failure aborts the load.
func (l *Loader) LoadDataset(ctx context.Context, src Sources) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	legislature, err := l.LoadLegislature(src.Legislature)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	executive, err := l.LoadExecutive(src.Executive)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	population, err := l.LoadPopulation(src.Population, src.Layout)
	if err != nil {
		return nil, err
	}

	return &domain.Dataset{
		Legislature: legislature,
		Executive:   executive,
		Population:  population,
	}, nil
}
