package app

import (
	"fmt"

	"github.com/nfrund/portview/internal/config"
	"github.com/nfrund/portview/internal/dataset"
	"github.com/nfrund/portview/internal/pubsub"
	"github.com/nfrund/portview/internal/rendering"
	"github.com/nfrund/portview/internal/topicmgr"
	"github.com/nfrund/portview/internal/workspace"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// NewInjector builds the injector holding the core services shared by all
// modules. Services are created lazily on first use.
func NewInjector(cfg *config.Config, fs afero.Fs) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fs)

	do.Provide(i, func(i do.Injector) (dataset.Data, error) {
		cfg := do.MustInvoke[*config.Config](i)
		data, err := dataset.Open(do.MustInvoke[afero.Fs](i), cfg.UsersFile, cfg.StocksFile)
		if err != nil {
			return dataset.Data{}, fmt.Errorf("failed to load dataset: %w", err)
		}
		return data, nil
	})

	do.Provide(i, func(i do.Injector) (*topicmgr.Registry, error) {
		return topicmgr.NewRegistry(), nil
	})

	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
	do.Provide(i, func(i do.Injector) (pubsub.Publisher, error) {
		return do.MustInvoke[*pubsub.WatermillBridge](i), nil
	})
	do.Provide(i, func(i do.Injector) (pubsub.Subscriber, error) {
		return do.MustInvoke[*pubsub.WatermillBridge](i), nil
	})

	do.Provide(i, func(i do.Injector) (*workspace.Manager, error) {
		cfg := do.MustInvoke[*config.Config](i)
		data, err := do.Invoke[dataset.Data](i)
		if err != nil {
			return nil, err
		}
		return workspace.NewManager(data,
			workspace.WithPublisher(do.MustInvoke[pubsub.Publisher](i)),
			workspace.WithIdleTimeout(cfg.SessionIdleTimeout),
		), nil
	})

	do.Provide(i, func(i do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	return i
}
