// Package app implements the application layer for trim.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.trai.ch/trim/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/trim/internal/adapters/taskgraph" //nolint:depguard // Wired in app layer
	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports"
	"go.trai.ch/trim/internal/engine/pruner"
	"go.trai.ch/trim/internal/rules"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	factory      *taskgraph.Factory
	store        ports.ReportStore
	telemetry    ports.Telemetry
	logger       ports.Logger
	signal       detector.Signal
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	factory *taskgraph.Factory,
	store ports.ReportStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
	signal detector.Signal,
) *App {
	return &App{
		configLoader: loader,
		factory:      factory,
		store:        store,
		telemetry:    telemetry,
		logger:       logger,
		signal:       signal,
	}
}

// Options adjusts a single configuration pass. The flag overrides are nil
// when the user left the corresponding flag untouched, in which case the
// manifest value applies.
type Options struct {
	ConfigPath string
	DebugOnly  *bool
	EnableIOS  *bool
	Sync       bool
}

// Plan configures every module and returns the resulting reports without
// persisting anything.
func (a *App) Plan(ctx context.Context, opts Options) ([]domain.ModuleReport, error) {
	return a.configure(ctx, opts)
}

// Apply configures every module and persists the reports of modules whose
// disabled-task fingerprint changed. Sync sessions never persist.
func (a *App) Apply(ctx context.Context, opts Options) ([]domain.ModuleReport, error) {
	reports, err := a.configure(ctx, opts)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	changed := 0
	for i := range reports {
		if reports[i].Prune.SyncSkipped {
			continue
		}

		prior, err := a.store.Get(reports[i].Module)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read stored report")
		}
		if prior != nil && prior.Fingerprint == reports[i].Fingerprint {
			continue
		}

		reports[i].Timestamp = now
		if err := a.store.Put(reports[i]); err != nil {
			return nil, zerr.Wrap(err, "failed to persist report")
		}
		changed++
	}

	a.logger.Info(fmt.Sprintf("applied %d modules, %d changed", len(reports), changed))
	return reports, nil
}

// Namespace loads the manifest and derives the namespace for a single
// module path.
func (a *App) Namespace(configPath, modulePath string) (string, error) {
	workspace, err := a.configLoader.Load(configPath)
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}

	namespace, err := domain.DeriveNamespace(workspace.Prefix, domain.ModulePath(modulePath))
	if err != nil {
		return "", err
	}
	return namespace.String(), nil
}

// configure runs the configuration pipeline over every module of the
// workspace and returns one report per module, in manifest order.
func (a *App) configure(ctx context.Context, opts Options) ([]domain.ModuleReport, error) {
	workspace, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	flags := workspace.Flags
	if opts.DebugOnly != nil {
		flags.DebugOnly = *opts.DebugOnly
	}
	if opts.EnableIOS != nil {
		flags.EnableIOS = *opts.EnableIOS
	}

	// The mode and the sync signal are resolved once per pass; every module
	// sees the same values.
	mode := domain.ResolveMode(flags.DebugOnly, flags.EnableIOS)
	signal := detector.Resolve(a.signal, opts.Sync)

	reports := make([]domain.ModuleReport, len(workspace.Modules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, module := range workspace.Modules {
		g.Go(func() error {
			report, err := a.configureModule(gctx, module, workspace, mode, signal)
			if err != nil {
				return zerr.With(err, "module", module.Name)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Join(domain.ErrConfigurationFailed, err)
	}

	return reports, nil
}

// configureModule runs one module through namespace derivation, catalog
// seeding, and the finalize-hooked prune pass.
func (a *App) configureModule(
	ctx context.Context,
	module domain.ModuleConfig,
	workspace *domain.Workspace,
	mode domain.BuildMode,
	signal detector.Signal,
) (domain.ModuleReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.ModuleReport{}, err
	}

	_, vertex := a.telemetry.Record(ctx, fmt.Sprintf("configure %s", module.Path))

	report, err := a.buildReport(module, workspace, mode, signal)
	if err != nil {
		vertex.Complete(err)
		return domain.ModuleReport{}, err
	}

	prior, err := a.store.Get(module.Name)
	if err != nil {
		vertex.Complete(err)
		return domain.ModuleReport{}, zerr.Wrap(err, "failed to read stored report")
	}

	switch {
	case report.Prune.SyncSkipped:
		vertex.Log(domain.LogLevelInfo, "sync session, graph untouched")
		vertex.Complete(nil)
	case prior != nil && prior.Fingerprint == report.Fingerprint:
		report.Timestamp = prior.Timestamp
		vertex.Cached()
	default:
		vertex.Log(domain.LogLevelDebug, fmt.Sprintf("disabled %d of %d expanded tasks",
			len(report.Prune.Disabled), len(report.Prune.Expanded)))
		if n := len(report.Prune.Missing); n > 0 {
			vertex.Log(domain.LogLevelDebug, fmt.Sprintf("%d rule names not registered", n))
		}
		vertex.Complete(nil)
	}

	return report, nil
}

// buildReport derives the namespace, seeds the module's task graph, and
// prunes it from the finalize hook.
func (a *App) buildReport(
	module domain.ModuleConfig,
	workspace *domain.Workspace,
	mode domain.BuildMode,
	signal detector.Signal,
) (domain.ModuleReport, error) {
	namespace, err := domain.DeriveNamespace(workspace.Prefix, module.Path)
	if err != nil {
		return domain.ModuleReport{}, err
	}

	set, err := rules.For(module.Kind)
	if err != nil {
		return domain.ModuleReport{}, err
	}

	graph, err := a.factory.ForModule(module)
	if err != nil {
		return domain.ModuleReport{}, err
	}

	pr := pruner.New(signal.SyncActive)

	var prune domain.PruneReport
	err = graph.OnFinalized(func() error {
		var pruneErr error
		prune, pruneErr = pr.Prune(graph, graph, set, mode, workspace.ActiveVariant)
		return pruneErr
	})
	if err != nil {
		return domain.ModuleReport{}, err
	}

	if err := graph.Finalize(module.Variants); err != nil {
		return domain.ModuleReport{}, err
	}

	return domain.ModuleReport{
		Module:      module.Name,
		Path:        module.Path.String(),
		Namespace:   namespace.String(),
		Kind:        module.Kind,
		Mode:        mode,
		Variants:    module.Variants,
		Prune:       prune,
		Fingerprint: prune.Fingerprint(),
	}, nil
}
