package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	accountinadapter "pustaka/internal/modules/account/adapter/in"
	accountoutadapter "pustaka/internal/modules/account/adapter/out"
	accountin "pustaka/internal/modules/account/port/in"
	accountservice "pustaka/internal/modules/account/service"
	accountusecase "pustaka/internal/modules/account/usecase"
	activityinadapter "pustaka/internal/modules/activity/adapter/in"
	activityoutadapter "pustaka/internal/modules/activity/adapter/out"
	activityin "pustaka/internal/modules/activity/port/in"
	activityservice "pustaka/internal/modules/activity/service"
	activityusecase "pustaka/internal/modules/activity/usecase"
	cataloginadapter "pustaka/internal/modules/catalog/adapter/in"
	catalogoutadapter "pustaka/internal/modules/catalog/adapter/out"
	catalogin "pustaka/internal/modules/catalog/port/in"
	catalogservice "pustaka/internal/modules/catalog/service"
	catalogusecase "pustaka/internal/modules/catalog/usecase"
	plugininadapter "pustaka/internal/modules/plugin/adapter/in"
	pluginoutadapter "pustaka/internal/modules/plugin/adapter/out"
	pluginin "pustaka/internal/modules/plugin/port/in"
	pluginservice "pustaka/internal/modules/plugin/service"
	pluginusecase "pustaka/internal/modules/plugin/usecase"
	readerinadapter "pustaka/internal/modules/reader/adapter/in"
	readeroutadapter "pustaka/internal/modules/reader/adapter/out"
	readerin "pustaka/internal/modules/reader/port/in"
	readerservice "pustaka/internal/modules/reader/service"
	readerusecase "pustaka/internal/modules/reader/usecase"
	"pustaka/internal/platform/clock"
	"pustaka/internal/platform/config"
	"pustaka/internal/platform/id"
	"pustaka/internal/platform/kv"
	"pustaka/internal/platform/telemetry"
	"pustaka/internal/platform/tx"
	uiapp "pustaka/internal/ui/app"
)

// guardHolder breaks the construction cycle between the account and
// activity modules: the activity usecase needs the admin guard, while
// the account usecase needs the activity usecase to record visits. The
// holder is handed out first and pointed at the account interactor once
// it exists.
type guardHolder struct {
	guard accountin.Guard
}

func (g *guardHolder) Require(ctx context.Context) error {
	if g.guard == nil {
		return fmt.Errorf("admin guard is not configured")
	}
	return g.guard.Require(ctx)
}

type App struct {
	CatalogCLI  cataloginadapter.CLIHandler
	ReaderCLI   readerinadapter.CLIHandler
	AccountCLI  accountinadapter.CLIHandler
	ActivityCLI activityinadapter.CLIHandler
	PluginCLI   plugininadapter.CLIHandler

	CatalogUC  catalogin.Usecase
	ReaderUC   readerin.Usecase
	AccountUC  accountin.Usecase
	ActivityUC activityin.Usecase
	PluginUC   pluginin.Usecase
}

func New(cfg config.Config) (*App, error) {
	logger := telemetry.New()
	logger.Debug("wiring modules", "library", cfg.LibraryPath, "db", cfg.DBPath)

	clk := clock.SystemClock{}
	ids := id.UUID{}
	guard := &guardHolder{}

	bookStore := catalogoutadapter.NewShelfBookStore(cfg.LibraryPath)
	bookProjector, err := catalogoutadapter.NewSQLiteBookProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new book projector: %w", err)
	}
	catalogSvc := catalogservice.NewBookService(
		clk, ids, bookStore, bookProjector,
		catalogoutadapter.NewFileBlobStore(cfg.StoragePath),
		tx.NoopManager{},
	)
	catalogUC := catalogusecase.NewInteractor(catalogSvc, guard)

	visitProjector, err := activityoutadapter.NewSQLiteVisitProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new visit projector: %w", err)
	}
	activitySvc := activityservice.NewActivityService(
		clk, ids,
		activityoutadapter.NewFileVisitStore(cfg.LibraryPath),
		visitProjector,
		activityoutadapter.NewXLSXExporter(),
	)
	activityUC := activityusecase.NewInteractor(activitySvc, catalogUC, guard)

	accountSvc := accountservice.NewAccountService(
		clk, ids,
		accountoutadapter.NewFileCredentialStore(cfg.LibraryPath),
		accountoutadapter.NewFileSessionStore(cfg.LibraryPath),
		cfg.SessionTimeout,
	)
	accountUC := accountusecase.NewInteractor(accountSvc, activityUC)
	guard.guard = accountUC

	stateStore := kv.NewFileStore(filepath.Join(cfg.LibraryPath, ".pustaka", "state"))
	readerUC := readerusecase.NewInteractor(readerservice.NewReaderService(
		readeroutadapter.NewCatalogBookAdapter(catalogUC),
		readeroutadapter.NewPDFRenderer(),
		readeroutadapter.NewKVProgressStore(stateStore, clk),
		readeroutadapter.NewKVBookmarkStore(stateStore),
	))

	pluginUC := pluginusecase.NewInteractor(
		pluginservice.NewPluginService(
			pluginoutadapter.NewFileManifestStore(cfg.LibraryPath),
			pluginoutadapter.NewGRPCHost(),
		),
		activityUC,
		guard,
		cfg.LibraryPath,
	)

	return &App{
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		ReaderCLI:   readerinadapter.NewCLIHandler(readerUC),
		AccountCLI:  accountinadapter.NewCLIHandler(accountUC),
		ActivityCLI: activityinadapter.NewCLIHandler(activityUC),
		PluginCLI:   plugininadapter.NewCLIHandler(pluginUC),

		CatalogUC:  catalogUC,
		ReaderUC:   readerUC,
		AccountUC:  accountUC,
		ActivityUC: activityUC,
		PluginUC:   pluginUC,
	}, nil
}

func RunTUI(libraryPath string, app *App) error {
	model := uiapp.NewModel(libraryPath, app.CatalogUC, app.ReaderUC, app.AccountUC, app.ActivityUC, app.PluginUC)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
