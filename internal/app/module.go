package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/fieldguard/internal/catalog"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.catalog.enabled") {
		if err := catalog.New(catalog.Dependency{
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module catalog", "error", err)
			os.Exit(1)
		}
	}
}
