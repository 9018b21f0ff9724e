package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/fieldguard/internal/pkg/clock"
	"github.com/shandysiswandi/fieldguard/internal/pkg/config"
	"github.com/shandysiswandi/fieldguard/internal/pkg/instrument"
	"github.com/shandysiswandi/fieldguard/internal/pkg/jwt"
	"github.com/shandysiswandi/fieldguard/internal/pkg/router"
	"github.com/shandysiswandi/fieldguard/internal/pkg/uid"
	"github.com/shandysiswandi/fieldguard/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID
	jwt       jwt.JWT

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
