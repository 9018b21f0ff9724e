package catalog

import (
	"github.com/shandysiswandi/fieldguard/internal/catalog/inbound"
	"github.com/shandysiswandi/fieldguard/internal/catalog/outbound/memory"
	"github.com/shandysiswandi/fieldguard/internal/catalog/usecase"
	"github.com/shandysiswandi/fieldguard/internal/pkg/config"
	"github.com/shandysiswandi/fieldguard/internal/pkg/instrument"
	"github.com/shandysiswandi/fieldguard/internal/pkg/jwt"
	"github.com/shandysiswandi/fieldguard/internal/pkg/router"
	"github.com/shandysiswandi/fieldguard/internal/pkg/validator"
)

type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	store := memory.NewStore(dep.Instrument, memory.Seed()...)

	uc := usecase.New(usecase.Dependency{
		RepoStore:  store,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	guards := inbound.NewGuards(inbound.GuardConfig{
		Validator:  dep.Validator,
		Verifier:   dep.JWT,
		Instrument: dep.Instrument,
		StatusCode: dep.Config.GetInt("validation.status_code"),
		Message:    dep.Config.GetString("validation.message"),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, guards)

	return nil
}
