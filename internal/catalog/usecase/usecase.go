package usecase

import (
	"context"

	"github.com/shandysiswandi/fieldguard/internal/catalog/entity"
	"github.com/shandysiswandi/fieldguard/internal/pkg/instrument"
	"github.com/shandysiswandi/fieldguard/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoStore interface {
	ListCats(ctx context.Context, f entity.CatFilter) ([]entity.Cat, error)
	GetCat(ctx context.Context, name string) (*entity.Cat, error)
	DeleteCat(ctx context.Context, name string) error
}

type Usecase struct {
	repoStore repoStore
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoStore  repoStore
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoStore: dep.RepoStore,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("catalog.usecase").Start(ctx, name)
}
