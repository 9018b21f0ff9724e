package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/fieldguard/internal/catalog/entity"
	"github.com/shandysiswandi/fieldguard/internal/pkg/goerror"
)

type (
	ListCatsInput struct {
		Age   int32  `validate:"gte=0,lte=40"`
		Breed string `validate:"omitempty,oneof=persian siamese maine_coon bengal sphynx"`
		Limit int32  `validate:"gte=0,lte=100"`
	}

	ListCatsOutput struct {
		Cats []entity.Cat
	}
)

func (s *Usecase) ListCats(ctx context.Context, in ListCatsInput) (*ListCatsOutput, error) {
	ctx, span := s.startSpan(ctx, "ListCats")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	cats, err := s.repoStore.ListCats(ctx, entity.CatFilter{
		Age:   in.Age,
		Breed: in.Breed,
		Limit: in.Limit,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list cats", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListCatsOutput{Cats: cats}, nil
}
