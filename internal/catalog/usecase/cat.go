package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/fieldguard/internal/catalog/entity"
	"github.com/shandysiswandi/fieldguard/internal/pkg/goerror"
)

type (
	GetCatInput struct {
		Name string `validate:"required,alphaspace"`
	}

	GetCatOutput struct {
		Cat entity.Cat
	}

	DeleteCatInput struct {
		Name string `validate:"required,alphaspace"`
	}
)

func (s *Usecase) GetCat(ctx context.Context, in GetCatInput) (*GetCatOutput, error) {
	ctx, span := s.startSpan(ctx, "GetCat")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	cat, err := s.repoStore.GetCat(ctx, in.Name)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "cat not found", "name", in.Name)
		return nil, goerror.NewBusiness("cat not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get cat", "name", in.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &GetCatOutput{Cat: *cat}, nil
}

func (s *Usecase) DeleteCat(ctx context.Context, in DeleteCatInput) error {
	ctx, span := s.startSpan(ctx, "DeleteCat")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoStore.DeleteCat(ctx, in.Name)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "cat not found", "name", in.Name)
		return goerror.NewBusiness("cat not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete cat", "name", in.Name, "error", err)
		return goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "cat removed from catalog", "name", in.Name)
	return nil
}
