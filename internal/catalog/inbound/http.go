package inbound

import (
	"context"

	"github.com/shandysiswandi/fieldguard/internal/catalog/usecase"
	"github.com/shandysiswandi/fieldguard/internal/pkg/router"
)

type uc interface {
	ListCats(ctx context.Context, in usecase.ListCatsInput) (*usecase.ListCatsOutput, error)
	GetCat(ctx context.Context, in usecase.GetCatInput) (*usecase.GetCatOutput, error)
	DeleteCat(ctx context.Context, in usecase.DeleteCatInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc, g Guards) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/cats", end.ListCats, g.ListCats)
	r.GET("/api/v1/cats/:name", end.GetCat, g.GetCat)
	r.DELETE("/api/v1/cats/:name", end.DeleteCat, g.DeleteCat) // need bearer token
}
