package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/fieldguard/internal/catalog/entity"
	"github.com/shandysiswandi/fieldguard/internal/catalog/usecase"
	"github.com/shandysiswandi/fieldguard/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the cat catalog.
//
// Query, path, header and cookie fields are checked by the route guards
// before these handlers run.
type HTTPEndpoint struct {
	uc uc
}

// ListCats returns the catalog, optionally filtered.
// @Summary List cats
// @Tags Catalog
// @Produce json
// @Param age query int false "Exact age"
// @Param breed query string false "Breed"
// @Param limit query int false "Maximum number of cats"
// @Success 200 {object} router.successResponse{data=ListCatsResponse} "Cats"
// @Failure 400 "Invalid query parameter"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/cats [get]
func (h *HTTPEndpoint) ListCats(r *router.Request) (any, error) {
	age, err := r.GetQueryInt32("age")
	if err != nil {
		return nil, err
	}

	limit, err := r.GetQueryInt32("limit")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ListCats(r.Context(), usecase.ListCatsInput{
		Age:   age,
		Breed: r.GetQuery("breed"),
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return ListCatsResponse{
		Cats: lo.Map(resp.Cats, func(c entity.Cat, _ int) CatResponse {
			return toCatResponse(c)
		}),
	}, nil
}

// GetCat returns one cat by name.
// @Summary Get cat
// @Tags Catalog
// @Produce json
// @Param name path string true "Cat name"
// @Param test query bool false "Flag"
// @Param X-Custom-Header header int false "Numeric header"
// @Success 200 {object} router.successResponse{data=GetCatResponse} "Cat"
// @Failure 400 "Invalid request field"
// @Failure 404 {object} router.errorResponse "Cat not found"
// @Router /api/v1/cats/{name} [get]
func (h *HTTPEndpoint) GetCat(r *router.Request) (any, error) {
	resp, err := h.uc.GetCat(r.Context(), usecase.GetCatInput{Name: r.GetParam("name")})
	if err != nil {
		return nil, err
	}

	return GetCatResponse{Cat: toCatResponse(resp.Cat)}, nil
}

// DeleteCat removes a cat from the catalog.
// @Summary Delete cat
// @Tags Catalog
// @Security BearerAuth
// @Param name path string true "Cat name"
// @Success 204 "No Content"
// @Failure 400 "Missing or invalid bearer token"
// @Failure 404 {object} router.errorResponse "Cat not found"
// @Router /api/v1/cats/{name} [delete]
func (h *HTTPEndpoint) DeleteCat(r *router.Request) (any, error) {
	if err := h.uc.DeleteCat(r.Context(), usecase.DeleteCatInput{Name: r.GetParam("name")}); err != nil {
		return nil, err
	}

	return DeleteCatResponse{}, nil
}

func toCatResponse(c entity.Cat) CatResponse {
	return CatResponse{Name: c.Name, Age: c.Age, Breed: c.Breed}
}
