package inbound

import "net/http"

type CatResponse struct {
	Name  string `json:"name"`
	Age   int32  `json:"age"`
	Breed string `json:"breed"`
}

type ListCatsResponse struct {
	Cats []CatResponse `json:"cats"`
}

func (r ListCatsResponse) Meta() map[string]any {
	return map[string]any{"total": len(r.Cats)}
}

type GetCatResponse struct {
	Cat CatResponse `json:"cat"`
}

type DeleteCatResponse struct{}

func (DeleteCatResponse) StatusCode() int {
	return http.StatusNoContent
}
