package inbound

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/shandysiswandi/fieldguard/internal/catalog/entity"
	"github.com/shandysiswandi/fieldguard/internal/pkg/fieldguard"
	"github.com/shandysiswandi/fieldguard/internal/pkg/instrument"
	"github.com/shandysiswandi/fieldguard/internal/pkg/router"
)

// ScopeCatalogWrite is the token scope required to change the catalog.
const ScopeCatalogWrite = "catalog:write"

// GuardConfig configures the field validation attached to catalog routes.
type GuardConfig struct {
	// Validator backs go-playground tag rules.
	Validator fieldguard.VarValidator
	// Verifier checks bearer tokens on protected routes.
	Verifier fieldguard.TokenVerifier
	// Instrument counts rejected requests.
	Instrument instrument.Instrumentation
	// StatusCode is the status of a rejected request; anything outside
	// 400-499 means 400.
	StatusCode int
	// Message is the envelope message of a rejected request.
	Message string
}

// Guards holds one validation middleware per catalog route.
type Guards struct {
	ListCats  router.Middleware
	GetCat    router.Middleware
	DeleteCat router.Middleware
}

// NewGuards builds the registries of every catalog route.
func NewGuards(cfg GuardConfig) Guards {
	// Bodies must carry the status the middleware will actually send.
	status := cfg.StatusCode
	if status < http.StatusBadRequest || status > 499 {
		status = http.StatusBadRequest
	}

	opts := []fieldguard.Option{
		fieldguard.WithStatusCode(status),
		fieldguard.WithMessage(cfg.Message),
		fieldguard.WithInstrument(cfg.Instrument),
	}
	lift := func(v fieldguard.Validator[string]) fieldguard.Validator[entity.FieldError] {
		return fieldguard.Map(v, func(_, msg string) entity.FieldError {
			return entity.FieldError{StatusCode: status, Message: msg}
		})
	}

	listCats := fieldguard.NewBuilder[entity.FieldError]().
		Add(fieldguard.QueryParam("age"), lift(fieldguard.Integer(32))).
		Add(fieldguard.QueryParam("breed"), lift(fieldguard.OneOf(entity.Breeds...))).
		Add(fieldguard.QueryParam("limit"), lift(fieldguard.Integer(32))).
		Build()

	getCat := fieldguard.NewBuilder[entity.FieldError]().
		Add(fieldguard.Param("name"), lift(fieldguard.Tag(cfg.Validator, "alpha"))).
		AddFunc(fieldguard.Header("X-Custom-Header"), customHeaderNumber(status)).
		Add(fieldguard.QueryParam("test"), lift(fieldguard.Bool())).
		AddChain(fieldguard.Cookie("session"),
			lift(fieldguard.Required()),
			lift(fieldguard.MaxLength(20)),
		).
		Build()

	deleteCat := fieldguard.NewBuilder[entity.FieldError]().
		Add(fieldguard.Header("Authorization"), lift(fieldguard.Required())).
		Add(fieldguard.Header("Authorization"), lift(fieldguard.Bearer(cfg.Verifier, ScopeCatalogWrite))).
		Add(fieldguard.Param("name"), lift(fieldguard.Tag(cfg.Validator, "alpha"))).
		Build()

	return Guards{
		ListCats:  fieldguard.Middleware(listCats, opts...),
		GetCat:    fieldguard.Middleware(getCat, opts...),
		DeleteCat: fieldguard.Middleware(deleteCat, opts...),
	}
}

func customHeaderNumber(status int) func(string, fieldguard.Value) (entity.FieldError, bool) {
	return func(name string, value fieldguard.Value) (entity.FieldError, bool) {
		v, ok := value.Get()
		if !ok {
			return entity.FieldError{}, true
		}
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			return entity.FieldError{
				StatusCode: status,
				Message:    fmt.Sprintf("header '%s' = '%s' is not a valid number", name, v),
			}, false
		}
		return entity.FieldError{}, true
	}
}
