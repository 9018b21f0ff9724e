package catalog

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/fieldguard/internal/pkg/clock"
	"github.com/shandysiswandi/fieldguard/internal/pkg/config"
	"github.com/shandysiswandi/fieldguard/internal/pkg/instrument"
	"github.com/shandysiswandi/fieldguard/internal/pkg/jwt"
	"github.com/shandysiswandi/fieldguard/internal/pkg/router"
	"github.com/shandysiswandi/fieldguard/internal/pkg/uid"
	"github.com/shandysiswandi/fieldguard/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServer struct {
	handler http.Handler
	jwt     jwt.JWT
}

func newCatalogServer(t *testing.T, yaml string) catalogServer {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	tokens, err := jwt.NewHS512(jwt.Config{
		Secret:     []byte(strings.Repeat("c", 64)),
		Issuer:     "fieldguard",
		Audiences:  []string{"fieldguard-api"},
		TTLMinutes: time.Minute,
		Clock:      clock.New(),
		UUID:       uid.NewUUID(),
	})
	require.NoError(t, err)

	ins := instrument.NewNoop()
	r := router.NewRouter(router.Config{Config: cfg, UUID: uid.NewUUID(), Instrument: ins})

	require.NoError(t, New(Dependency{
		Router:     r,
		Config:     cfg,
		Instrument: ins,
		Validator:  v,
		JWT:        tokens,
	}))

	return catalogServer{handler: r, jwt: tokens}
}

func (s catalogServer) do(method, target string, setup func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func withSession(r *http.Request) {
	r.AddCookie(&http.Cookie{Name: "session", Value: "abc"})
}

func TestNew_InvalidDependency(t *testing.T) {
	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	assert.Error(t, New(Dependency{Validator: v}))
}

func TestCatalog_ListCats(t *testing.T) {
	s := newCatalogServer(t, "validation:\n  status_code: 400\n")

	t.Run("ok", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/v1/cats?age=4&limit=1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"message": "request has been successfully",
			"data": {"cats": [{"name":"Felix","age":4,"breed":"maine_coon"}]},
			"meta": {"total": 1}
		}`, rec.Body.String())
	})

	t.Run("every invalid query is reported", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/v1/cats?age=notanumber&breed=lion&limit=x", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{
			"message": "Validation error",
			"errors": [
				{"locator_kind":"query","locator_name":"age","error":{"status_code":400,"message":"field 'age' = 'notanumber' is not a valid number"}},
				{"locator_kind":"query","locator_name":"breed","error":{"status_code":400,"message":"field 'breed' = 'lion' must be one of [persian siamese maine_coon bengal sphynx]"}},
				{"locator_kind":"query","locator_name":"limit","error":{"status_code":400,"message":"field 'limit' = 'x' is not a valid number"}}
			]
		}`, rec.Body.String())
	})

	t.Run("values overflowing int32 are reported with the rest", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/v1/cats?age=3000000000&limit=notanumber", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{
			"message": "Validation error",
			"errors": [
				{"locator_kind":"query","locator_name":"age","error":{"status_code":400,"message":"field 'age' = '3000000000' is not a valid number"}},
				{"locator_kind":"query","locator_name":"limit","error":{"status_code":400,"message":"field 'limit' = 'notanumber' is not a valid number"}}
			]
		}`, rec.Body.String())
	})

	t.Run("guarded values still go through the usecase", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/v1/cats?age=99", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestCatalog_StatusCodeOutOfRange(t *testing.T) {
	for _, yaml := range []string{"validation:\n  status_code: 500\n", "validation:\n  status_code: 302\n", "{}\n"} {
		s := newCatalogServer(t, yaml)

		rec := s.do(http.MethodGet, "/api/v1/cats?age=x", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code, yaml)
		assert.JSONEq(t, `{
			"message": "Validation error",
			"errors": [
				{"locator_kind":"query","locator_name":"age","error":{"status_code":400,"message":"field 'age' = 'x' is not a valid number"}}
			]
		}`, rec.Body.String(), yaml)
	}
}

func TestCatalog_GetCat(t *testing.T) {
	s := newCatalogServer(t, "validation:\n  status_code: 422\n  message: \"Invalid request fields\"\n")

	t.Run("ok", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/v1/cats/mozart?test=true", func(r *http.Request) {
			withSession(r)
			r.Header.Set("X-Custom-Header", "12")
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"message": "request has been successfully",
			"data": {"cat": {"name":"Mozart","age":4,"breed":"persian"}}
		}`, rec.Body.String())
	})

	t.Run("missing session cookie", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/v1/cats/mozart", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{
			"message": "Invalid request fields",
			"errors": [
				{"locator_kind":"cookie","locator_name":"session","error":{"status_code":422,"message":"'session' is mandatory"}}
			]
		}`, rec.Body.String())
	})

	t.Run("all kinds rejected at once", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/v1/cats/m0zart?test=yes", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "session", Value: strings.Repeat("s", 21)})
			r.Header.Set("x-custom-header", "abc")
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{
			"message": "Invalid request fields",
			"errors": [
				{"locator_kind":"param","locator_name":"name","error":{"status_code":422,"message":"name can only contain alphabetic characters"}},
				{"locator_kind":"header","locator_name":"X-Custom-Header","error":{"status_code":422,"message":"header 'X-Custom-Header' = 'abc' is not a valid number"}},
				{"locator_kind":"query","locator_name":"test","error":{"status_code":422,"message":"field 'test' = 'yes' is not a valid boolean"}},
				{"locator_kind":"cookie","locator_name":"session","error":{"status_code":422,"message":"field 'session' = 'sssssssssssssssssssss' exceeds the maximum length of 20"}}
			]
		}`, rec.Body.String())
	})

	t.Run("unknown cat", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/v1/cats/garfield", withSession)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"cat not found"}`, rec.Body.String())
	})
}

func TestCatalog_DeleteCat(t *testing.T) {
	s := newCatalogServer(t, "validation:\n  status_code: 401\n")

	bearer := func(token string) func(*http.Request) {
		return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
	}

	t.Run("anonymous", func(t *testing.T) {
		rec := s.do(http.MethodDelete, "/api/v1/cats/felix", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{
			"message": "Validation error",
			"errors": [
				{"locator_kind":"header","locator_name":"Authorization","error":{"status_code":401,"message":"'Authorization' is mandatory"}}
			]
		}`, rec.Body.String())
	})

	t.Run("token without scope", func(t *testing.T) {
		token, err := s.jwt.Generate("reader")
		require.NoError(t, err)

		rec := s.do(http.MethodDelete, "/api/v1/cats/felix", bearer(token))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "lacks scope 'catalog:write'")
	})

	t.Run("deleted", func(t *testing.T) {
		token, err := s.jwt.Generate("writer", "catalog:write")
		require.NoError(t, err)

		rec := s.do(http.MethodDelete, "/api/v1/cats/felix", bearer(token))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = s.do(http.MethodDelete, "/api/v1/cats/felix", bearer(token))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
