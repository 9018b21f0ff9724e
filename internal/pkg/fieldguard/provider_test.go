package fieldguard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/mux"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRequestProvider_Lookup(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/cats/mozart?age=3&age=4&empty=&flag", nil)
	r.Header.Add("X-Custom-Header", "12")
	r.Header.Add("X-Custom-Header", "13")
	r.AddCookie(&http.Cookie{Name: "session", Value: "abc"})
	r = r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, httprouter.Params{
		{Key: "name", Value: "mozart"},
	}))

	p := NewRequestProvider(r, nil)

	tests := []struct {
		name string
		loc  Locator
		want Value
	}{
		{name: "param", loc: Param("name"), want: Present("mozart")},
		{name: "missing param", loc: Param("id"), want: Absent()},
		{name: "first query value wins", loc: QueryParam("age"), want: Present("3")},
		{name: "empty query value is present", loc: QueryParam("empty"), want: Present("")},
		{name: "bare query key is present", loc: QueryParam("flag"), want: Present("")},
		{name: "missing query", loc: QueryParam("limit"), want: Absent()},
		{name: "cookie", loc: Cookie("session"), want: Present("abc")},
		{name: "missing cookie", loc: Cookie("other"), want: Absent()},
		{name: "header any case", loc: Header("x-custom-header"), want: Present("12")},
		{name: "missing header", loc: Header("Authorization"), want: Absent()},
		{name: "unknown kind", loc: Locator{name: "x"}, want: Absent()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Lookup(tt.loc))
		})
	}
}

func TestRequestProvider_MalformedQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/cats", nil)
	r.URL.RawQuery = "bad=%zz&age=5"

	p := NewRequestProvider(r, nil)

	assert.Equal(t, Present("5"), p.Lookup(QueryParam("age")))
	assert.Equal(t, Absent(), p.Lookup(QueryParam("bad")))
}

func TestPathParams(t *testing.T) {
	t.Run("chi", func(t *testing.T) {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("name", "outer")
		rctx.URLParams.Add("name", "inner")
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

		v, ok := ChiParams(r, "name")
		assert.True(t, ok)
		assert.Equal(t, "inner", v)

		_, ok = ChiParams(r, "id")
		assert.False(t, ok)

		_, ok = ChiParams(httptest.NewRequest(http.MethodGet, "/", nil), "name")
		assert.False(t, ok)
	})

	t.Run("gorilla mux", func(t *testing.T) {
		r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"name": "felix"})

		p := NewRequestProvider(r, MuxParams)

		assert.Equal(t, Present("felix"), p.Lookup(Param("name")))
		assert.Equal(t, Absent(), p.Lookup(Param("age")))
	})

	t.Run("httprouter without params", func(t *testing.T) {
		_, ok := HTTPRouterParams(httptest.NewRequest(http.MethodGet, "/", nil), "name")
		assert.False(t, ok)
	})
}
