package fieldguard

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/mux"
	"github.com/julienschmidt/httprouter"
)

// PathParams resolves a path parameter matched by the router.
type PathParams func(r *http.Request, name string) (string, bool)

// HTTPRouterParams reads parameters stored in the request context by
// julienschmidt/httprouter. It is the default resolver.
func HTTPRouterParams(r *http.Request, name string) (string, bool) {
	for _, p := range httprouter.ParamsFromContext(r.Context()) {
		if p.Key == name {
			return p.Value, true
		}
	}
	return "", false
}

// ChiParams reads parameters from the go-chi route context.
func ChiParams(r *http.Request, name string) (string, bool) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "", false
	}

	keys := rctx.URLParams.Keys
	for i := len(keys) - 1; i >= 0; i-- {
		if keys[i] == name && i < len(rctx.URLParams.Values) {
			return rctx.URLParams.Values[i], true
		}
	}
	return "", false
}

// MuxParams reads route variables set by gorilla/mux.
func MuxParams(r *http.Request, name string) (string, bool) {
	v, ok := mux.Vars(r)[name]
	return v, ok
}

// RequestProvider resolves field values from an *http.Request.
//
// It is request scoped: the query string is parsed at most once.
type RequestProvider struct {
	req    *http.Request
	params PathParams
	query  url.Values
}

// NewRequestProvider returns a Provider for r. A nil params falls back to
// HTTPRouterParams.
func NewRequestProvider(r *http.Request, params PathParams) *RequestProvider {
	if params == nil {
		params = HTTPRouterParams
	}
	return &RequestProvider{req: r, params: params}
}

// Lookup implements Provider.
func (p *RequestProvider) Lookup(loc Locator) Value {
	switch loc.Kind() {
	case KindParam:
		if v, ok := p.params(p.req, loc.Name()); ok {
			return Present(v)
		}
	case KindQuery:
		if p.query == nil {
			// Malformed pairs are dropped; the rest of the query stays usable.
			p.query = p.req.URL.Query()
		}
		if vs, ok := p.query[loc.Name()]; ok && len(vs) > 0 {
			return Present(vs[0])
		}
	case KindCookie:
		if c, err := p.req.Cookie(loc.Name()); err == nil {
			return Present(c.Value)
		}
	case KindHeader:
		if vs := p.req.Header.Values(loc.Name()); len(vs) > 0 {
			return Present(vs[0])
		}
	}

	return Absent()
}
