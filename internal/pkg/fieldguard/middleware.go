package fieldguard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/julienschmidt/httprouter"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type rejection[E any] struct {
	Message string         `json:"message"`
	Errors  []Violation[E] `json:"errors"`
}

// Middleware returns a net/http middleware that validates every request
// against reg before calling next.
//
// A rejected request never reaches next; it gets one JSON response listing
// all violations.
func Middleware[E any](reg *Registry[E], opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			outcome := Dispatch(reg, NewRequestProvider(r, o.params))
			if outcome.Proceed() {
				next.ServeHTTP(w, r)
				return
			}

			reject(o, w, r, routeOf(r), outcome.Violations())
		})
	}
}

// GinMiddleware is Middleware for gin. Path parameters come from the gin
// context.
func GinMiddleware[E any](reg *Registry[E], opts ...Option) gin.HandlerFunc {
	o := newOptions(opts)

	return func(c *gin.Context) {
		params := func(_ *http.Request, name string) (string, bool) {
			return c.Params.Get(name)
		}

		outcome := Dispatch(reg, NewRequestProvider(c.Request, params))
		if outcome.Proceed() {
			c.Next()
			return
		}

		c.Abort()
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		reject(o, c.Writer, c.Request, route, outcome.Violations())
	}
}

func reject[E any](o *options, w http.ResponseWriter, r *http.Request, route string, vs []Violation[E]) {
	ctx := r.Context()
	locators := lo.Map(vs, func(v Violation[E], _ int) string {
		return v.Locator().String()
	})

	trace.SpanFromContext(ctx).AddEvent("fieldguard.rejected", trace.WithAttributes(
		attribute.Int("fieldguard.violations", len(vs)),
		attribute.StringSlice("fieldguard.locators", locators),
	))

	if o.rejections != nil {
		for _, kind := range lo.Uniq(lo.Map(vs, func(v Violation[E], _ int) Kind { return v.Kind })) {
			o.rejections.Add(ctx, 1, metric.WithAttributes(
				attribute.String("http.route", route),
				attribute.String("fieldguard.kind", kind.String()),
			))
		}
	}

	slog.InfoContext(ctx, "request rejected by field validation",
		"method", r.Method,
		"path", route,
		"violations", len(vs),
		"locators", locators,
	)

	body, err := json.Marshal(rejection[E]{Message: o.message, Errors: vs})
	if err != nil {
		slog.ErrorContext(ctx, "fieldguard: failed to encode violations", "path", route, "error", err)
		body = []byte(`{"message":"Internal server error"}` + "\n")
		writeBody(w, body, http.StatusInternalServerError)
		return
	}

	writeBody(w, append(body, '\n'), o.statusCode)
}

func writeBody(w http.ResponseWriter, body []byte, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		slog.Error("fieldguard: failed to write response", "error", err)
	}
}

func routeOf(r *http.Request) string {
	if route := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath(); route != "" {
		return route
	}
	return r.URL.Path
}
