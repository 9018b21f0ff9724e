package fieldguard

import (
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/fieldguard/internal/pkg/instrument"
	"go.opentelemetry.io/otel/metric"
)

// DefaultMessage is the envelope message of a rejected request.
const DefaultMessage = "Validation error"

type options struct {
	statusCode int
	message    string
	params     PathParams
	rejections metric.Int64Counter
}

// Option configures Middleware and GinMiddleware.
type Option func(*options)

// WithStatusCode sets the status of a rejected request. Only client error
// codes (400-499) are accepted; anything else keeps the default 400.
func WithStatusCode(code int) Option {
	return func(o *options) {
		if code < http.StatusBadRequest || code > 499 {
			slog.Warn("fieldguard: ignoring non client error status code", "status", code)
			return
		}
		o.statusCode = code
	}
}

// WithMessage sets the envelope message of a rejected request.
func WithMessage(msg string) Option {
	return func(o *options) {
		if msg != "" {
			o.message = msg
		}
	}
}

// WithPathParams sets how Param locators are resolved. It has no effect on
// GinMiddleware, which always reads gin's own parameters.
func WithPathParams(params PathParams) Option {
	return func(o *options) {
		if params != nil {
			o.params = params
		}
	}
}

// WithInstrument counts rejected requests on the "fieldguard.rejections" metric.
func WithInstrument(ins instrument.Instrumentation) Option {
	return func(o *options) {
		if ins == nil {
			return
		}

		counter, err := ins.Meter("fieldguard").Int64Counter(
			"fieldguard.rejections",
			metric.WithDescription("Number of requests rejected by field validation, per locator kind"),
		)
		if err != nil {
			slog.Error("failed to create fieldguard rejection counter", "error", err)
			return
		}
		o.rejections = counter
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		statusCode: http.StatusBadRequest,
		message:    DefaultMessage,
		params:     HTTPRouterParams,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
