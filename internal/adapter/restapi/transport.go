package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contactbook/pkg/ctxutil"
)

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// Middleware wraps an http.RoundTripper.
type Middleware func(http.RoundTripper) http.RoundTripper

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(rt) results in mw1(mw2(rt)), so mw1 sees the request first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.RoundTripper) http.RoundTripper {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// RequestID stamps every outgoing request with the request id carried by
// its context, generating one when the context has none.
func RequestID(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		id := ctxutil.RequestIDFromCtx(r.Context())
		if id == "" {
			id = uuid.NewString()
		}
		r = r.Clone(ctxutil.WithRequestID(r.Context(), id))
		r.Header.Set(headerRequestID, id)
		return next.RoundTrip(r)
	})
}

// Logger logs each exchange with method, path, status, duration and the
// context identifiers. Transport failures and 5xx responses log at warn.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if cmd := ctxutil.CommandFromCtx(r.Context()); cmd != "" {
				attrs = append(attrs, slog.String("command", cmd))
			}

			level := slog.LevelDebug
			switch {
			case err != nil:
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", err.Error()))
			case resp.StatusCode >= 500:
				level = slog.LevelWarn
				attrs = append(attrs, slog.Int("status", resp.StatusCode))
			default:
				attrs = append(attrs, slog.Int("status", resp.StatusCode))
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)

			return resp, err
		})
	}
}
