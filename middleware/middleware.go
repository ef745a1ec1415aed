// Package middleware wires parsers into HTTP JSON boundaries.
package middleware

import (
	"context"
	"io"
	"net/http"

	gojson "github.com/goccy/go-json"

	punt "github.com/maartenvanvliet/punt"
)

// ctxKeyDecoded is a typed context key for storing a decoded body.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyDecoded[T any] struct{}

// ContextWithDecoded attaches a decoded body to the context.
func ContextWithDecoded[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyDecoded[T]{}, v)
}

// DecodedFromContext retrieves a decoded body from the context.
func DecodedFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyDecoded[T]{}).(T)
	return v, ok
}

// DecodeBody reads the request body as JSON and runs it through p.
// Duplicate object keys are rejected, the recommended default at HTTP
// boundaries.
func DecodeBody[T any](r *http.Request, p punt.Parser[T]) (T, error) {
	var zero T
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return zero, err
	}
	in, err := punt.JSONBytesStrict(data)
	if err != nil {
		return zero, err
	}
	return p.Parse(in)
}

// ErrorPayload shapes a ParseError for a JSON response body.
func ErrorPayload(pe punt.ParseError) map[string]any {
	return map[string]any{"error": pe.Error()}
}

// ValidateJSON decodes and validates the request body with p before calling
// next. Failures answer 400 with a JSON payload; the decoded value travels
// to next via ContextWithDecoded.
func ValidateJSON[T any](p punt.Parser[T], next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, err := DecodeBody(r, p)
		if err != nil {
			var body map[string]any
			if pe, ok := punt.AsParseError(err); ok {
				body = ErrorPayload(pe)
			} else {
				body = map[string]any{"error": err.Error()}
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = gojson.NewEncoder(w).Encode(body)
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithDecoded(r.Context(), v)))
	})
}
