package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	punt "github.com/maartenvanvliet/punt"
	"github.com/maartenvanvliet/punt/dsl"
	"github.com/maartenvanvliet/punt/middleware"
)

func userParser() punt.Parser[map[string]any] {
	return dsl.OfMap(
		dsl.Field("name", dsl.Get("name", dsl.String())),
		dsl.Field("age", dsl.Get("age", dsl.Integer())),
	)
}

func TestValidateJSON_DecodesIntoContext(t *testing.T) {
	var seen map[string]any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, ok := middleware.DecodedFromContext[map[string]any](r.Context())
		require.True(t, ok, "decoded body must be in the context")
		seen = v
		w.WriteHeader(http.StatusNoContent)
	})

	h := middleware.ValidateJSON(userParser(), next)
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"alice","age":41}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "alice", seen["name"])
	require.Equal(t, int64(41), seen["age"])
}

func TestValidateJSON_ValidationFailureAnswers400(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("next must not run on invalid input")
	})

	h := middleware.ValidateJSON(userParser(), next)
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"age":41}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, gojson.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body["error"], "missing field")
}

func TestValidateJSON_DuplicateKeyAnswers400(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("next must not run on a duplicate-key body")
	})

	h := middleware.ValidateJSON(userParser(), next)
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"a","name":"b","age":1}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, gojson.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body["error"], "duplicate key")
}

func TestValidateJSON_MalformedBodyAnswers400(t *testing.T) {
	h := middleware.ValidateJSON(userParser(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("next must not run on malformed JSON")
	}))
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecodedContext_TypedKeys(t *testing.T) {
	ctx := context.Background()
	ctx = middleware.ContextWithDecoded(ctx, "a string")
	ctx = middleware.ContextWithDecoded(ctx, 42)

	s, ok := middleware.DecodedFromContext[string](ctx)
	require.True(t, ok)
	require.Equal(t, "a string", s)

	n, ok := middleware.DecodedFromContext[int](ctx)
	require.True(t, ok)
	require.Equal(t, 42, n)

	_, ok = middleware.DecodedFromContext[bool](ctx)
	require.False(t, ok)
}
