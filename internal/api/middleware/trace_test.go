package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/subjuntivo-api/internal/api/shared"
	"github.com/lmoreno/subjuntivo-api/internal/platform/logger"
)

func TestTraceMiddlewareAttachesTraceIDAndLogger(t *testing.T) {
	t.Parallel()

	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	var gotTraceID string
	var gotLogger *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = shared.GetTraceID(r.Context())
		gotLogger = logger.FromContextOrDefault(r.Context(), fallback)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
	w := httptest.NewRecorder()
	TraceMiddleware(next).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, gotTraceID, 32)
	// The request-scoped logger takes precedence over the component fallback.
	require.NotNil(t, gotLogger)
	assert.NotSame(t, fallback, gotLogger)
}
