package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/team-lock/internal/logger"
)

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{name: "reuses caller id", header: "trace-abc-123", wantReuse: true},
		{name: "generates when missing", header: ""},
		{name: "replaces id with spaces", header: "two words"},
		{name: "replaces overlong id", header: strings.Repeat("x", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.NotNil(t, zerolog.Ctx(r.Context()))
			})

			req := httptest.NewRequest(http.MethodGet, "/teams/alpha/security", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			require.True(t, called)
			got := rec.Header().Get(traceIDHeader)
			if tt.wantReuse {
				assert.Equal(t, tt.header, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "ожидался сгенерированный UUID")
		})
	}
}

// ---- withLogging ----

func TestWithLogging_WritesAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging)
	router.Patch("/teams/{slug}/security", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("nope"))
	})

	req := httptest.NewRequest(http.MethodPatch, "/teams/alpha/security", strings.NewReader(`{"lockEnabled":true}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "PATCH", entry["method"])
	assert.Equal(t, "/teams/{slug}/security", entry["route"])
	assert.Equal(t, "/teams/alpha/security", entry["uri"])
	assert.Equal(t, float64(http.StatusForbidden), entry["status"])
	assert.Equal(t, float64(4), entry["size"])
	assert.NotEmpty(t, entry["trace_id"])
	// тело запроса в лог не попадает
	assert.NotContains(t, buf.String(), "lockEnabled")
}

func TestAccessLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLevel(http.StatusOK))
	assert.Equal(t, zerolog.WarnLevel, accessLevel(http.StatusConflict))
	assert.Equal(t, zerolog.ErrorLevel, accessLevel(http.StatusInternalServerError))
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	_, err := rw.Write([]byte("abc"))
	require.NoError(t, err)
	rw.WriteHeader(http.StatusTeapot)
	_, err = rw.Write([]byte("de"))
	require.NoError(t, err)

	// неявный 200, повторный WriteHeader игнорируется
	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, rw.size)
}

// ---- withGZip ----

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(append([]byte("got:"), body...))
	})

	tests := []struct {
		name           string
		acceptEncoding string
		gzipRequest    bool
		wantCompressed bool
	}{
		{name: "plain", acceptEncoding: ""},
		{name: "compressed response", acceptEncoding: "deflate, gzip", wantCompressed: true},
		{name: "compressed request", gzipRequest: true},
		{name: "both directions", acceptEncoding: "gzip", gzipRequest: true, wantCompressed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := io.Reader(strings.NewReader(`{"lockEnabled":true}`))
			if tt.gzipRequest {
				body = bytes.NewReader(gzipBytes(t, `{"lockEnabled":true}`))
			}

			req := httptest.NewRequest(http.MethodPatch, "/teams/alpha/security", body)
			if tt.gzipRequest {
				req.Header.Set("Content-Encoding", "gzip")
			}
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			withGZip(echo).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			got := rec.Body.Bytes()
			if tt.wantCompressed {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				zr, err := gzip.NewReader(bytes.NewReader(got))
				require.NoError(t, err)
				got, err = io.ReadAll(zr)
				require.NoError(t, err)
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
			}
			assert.Equal(t, `got:{"lockEnabled":true}`, string(got))
		})
	}
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"InvalidRequestError","message":"invalid gzip data"}`, rec.Body.String())
}

// ---- CheckHTTPMethod ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/teams", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) })
	router.Get("/teams/{slug}/security", func(w http.ResponseWriter, r *http.Request) {})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodPost, "/teams", http.StatusCreated},
		{http.MethodGet, "/teams", http.StatusNotFound},
		{http.MethodDelete, "/teams/alpha/security", http.StatusNotFound},
		{http.MethodGet, "/teams/alpha/security", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
