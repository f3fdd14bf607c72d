package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	testCases := map[string]string{
		"/":                 "root",
		"":                  "root",
		"/payments":         "payments",
		"/payments/rebind":  "payments",
		"/demos/procedural": "demos",
	}
	for in, want := range testCases {
		assert.Equal(t, want, NormalizePath(in), in)
	}
}

func TestMiddlewareCountsRequests(t *testing.T) {
	e := echo.New()
	e.Use(Middleware)
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusTeapot)
	})

	counter := RequestTotal.WithLabelValues(http.MethodGet, "health", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMiddlewareRecordsHandlerErrors(t *testing.T) {
	e := echo.New()
	e.Use(Middleware)
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "boom")
	})

	counter := RequestTotal.WithLabelValues(http.MethodGet, "boom", "409")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
