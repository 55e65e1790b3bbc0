package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarolinaS-M/FD-nonlinear-stiff/solver"
)

func get(t *testing.T, s *Server, target string) (*http.Response, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func TestIndexPage(t *testing.T) {
	s := NewServer()

	res, body := get(t, s, "/")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")

	assert.Contains(t, body, "Finite Difference Method for a Nonlinear Boundary Value Problem")
	assert.Contains(t, body, "Backward difference")
	assert.Contains(t, body, "Central difference")
	assert.Contains(t, body, "Forward difference")
	assert.Contains(t, body, "<svg")
	// Default parameter values populate the sidebar.
	assert.Contains(t, body, `name="lambda" value="7"`)
	assert.Contains(t, body, `name="n" value="200"`)
}

func TestIndexHonorsQueryParameters(t *testing.T) {
	s := NewServer()

	_, body := get(t, s, "/?lambda=3.5&n=100")
	assert.Contains(t, body, `name="lambda" value="3.5"`)
	assert.Contains(t, body, `name="n" value="100"`)
}

func TestIndexRejectsMalformedValues(t *testing.T) {
	s := NewServer()

	res, body := get(t, s, "/?lambda=abc")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "invalid lambda")
}

func TestIndexRejectsInvalidParams(t *testing.T) {
	s := NewServer()

	res, body := get(t, s, "/?n=0")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "at least 1")
}

func TestIndexNotFound(t *testing.T) {
	s := NewServer()

	res, _ := get(t, s, "/nope")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestPlotEndpoint(t *testing.T) {
	s := NewServer()

	res, body := get(t, s, "/plot.svg?lambda=10")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/svg+xml", res.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "<svg"), "body should be a bare SVG document")

	res, _ = get(t, s, "/plot.svg?t=-1")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestWithDefaults(t *testing.T) {
	p := solver.DefaultParams()
	p.Lambda = 2.0
	p.N = 75
	s := NewServer(WithDefaults(p))

	_, body := get(t, s, "/")
	assert.Contains(t, body, `name="lambda" value="2"`)
	assert.Contains(t, body, `name="n" value="75"`)
}

func TestParamsFromQuery(t *testing.T) {
	s := NewServer()

	q := url.Values{}
	q.Set("lambda", "1.5")
	q.Set("alpha", "2.5")
	q.Set("t", "2")
	q.Set("x0", "-0.25")
	q.Set("xt", "0.1")
	q.Set("n", "150")

	p, err := s.paramsFromQuery(q)
	require.NoError(t, err)
	assert.Equal(t, solver.Params{Lambda: 1.5, Alpha: 2.5, T: 2, X0: -0.25, XT: 0.1, N: 150}, p)

	// Absent keys keep the defaults.
	p, err = s.paramsFromQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, solver.DefaultParams(), p)
}
