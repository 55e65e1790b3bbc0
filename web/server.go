// Package web serves the interactive comparison page: a sidebar of model
// parameters and the three-panel finite-difference figure, recomputed on
// every parameter change. The page is stateless; parameters travel in the
// query string and each request is one fresh kernel invocation.
package web

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/KarolinaS-M/FD-nonlinear-stiff/analysis"
	"github.com/KarolinaS-M/FD-nonlinear-stiff/plotter"
	"github.com/KarolinaS-M/FD-nonlinear-stiff/solver"
)

// Figure dimensions served to the page.
const (
	figureWidth  = 1320.0
	figureHeight = 380.0
)

// Server serves the comparison page and the standalone figure.
type Server struct {
	addr     string
	defaults solver.Params
	opts     *solver.Options
	mux      *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. The default is ":8080".
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithDefaults sets the parameters used when the query string omits them.
func WithDefaults(p solver.Params) Option {
	return func(s *Server) { s.defaults = p }
}

// WithKernelOptions overrides the kernel options, notably the fixed-point
// iteration count of the backward scheme.
func WithKernelOptions(o *solver.Options) Option {
	return func(s *Server) { s.opts = o }
}

// NewServer creates a server with the given options applied.
func NewServer(options ...Option) *Server {
	s := &Server{
		addr:     ":8080",
		defaults: solver.DefaultParams(),
		opts:     solver.DefaultOptions(),
		mux:      http.NewServeMux(),
	}
	for _, opt := range options {
		opt(s)
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/plot.svg", s.handlePlot)
	return s
}

// Handler returns the root HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks serving the page on the configured address.
func (s *Server) ListenAndServe() error {
	log.Printf("serving finite-difference comparison on %s", s.addr)
	return http.ListenAndServe(s.addr, s.mux)
}

// paramsFromQuery overlays query values onto the defaults. Absent keys keep
// their default; malformed values are reported, and range validation is left
// to the kernel boundary.
func (s *Server) paramsFromQuery(q url.Values) (solver.Params, error) {
	p := s.defaults

	var err error
	parse := func(key string, dst *float64) {
		if err != nil || !q.Has(key) {
			return
		}
		v, perr := strconv.ParseFloat(q.Get(key), 64)
		if perr != nil {
			err = fmt.Errorf("invalid %s %q", key, q.Get(key))
			return
		}
		*dst = v
	}
	parse("lambda", &p.Lambda)
	parse("alpha", &p.Alpha)
	parse("t", &p.T)
	parse("x0", &p.X0)
	parse("xt", &p.XT)
	if err == nil && q.Has("n") {
		n, perr := strconv.Atoi(q.Get("n"))
		if perr != nil {
			err = fmt.Errorf("invalid n %q", q.Get("n"))
		} else {
			p.N = n
		}
	}
	return p, err
}

func (s *Server) solveQuery(q url.Values) (*solver.Solution, error) {
	p, err := s.paramsFromQuery(q)
	if err != nil {
		return nil, err
	}
	return solver.Solve(p, s.opts)
}

type pageData struct {
	Params solver.Params
	H      float64
	Figure template.HTML
	Notes  []string
	Query  template.URL
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	sol, err := s.solveQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	notes := make([]string, 0, 3)
	for _, d := range analysis.Report(sol) {
		notes = append(notes, d.Describe())
	}

	data := pageData{
		Params: sol.Params,
		H:      sol.Params.H(),
		Figure: template.HTML(plotter.Comparison(sol, figureWidth, figureHeight)),
		Notes:  notes,
		Query:  template.URL(r.URL.RawQuery),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		log.Printf("render page: %v", err)
	}
}

func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	sol, err := s.solveQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	fmt.Fprint(w, plotter.Comparison(sol, figureWidth, figureHeight))
}
