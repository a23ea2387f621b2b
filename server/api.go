package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/busroute/core"
	"github.com/katalvlaran/busroute/dijkstra"
	"github.com/katalvlaran/busroute/layout"
	"github.com/katalvlaran/busroute/network"
	"github.com/katalvlaran/busroute/planner"
)

// NetworkResponse is the body of GET /network.
type NetworkResponse struct {
	*network.Network
	Stranded   []int   `json:"stranded"`
	Components [][]int `json:"components"`
}

// DistancesResponse is the body of GET /distances/{source}.
type DistancesResponse struct {
	Source  int              `json:"source"`
	Entries []dijkstra.Entry `json:"entries"`
}

// EdgeResponse is the body of GET /edges/{u}/{v}.
type EdgeResponse struct {
	U      int   `json:"u"`
	V      int   `json:"v"`
	Weight int64 `json:"weight"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Controller binds http requests to a planner.
type Controller struct {
	planner *planner.Planner
	log     logrus.FieldLogger
}

// NewController returns the api controller for p.
func NewController(p *planner.Planner, logger logrus.FieldLogger) *Controller {
	return &Controller{planner: p, log: logger}
}

// Routes returns all of the api routes of the Controller.
func (c *Controller) Routes() Routes {
	return Routes{
		{"Health", http.MethodGet, "/healthz", c.Health},
		{"GetNetwork", http.MethodGet, "/network", c.GetNetwork},
		{"GetRoute", http.MethodGet, "/routes/{source}", c.GetRoute},
		{"GetDistances", http.MethodGet, "/distances/{source}", c.GetDistances},
		{"GetEdge", http.MethodGet, "/edges/{u}/{v}", c.GetEdge},
		{"GetLayout", http.MethodGet, "/layout/{source}", c.GetLayout},
	}
}

// New returns the complete HTTP handler for p.
func New(p *planner.Planner, logger logrus.FieldLogger) http.Handler {
	return NewRouter(logger, NewController(p, logger))
}

func (c *Controller) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (c *Controller) GetNetwork(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NetworkResponse{
		Network:    c.planner.Network(),
		Stranded:   c.planner.Stranded(),
		Components: c.planner.Components(),
	})
}

// GetRoute - plan a route from {source} to ?target= or the destination.
// ?max= and ?wall= are passed to the search, see searchOptions.
func (c *Controller) GetRoute(w http.ResponseWriter, r *http.Request) {
	source, err := intVar(r, "source")
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	opts, err := searchOptions(r)
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	target := c.planner.Destination()
	if raw := r.URL.Query().Get("target"); raw != "" {
		if target, err = strconv.Atoi(raw); err != nil {
			c.handleError(w, r, &parsingError{name: "target", err: err})
			return
		}
	}

	it, err := c.planner.PlanTo(source, target, opts...)
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (c *Controller) GetDistances(w http.ResponseWriter, r *http.Request) {
	source, err := intVar(r, "source")
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	opts, err := searchOptions(r)
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	res, err := c.planner.Distances(source, opts...)
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DistancesResponse{Source: source, Entries: res.Table()})
}

func (c *Controller) GetEdge(w http.ResponseWriter, r *http.Request) {
	u, err := intVar(r, "u")
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	v, err := intVar(r, "v")
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	weight, err := c.planner.EdgeWeight(u, v)
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, EdgeResponse{U: u, V: v, Weight: weight})
}

func (c *Controller) GetLayout(w http.ResponseWriter, r *http.Request) {
	source, err := intVar(r, "source")
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	fc, err := layout.Plan(c.planner, source)
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// parsingError indicates a path or query parameter that is not an integer.
type parsingError struct {
	name string
	err  error
}

func (e *parsingError) Error() string {
	return fmt.Sprintf("parameter %q: %v", e.name, e.err)
}

func (e *parsingError) Unwrap() error { return e.err }

func intVar(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, &parsingError{name: name, err: err}
	}
	return v, nil
}

// searchOptions reads the optional query parameters of a search:
// max caps explored distances, wall makes every road that heavy or heavier
// impassable.
func searchOptions(r *http.Request) ([]dijkstra.Option, error) {
	var opts []dijkstra.Option
	q := r.URL.Query()
	if raw := q.Get("max"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, &parsingError{name: "max", err: err}
		}
		opts = append(opts, dijkstra.WithMaxDistance(limit))
	}
	if raw := q.Get("wall"); raw != "" {
		wall, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, &parsingError{name: "wall", err: err}
		}
		opts = append(opts, dijkstra.WithInfEdgeThreshold(wall))
	}
	return opts, nil
}

// handleError maps domain errors to status codes.
func (c *Controller) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *parsingError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &perr),
		errors.Is(err, dijkstra.ErrBadMaxDistance),
		errors.Is(err, dijkstra.ErrBadInfThreshold):
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrOutOfRange), errors.Is(err, core.ErrEdgeNotFound):
		status = http.StatusNotFound
	}

	entry := c.log.WithError(err).WithField("uri", r.RequestURI)
	if status == http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	writeError(w, status, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
