package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/busroute/logging"
	"github.com/katalvlaran/busroute/network"
	"github.com/katalvlaran/busroute/planner"
	"github.com/katalvlaran/busroute/server"
)

type ServerSuite struct {
	suite.Suite
	srv *httptest.Server
}

func (s *ServerSuite) SetupSuite() {
	p, err := planner.New(network.SchoolBus(), nil)
	require.NoError(s.T(), err)
	s.srv = httptest.NewServer(server.New(p, logging.Discard()))
}

func (s *ServerSuite) TearDownSuite() {
	s.srv.Close()
}

func (s *ServerSuite) get(path string, wantStatus int, body interface{}) *http.Response {
	resp, err := http.Get(s.srv.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(wantStatus, resp.StatusCode, "GET %s", path)
	if body != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(body))
	}
	return resp
}

func (s *ServerSuite) TestHealth() {
	var body map[string]string
	s.get("/healthz", http.StatusOK, &body)
	s.Equal("ok", body["status"])
}

func (s *ServerSuite) TestNetwork() {
	var body struct {
		Name        string         `json:"name"`
		Destination int            `json:"destination"`
		Stops       []network.Stop `json:"stops"`
		Roads       []network.Road `json:"roads"`
		Stranded    []int          `json:"stranded"`
		Components  [][]int        `json:"components"`
	}
	s.get("/network", http.StatusOK, &body)
	s.Equal("School Bus Route", body.Name)
	s.Equal(7, body.Destination)
	s.Len(body.Stops, 8)
	s.Len(body.Roads, 11)
	s.Empty(body.Stranded)
	s.Require().Len(body.Components, 1)
	s.ElementsMatch([]int{0, 1, 2, 3, 4, 5, 6, 7}, body.Components[0])
}

func (s *ServerSuite) TestRoute() {
	var it planner.Itinerary
	resp := s.get("/routes/0", http.StatusOK, &it)
	s.Equal("application/json; charset=UTF-8", resp.Header.Get("Content-Type"))
	s.True(it.Reachable)
	s.Equal(int64(50), it.Total)
	s.Require().Len(it.Legs, 3)
	s.Equal("Stop 1", it.Legs[0].From.Label)
	s.Equal("College", it.Legs[2].To.Label)
}

func (s *ServerSuite) TestRouteWithTarget() {
	var it planner.Itinerary
	s.get("/routes/2?target=1", http.StatusOK, &it)
	s.True(it.Reachable)
	s.Equal(1, it.Target.Index)
	s.Equal(int64(31), it.Total)
}

func (s *ServerSuite) TestRouteErrors() {
	var body map[string]string
	s.get("/routes/8", http.StatusNotFound, &body)
	s.Contains(body["error"], "out of range")

	s.get("/routes/abc", http.StatusBadRequest, &body)
	s.Contains(body["error"], "source")

	s.get("/routes/0?target=x", http.StatusBadRequest, &body)
	s.Contains(body["error"], "target")
}

func (s *ServerSuite) TestRouteSearchLimits() {
	var it planner.Itinerary
	s.get("/routes/0?max=30", http.StatusOK, &it)
	s.False(it.Reachable)
	s.Empty(it.Legs)

	s.get("/routes/0?max=50", http.StatusOK, &it)
	s.True(it.Reachable)
	s.Equal(int64(50), it.Total)

	// roads of 20 or more are closed, which cuts every way into College
	s.get("/routes/0?wall=20", http.StatusOK, &it)
	s.False(it.Reachable)

	var body map[string]string
	s.get("/routes/0?max=-1", http.StatusBadRequest, &body)
	s.Contains(body["error"], "MaxDistance")
	s.get("/routes/0?wall=0", http.StatusBadRequest, &body)
	s.Contains(body["error"], "InfEdgeThreshold")
	s.get("/routes/0?max=far", http.StatusBadRequest, &body)
	s.Contains(body["error"], "max")
}

func (s *ServerSuite) TestDistancesWithMax() {
	var body struct {
		Entries []struct {
			Vertex    int  `json:"vertex"`
			Reachable bool `json:"reachable"`
		} `json:"entries"`
	}
	s.get("/distances/0?max=30", http.StatusOK, &body)
	s.Require().Len(body.Entries, 8)
	reachable := map[int]bool{}
	for _, e := range body.Entries {
		reachable[e.Vertex] = e.Reachable
	}
	s.Equal(map[int]bool{0: true, 1: true, 2: false, 3: true, 4: true, 5: false, 6: false, 7: false}, reachable)
}

func (s *ServerSuite) TestDistances() {
	var body struct {
		Source  int `json:"source"`
		Entries []struct {
			Vertex    int   `json:"vertex"`
			Reachable bool  `json:"reachable"`
			Distance  int64 `json:"distance"`
		} `json:"entries"`
	}
	s.get("/distances/0", http.StatusOK, &body)
	s.Equal(0, body.Source)
	s.Require().Len(body.Entries, 8)
	s.Equal(int64(0), body.Entries[0].Distance)
	s.Equal(int64(50), body.Entries[7].Distance)
	for _, e := range body.Entries {
		s.True(e.Reachable)
	}
}

func (s *ServerSuite) TestEdge() {
	var edge server.EdgeResponse
	s.get("/edges/7/6", http.StatusOK, &edge)
	s.Equal(server.EdgeResponse{U: 7, V: 6, Weight: 10}, edge)

	var body map[string]string
	s.get("/edges/0/7", http.StatusNotFound, &body)
	s.Contains(body["error"], "edge not found")
}

func (s *ServerSuite) TestLayout() {
	resp, err := http.Get(s.srv.URL + "/layout/0")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/geo+json", resp.Header.Get("Content-Type"))

	var raw json.RawMessage
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&raw))
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	s.Require().NoError(err)
	s.Len(fc.Features, 8+11+1)
}

func (s *ServerSuite) TestUnknownPath() {
	var body map[string]string
	s.get("/nope", http.StatusNotFound, &body)
	s.NotEmpty(body["error"])
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}
