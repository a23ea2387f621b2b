package network_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/busroute/core"
	"github.com/katalvlaran/busroute/network"
)

func TestLoad_FormatsAgree(t *testing.T) {
	want := network.SchoolBus()

	for _, name := range []string{"testdata/schoolbus.toml", "testdata/schoolbus.yaml"} {
		t.Run(name, func(t *testing.T) {
			got, err := network.Load(name)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := network.Load("testdata/schoolbus.json")
	require.ErrorIs(t, err, network.ErrUnknownFormat)

	_, err = network.Load("testdata/missing.toml")
	require.Error(t, err)

	_, err = network.Decode(strings.NewReader("stops: [{label: A}]\nunknown: 1\n"), network.FormatYAML)
	require.Error(t, err, "unknown YAML fields are rejected")

	_, err = network.Decode(strings.NewReader(""), "xml")
	require.ErrorIs(t, err, network.ErrUnknownFormat)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(n *network.Network)
	}{
		{"no stops", func(n *network.Network) { n.Stops = nil }},
		{"destination out of range", func(n *network.Network) { n.Destination = 8 }},
		{"road to unknown stop", func(n *network.Network) { n.Roads[0].To = 9 }},
		{"negative weight", func(n *network.Network) { n.Roads[3].Weight = -16 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := network.SchoolBus()
			tc.edit(n)
			require.ErrorIs(t, n.Validate(), network.ErrInvalidNetwork)
			_, err := n.Graph()
			require.ErrorIs(t, err, network.ErrInvalidNetwork)
		})
	}
}

func TestGraph(t *testing.T) {
	n := network.SchoolBus()
	g, err := n.Graph()
	require.NoError(t, err)
	require.Equal(t, 8, g.VertexCount())
	require.Equal(t, 11, g.EdgeCount())

	w, err := g.EdgeWeight(7, 5)
	require.NoError(t, err)
	require.Equal(t, int64(7), w)

	n.Roads = append(n.Roads, network.Road{From: 7, To: 5, Weight: 1})
	_, err = n.Graph()
	require.ErrorIs(t, err, network.ErrInvalidNetwork)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
}

func TestLabelsAndRoles(t *testing.T) {
	n := network.SchoolBus()

	require.Equal(t, "Stop 1", n.Label(0))
	require.Equal(t, "College", n.Label(7))
	require.Equal(t, "Stop 10", n.Label(9), "fallback label")

	require.Equal(t, network.RoleHome, n.Role(2, 2))
	require.Equal(t, network.RoleDestination, n.Role(7, 2))
	require.Equal(t, network.RoleStop, n.Role(0, 2))
	require.Equal(t, network.HomeLabel, n.MapLabel(2, 2))
	require.Equal(t, "Stop 1", n.MapLabel(0, 2))

	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, n.Sources())

	v, ok := n.Lookup("Stop 4")
	require.True(t, ok)
	require.Equal(t, 3, v)
	_, ok = n.Lookup("Stop 42")
	require.False(t, ok)

	require.Equal(t, orb.Point{550, 200}, n.Stops[7].Point())
}

func TestIslands_DefaultLabels(t *testing.T) {
	n, err := network.Load("testdata/islands.yaml")
	require.NoError(t, err)
	require.Equal(t, "Stop 3", n.Label(2))
	require.Equal(t, "Depot", n.Label(n.Destination))
}

func TestEncode_TOMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, network.Encode(&buf, network.SchoolBus(), network.FormatTOML))

	back, err := network.Decode(&buf, network.FormatTOML)
	require.NoError(t, err)
	require.Equal(t, network.SchoolBus(), back)

	require.ErrorIs(t, network.Encode(&buf, back, "ini"), network.ErrUnknownFormat)
}
