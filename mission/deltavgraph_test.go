package mission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPathFindsDirectEdge(t *testing.T) {
	m := NewEarthMoonMap()

	path, weight, ok := m.ShortestPath("earth_surface", "leo")
	require.True(t, ok)
	assert.Equal(t, []string{"earth_surface", "leo"}, path)
	assert.InDelta(t, 8100.0, weight, 1e-9) // 7800 deltaV + 300 aero drag loss
}

func TestShortestPathToLunarOrbit(t *testing.T) {
	m := NewEarthMoonMap()

	path, weight, ok := m.ShortestPath("earth_surface", "lunar_orbit")
	require.True(t, ok)
	assert.Equal(t, "earth_surface", path[0])
	assert.Equal(t, "lunar_orbit", path[len(path)-1])
	assert.InDelta(t, 11_950.0, weight, 1e-9)
}

func TestShortestPathUnreachableReturnsFalse(t *testing.T) {
	m := NewEarthMoonMap()

	_, _, ok := m.ShortestPath("lunar_surface", "earth_surface")
	assert.False(t, ok, "no transfer back down from the lunar surface to earth exists in the built-in map")
}

func TestShortestPathUnknownLocation(t *testing.T) {
	m := NewEarthMoonMap()

	_, _, ok := m.ShortestPath("earth_surface", "mars_surface")
	assert.False(t, ok)
}

func TestLocationLookup(t *testing.T) {
	m := NewEarthMoonMap()

	loc, ok := m.Location("leo")
	require.True(t, ok)
	assert.Equal(t, "Low Earth Orbit", loc.DisplayName)

	_, ok = m.Location("nowhere")
	assert.False(t, ok)
}

func TestTransferTotalDeltaVIncludesAeroDragLoss(t *testing.T) {
	tr := Transfer{DeltaV: 7800.0, AeroDragLoss: 300.0}
	assert.Equal(t, 8100.0, tr.TotalDeltaV())
}

func TestSurfacePropertiesOrbitalVelocity(t *testing.T) {
	s := SurfaceProperties{GravityMS2: 9.81, RadiusM: 6_371_000.0}
	v := s.OrbitalVelocity()
	assert.Greater(t, v, 0.0)
	assert.InDelta(t, 7905.0, v, 5.0)
}
