// Package mission implements the Delta-V Graph, mission planning, and the
// closed-form rocket-equation flight simulator.
package mission

import (
	"math"

	"github.com/gonum/graph"
	"github.com/gonum/graph/path"
	"github.com/gonum/graph/simple"
)

// SurfaceProperties describes a planetary or lunar surface endpoint.
type SurfaceProperties struct {
	GravityMS2        float64
	RadiusM           float64
	HasAtmosphere     bool
	AtmosphereDensity float64
}

// OrbitalVelocity is the circular orbital velocity at the surface:
// sqrt(g * r).
func (s SurfaceProperties) OrbitalVelocity() float64 {
	return math.Sqrt(s.GravityMS2 * s.RadiusM)
}

// LocationType tags what kind of node a Location is.
type LocationType uint8

const (
	LocationSurface LocationType = iota
	LocationOrbit
	LocationLagrange
)

// Location is one node in the delta-v graph.
type Location struct {
	ID          string
	DisplayName string
	ShortName   string
	Type        LocationType
	Surface     SurfaceProperties
	ParentBody  string
}

// Transfer is a directed edge in the delta-v graph between two locations.
type Transfer struct {
	From          string
	To            string
	DeltaV        float64
	AeroDragLoss  float64
	CanAerobrake  bool
	TransitDays   uint32
}

// TotalDeltaV is the transfer's cost including aerodynamic drag losses.
func (t Transfer) TotalDeltaV() float64 {
	return t.DeltaV + t.AeroDragLoss
}

// DeltaVMap is the static, directed graph of locations connected by
// transfers. It never changes at runtime — querying a shortest path is a
// pure lookup, never a computed ephemeris.
type DeltaVMap struct {
	locations []Location
	transfers []Transfer

	index    map[string]int64
	nodeToID []string
	g        *simple.WeightedDirectedGraph
}

// NewEarthMoonMap builds the built-in Earth-Moon delta-v graph: surface,
// orbits, Lagrange points, and the lunar surface, connected by the
// transfers a real mission planner would use.
func NewEarthMoonMap() *DeltaVMap {
	locations := []Location{
		{ID: "earth_surface", DisplayName: "Earth Surface", ShortName: "EARTH", Type: LocationSurface, ParentBody: "earth",
			Surface: SurfaceProperties{GravityMS2: 9.81, RadiusM: 6_371_000.0, HasAtmosphere: true, AtmosphereDensity: 1.225}},
		{ID: "suborbital", DisplayName: "Suborbital", ShortName: "SUB", Type: LocationOrbit, ParentBody: "earth"},
		{ID: "leo", DisplayName: "Low Earth Orbit", ShortName: "LEO", Type: LocationOrbit, ParentBody: "earth"},
		{ID: "sso", DisplayName: "Sun-Synchronous Orbit", ShortName: "SSO", Type: LocationOrbit, ParentBody: "earth"},
		{ID: "meo", DisplayName: "Medium Earth Orbit", ShortName: "MEO", Type: LocationOrbit, ParentBody: "earth"},
		{ID: "gto", DisplayName: "Geostationary Transfer", ShortName: "GTO", Type: LocationOrbit, ParentBody: "earth"},
		{ID: "geo", DisplayName: "Geostationary Orbit", ShortName: "GEO", Type: LocationOrbit, ParentBody: "earth"},
		{ID: "l1", DisplayName: "Earth-Moon L1", ShortName: "L1", Type: LocationLagrange, ParentBody: "earth"},
		{ID: "l2", DisplayName: "Earth-Moon L2", ShortName: "L2", Type: LocationLagrange, ParentBody: "earth"},
		{ID: "lunar_orbit", DisplayName: "Lunar Orbit", ShortName: "LLO", Type: LocationOrbit, ParentBody: "moon"},
		{ID: "lunar_surface", DisplayName: "Lunar Surface", ShortName: "MOON", Type: LocationSurface, ParentBody: "moon",
			Surface: SurfaceProperties{GravityMS2: 1.62, RadiusM: 1_737_000.0}},
	}

	transfers := []Transfer{
		{From: "earth_surface", To: "suborbital", DeltaV: 3500.0, TransitDays: 0},
		{From: "earth_surface", To: "leo", DeltaV: 7800.0, AeroDragLoss: 300.0, TransitDays: 0},
		{From: "leo", To: "sso", DeltaV: 500.0, TransitDays: 0},
		{From: "leo", To: "meo", DeltaV: 2100.0, TransitDays: 0},
		{From: "leo", To: "gto", DeltaV: 2440.0, TransitDays: 1},
		{From: "gto", To: "geo", DeltaV: 1500.0, TransitDays: 0},
		{From: "leo", To: "l1", DeltaV: 3150.0, TransitDays: 5},
		{From: "l1", To: "lunar_orbit", DeltaV: 700.0, TransitDays: 2},
		{From: "leo", To: "lunar_orbit", DeltaV: 3850.0, TransitDays: 4},
		{From: "lunar_orbit", To: "lunar_surface", DeltaV: 1700.0, CanAerobrake: false, TransitDays: 0},
		{From: "lunar_surface", To: "lunar_orbit", DeltaV: 1700.0, TransitDays: 0},
	}

	return newDeltaVMap(locations, transfers)
}

func newDeltaVMap(locations []Location, transfers []Transfer) *DeltaVMap {
	m := &DeltaVMap{
		locations: locations,
		transfers: transfers,
		index:     make(map[string]int64, len(locations)),
		g:         simple.NewWeightedDirectedGraph(0, math.Inf(1)),
	}
	for i, loc := range locations {
		id := int64(i)
		m.index[loc.ID] = id
		m.nodeToID = append(m.nodeToID, loc.ID)
		m.g.AddNode(simple.Node(id))
	}
	for _, t := range transfers {
		from, ok1 := m.index[t.From]
		to, ok2 := m.index[t.To]
		if !ok1 || !ok2 {
			panic("delta-v map transfer references unknown location: " + t.From + " -> " + t.To)
		}
		m.g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(from),
			T: simple.Node(to),
			W: t.TotalDeltaV(),
		})
	}
	return m
}

// Location returns the location with the given id, if any.
func (m *DeltaVMap) Location(id string) (Location, bool) {
	idx, ok := m.index[id]
	if !ok {
		return Location{}, false
	}
	return m.locations[idx], true
}

// Transfer returns the direct transfer edge from one location to another,
// if one exists.
func (m *DeltaVMap) Transfer(from, to string) (Transfer, bool) {
	for _, t := range m.transfers {
		if t.From == from && t.To == to {
			return t, true
		}
	}
	return Transfer{}, false
}

// ShortestPath returns the minimum total-delta-v route from one location
// to another, using Dijkstra's algorithm over the static graph.
func (m *DeltaVMap) ShortestPath(from, to string) ([]string, float64, bool) {
	fromIdx, ok1 := m.index[from]
	toIdx, ok2 := m.index[to]
	if !ok1 || !ok2 {
		return nil, 0, false
	}

	shortest := path.DijkstraFrom(simple.Node(fromIdx), m.g)
	nodes, weight := shortest.To(toIdx)
	if len(nodes) == 0 {
		return nil, 0, false
	}

	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = m.nodeToID[n.ID()]
	}
	return ids, weight, true
}

var _ graph.Graph = (*simple.WeightedDirectedGraph)(nil)
