package mission

// MissionLeg is one hop of a mission plan: a transfer between two
// locations plus how many days it takes to cross.
type MissionLeg struct {
	From        string
	To          string
	DeltaV      float64
	TransitDays uint32
}

// MissionPlan is an ordered sequence of legs a flight will fly, built
// from the delta-v graph's shortest path between two locations.
type MissionPlan struct {
	Legs []MissionLeg
}

// FromShortestPath builds a MissionPlan along the delta-v graph's cheapest
// route from -> to. Returns false if no path exists.
func FromShortestPath(m *DeltaVMap, from, to string) (MissionPlan, bool) {
	nodes, _, ok := m.ShortestPath(from, to)
	if !ok || len(nodes) < 2 {
		return MissionPlan{}, false
	}

	var legs []MissionLeg
	for i := 0; i < len(nodes)-1; i++ {
		t, ok := m.Transfer(nodes[i], nodes[i+1])
		if !ok {
			return MissionPlan{}, false
		}
		legs = append(legs, MissionLeg{
			From:        t.From,
			To:          t.To,
			DeltaV:      t.TotalDeltaV(),
			TransitDays: t.TransitDays,
		})
	}
	return MissionPlan{Legs: legs}, true
}

// LegCount is the number of legs in the plan.
func (p MissionPlan) LegCount() int {
	return len(p.Legs)
}

// TotalTransitDays sums every leg's transit time. Zero-transit legs (an
// instantaneous burn with no travel time) contribute nothing, per the
// flight propagator's zero-transit-leg collapse.
func (p MissionPlan) TotalTransitDays() uint32 {
	total := uint32(0)
	for _, l := range p.Legs {
		total += l.TransitDays
	}
	return total
}

// TotalDeltaV sums every leg's delta-v requirement.
func (p MissionPlan) TotalDeltaV() float64 {
	total := 0.0
	for _, l := range p.Legs {
		total += l.DeltaV
	}
	return total
}

// IsSurfaceDeparture reports whether a location id names a surface
// departure point (as opposed to an orbit or Lagrange point), which
// determines whether a launch sequence applies to the first leg.
func IsSurfaceDeparture(locationID string) bool {
	return locationID == "earth_surface" || locationID == "lunar_surface"
}
