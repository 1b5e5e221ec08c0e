package design

import "math"

// Stage is one stage of a rocket design: an engine snapshot, how many of
// that engine, and how much propellant it carries.
type Stage struct {
	Engine         EngineSnapshot
	EngineCount    int
	PropellantKg   float64
}

// DryMassKg is the stage's mass with no propellant: engines only.
func (s Stage) DryMassKg() float64 {
	return s.Engine.MassKg * float64(s.EngineCount)
}

// WetMassKg is dry mass plus propellant.
func (s Stage) WetMassKg() float64 {
	return s.DryMassKg() + s.PropellantKg
}

// TotalThrustKN is the combined thrust of every engine in the stage.
func (s Stage) TotalThrustKN() float64 {
	return s.Engine.ThrustKN * float64(s.EngineCount)
}

// DeltaV returns the delta-v this stage provides given the mass it must
// push above it (payload plus any upper stages), via the Tsiolkovsky
// rocket equation: Δv = ve · ln(m0/mf).
func (s Stage) DeltaV(payloadMassKg float64) float64 {
	m0 := s.WetMassKg() + payloadMassKg
	mf := s.DryMassKg() + payloadMassKg
	return s.Engine.ExhaustVelocity * math.Log(m0/mf)
}

// IgnitionFailureRate is the chance at least one engine in the stage
// fails to ignite, given a fixed per-engine reliability.
func (s Stage) IgnitionFailureRate(perEngineFailureRate float64) float64 {
	return s.Engine.StageFailureRate(s.EngineCount, perEngineFailureRate)
}

// RocketDesign is a stack of stages plus the shared engineering Workflow.
type RocketDesign struct {
	Stages   []Stage
	Workflow *Workflow
}

// NewRocketDesign returns an empty rocket design in Specification.
func NewRocketDesign() *RocketDesign {
	return &RocketDesign{Workflow: NewWorkflow()}
}

// CanModify reports whether the stage stack may still be edited.
func (r *RocketDesign) CanModify() bool {
	return r.Workflow.Status.CanEdit()
}

// DryMassKg is the sum of every stage's dry mass.
func (r *RocketDesign) DryMassKg() float64 {
	total := 0.0
	for _, s := range r.Stages {
		total += s.DryMassKg()
	}
	return total
}

// WetMassKg is the sum of every stage's wet mass.
func (r *RocketDesign) WetMassKg() float64 {
	total := 0.0
	for _, s := range r.Stages {
		total += s.WetMassKg()
	}
	return total
}

// TotalDeltaV returns the rocket's total delta-v budget for a given
// payload mass, summing each stage from the top down: the payload for
// stage i is the given payload plus the wet mass of every stage above it.
func (r *RocketDesign) TotalDeltaV(payloadMassKg float64) float64 {
	total := 0.0
	above := payloadMassKg
	for i := len(r.Stages) - 1; i >= 0; i-- {
		s := r.Stages[i]
		total += s.DeltaV(above)
		above += s.WetMassKg()
	}
	return total
}

// EngineRequired is how many of a given engine design a rocket needs,
// summed across any stages that share that engine.
type EngineRequired struct {
	EngineDesignID int
	Quantity       int
}

// EnginesRequired returns the engine designs and quantities this rocket
// needs one full unit of, for manufacturing's auto-order pass.
func (r *RocketDesign) EnginesRequired() []EngineRequired {
	counts := map[int]int{}
	order := []int{}
	for _, s := range r.Stages {
		id := s.Engine.EngineDesignID
		if _, seen := counts[id]; !seen {
			order = append(order, id)
		}
		counts[id] += s.EngineCount
	}
	out := make([]EngineRequired, 0, len(order))
	for _, id := range order {
		out = append(out, EngineRequired{EngineDesignID: id, Quantity: counts[id]})
	}
	return out
}

// Clone returns an independent deep copy, suitable for Lineage.CutRevision.
func (r *RocketDesign) Clone() *RocketDesign {
	cp := &RocketDesign{
		Stages:   append([]Stage(nil), r.Stages...),
		Workflow: &Workflow{},
	}
	*cp.Workflow = *r.Workflow
	cp.Workflow.ActiveFlaws = append([]Flaw(nil), r.Workflow.ActiveFlaws...)
	cp.Workflow.FixedFlaws = append([]Flaw(nil), r.Workflow.FixedFlaws...)
	return cp
}
