package design

import "math"

// Engine scale bounds: a design's thrust/mass/cost all scale linearly
// with this one slider.
const (
	EngineScaleMin  = 0.25
	EngineScaleMax  = 4.0
	EngineScaleStep = 0.25
)

// FuelType selects which base performance numbers an EngineDesign derives
// its snapshot from. Future propulsion categories (nuclear pulse, sail)
// would be a separate enum, not another FuelType.
type FuelType uint8

const (
	FuelKerolox FuelType = iota
	FuelHydrolox
	FuelSolid
)

func (f FuelType) String() string {
	switch f {
	case FuelKerolox:
		return "Kerolox"
	case FuelHydrolox:
		return "Hydrolox"
	case FuelSolid:
		return "Solid"
	default:
		return "Unknown"
	}
}

// baseStats holds the per-fuel-type numbers an EngineSnapshot scales from.
type baseStats struct {
	massKg          float64
	thrustKN        float64
	exhaustVelocity float64
	density         float64
	tankMassRatio   float64
	baseCost        float64
	isSolid         bool
	flawCategory    FlawCategory
}

var fuelBaseStats = map[FuelType]baseStats{
	FuelKerolox:  {massKg: 450.0, thrustKN: 500.0, exhaustVelocity: 3000.0, density: 1020.0, tankMassRatio: 0.06, baseCost: 10_000_000, flawCategory: CategoryLiquidEngine},
	FuelHydrolox: {massKg: 300.0, thrustKN: 100.0, exhaustVelocity: 4500.0, density: 290.0, tankMassRatio: 0.10, baseCost: 15_000_000, flawCategory: CategoryLiquidEngine},
	FuelSolid:    {massKg: 40_000.0, thrustKN: 8_000.0, exhaustVelocity: 2650.0, density: 1800.0, tankMassRatio: 0.136, baseCost: 15_000_000, isSolid: true, flawCategory: CategorySolidMotor},
}

// Additional cost constants confirmed against the original source's
// costs module, used by manufacturing and cost-tracker rollups.
const (
	TankCostPerM3       = 100_000.0
	StageOverheadCost   = 5_000_000.0
	RocketOverheadCost  = 10_000_000.0
	SolidMassRatio      = 0.88
)

// EngineDesign is a designable engine: a fuel type at a scale, with a
// shared Workflow tracking engineering/testing/flaws.
type EngineDesign struct {
	Fuel     FuelType
	Scale    float64
	Workflow *Workflow
}

// NewEngineDesign returns an engine design at scale 1.0 in Specification.
func NewEngineDesign(fuel FuelType) *EngineDesign {
	return &EngineDesign{
		Fuel:     fuel,
		Scale:    1.0,
		Workflow: NewWorkflow(),
	}
}

// CanModify reports whether the specification may still be changed —
// only while the shared workflow is still in Specification.
func (e *EngineDesign) CanModify() bool {
	return e.Workflow.Status.CanEdit()
}

// SetFuel changes the fuel type. Returns false if not modifiable.
func (e *EngineDesign) SetFuel(fuel FuelType) bool {
	if !e.CanModify() {
		return false
	}
	e.Fuel = fuel
	return true
}

// SetScale clamps and sets the engine's scale. Returns false if not
// modifiable.
func (e *EngineDesign) SetScale(scale float64) bool {
	if !e.CanModify() {
		return false
	}
	e.Scale = math.Max(EngineScaleMin, math.Min(EngineScaleMax, scale))
	return true
}

// Clone returns an independent deep copy, suitable for Lineage.CutRevision.
func (e *EngineDesign) Clone() *EngineDesign {
	cp := *e
	wf := *e.Workflow
	wf.ActiveFlaws = append([]Flaw(nil), e.Workflow.ActiveFlaws...)
	wf.FixedFlaws = append([]Flaw(nil), e.Workflow.FixedFlaws...)
	cp.Workflow = &wf
	return &cp
}

// EngineSnapshot is the lightweight, scale-resolved stats cache a
// manufacturing order or rocket stage holds instead of the full design.
type EngineSnapshot struct {
	EngineDesignID  int
	Name            string
	MassKg          float64
	ThrustKN        float64
	ExhaustVelocity float64
	BaseCost        float64
	Density         float64
	TankMassRatio   float64
	IsSolid         bool
	FlawCategory    FlawCategory
}

// Snapshot derives scale-resolved stats from the design's fuel type and
// scale.
func (e *EngineDesign) Snapshot(id int, name string) EngineSnapshot {
	base := fuelBaseStats[e.Fuel]
	return EngineSnapshot{
		EngineDesignID:  id,
		Name:            name,
		MassKg:          base.massKg * e.Scale,
		ThrustKN:        base.thrustKN * e.Scale,
		ExhaustVelocity: base.exhaustVelocity,
		BaseCost:        base.baseCost * e.Scale,
		Density:         base.density,
		TankMassRatio:   base.tankMassRatio,
		IsSolid:         base.isSolid,
		FlawCategory:    base.flawCategory,
	}
}

// StageFailureRate is the chance that at least one of n engines of this
// type fails to ignite: one minus every engine igniting successfully.
func (s EngineSnapshot) StageFailureRate(n int, perEngineFailureRate float64) float64 {
	reliability := 1.0 - perEngineFailureRate
	return 1.0 - math.Pow(reliability, float64(n))
}
