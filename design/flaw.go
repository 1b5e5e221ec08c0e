package design

import (
	"math"
	"math/rand"

	"github.com/gonum/stat/distuv"
)

// FlawType determines what kind of testing can discover a flaw.
type FlawType uint8

const (
	FlawTypeEngine FlawType = iota
	FlawTypeDesign
)

// FlawTrigger is which launch event a flaw can cause a failure at.
type FlawTrigger uint8

const (
	TriggerIgnition FlawTrigger = iota
	TriggerLiftoff
	TriggerMaxQ
	TriggerSeparation
	TriggerPayloadRelease
)

// FlawCategory selects which template list a generated engine flaw is
// drawn from.
type FlawCategory uint8

const (
	CategoryLiquidEngine FlawCategory = iota
	CategorySolidMotor
)

// Flaw is a hidden defect that can cause a failure at its trigger event
// until it is discovered (through testing or a flight failure) and fixed.
type Flaw struct {
	ID              uint32
	Type            FlawType
	Name            string
	Description     string
	FailureRate     float64
	TestingModifier float64
	Trigger         FlawTrigger
	Discovered      bool
	Fixed           bool
	EngineDesignID  int // -1 for design flaws
}

// DiscoveryProbability is the chance a cycle of testing reveals this flaw.
// Higher TestingModifier means easier to discover.
func (f Flaw) DiscoveryProbability() float64 {
	return f.TestingModifier
}

// flawTemplate is a fixed name/description/type/trigger; the numeric
// failure rate and testing modifier are drawn per-instance from the
// log-normal and uniform distributions below.
type flawTemplate struct {
	name        string
	description string
	flawType    FlawType
	trigger     FlawTrigger
}

var liquidEngineFlawTemplates = []flawTemplate{
	{"Turbopump Bearing Defect", "Microscopic imperfections in turbopump bearings cause premature wear and potential seizure during high-speed operation.", FlawTypeEngine, TriggerIgnition},
	{"Combustion Chamber Crack", "Hairline fractures in the combustion chamber wall can propagate under thermal stress, leading to catastrophic failure.", FlawTypeEngine, TriggerIgnition},
	{"Fuel Injector Misalignment", "Slight misalignment in fuel injectors causes uneven combustion, hot spots, and potential burnthrough.", FlawTypeEngine, TriggerIgnition},
	{"Gimbal Actuator Weakness", "Hydraulic actuators for engine gimbaling have insufficient strength for the required thrust vector control loads.", FlawTypeEngine, TriggerIgnition},
	{"Propellant Valve Seal", "Main propellant valve seals degrade under cryogenic conditions, causing leaks and pressure loss.", FlawTypeEngine, TriggerIgnition},
	{"Igniter Reliability Issue", "Redundant igniters have common-mode failure vulnerability under certain environmental conditions.", FlawTypeEngine, TriggerIgnition},
	{"Turbine Blade Resonance", "Turbine blades resonate at certain RPM ranges, causing metal fatigue and eventual failure.", FlawTypeEngine, TriggerIgnition},
}

var solidMotorFlawTemplates = []flawTemplate{
	{"O-Ring Seal Defect", "Field joint O-rings lose elasticity in cold conditions, allowing hot gas blow-by and joint failure.", FlawTypeEngine, TriggerIgnition},
	{"Propellant Grain Crack", "Internal cracks in the solid propellant grain cause uneven burning and potential case burn-through.", FlawTypeEngine, TriggerIgnition},
	{"Nozzle Throat Erosion", "Excessive erosion of the nozzle throat causes loss of chamber pressure and thrust reduction.", FlawTypeEngine, TriggerIgnition},
	{"Case Insulation Failure", "Internal insulation fails to protect the motor case from combustion heat, causing structural failure.", FlawTypeEngine, TriggerIgnition},
	{"Igniter Squib Malfunction", "Pyrotechnic igniter fails to produce sufficient heat to reliably ignite the main propellant grain.", FlawTypeEngine, TriggerIgnition},
}

var designFlawTemplates = []flawTemplate{
	{"Structural Resonance", "Vehicle natural frequency matches aerodynamic buffet frequency during max-Q, causing destructive oscillations.", FlawTypeDesign, TriggerMaxQ},
	{"Stage Separation Bolt Defect", "Explosive bolts for stage separation have inconsistent charge, leading to asymmetric separation.", FlawTypeDesign, TriggerSeparation},
	{"Guidance Software Bug", "Edge case in guidance algorithms causes incorrect attitude determination under specific orbital conditions.", FlawTypeDesign, TriggerPayloadRelease},
	{"Propellant Slosh Instability", "Propellant sloshing in partially-filled tanks couples with control system, causing loss of control.", FlawTypeDesign, TriggerMaxQ},
	{"Thermal Protection Gap", "Gaps in aerodynamic heating protection allow hot gases to damage structure during ascent.", FlawTypeDesign, TriggerMaxQ},
	{"Interstage Coupler Flaw", "Interstage structure has insufficient strength for the separation loads under all flight conditions.", FlawTypeDesign, TriggerSeparation},
	{"Avionics Thermal Margin", "Flight computer cooling is inadequate for extended powered flight, causing thermal shutdown.", FlawTypeDesign, TriggerPayloadRelease},
	{"Fairing Separation Failure", "Payload fairing separation system has unreliable pyrotechnic actuators.", FlawTypeDesign, TriggerSeparation},
	{"Liftoff Clamp Release", "Hold-down clamps release sequence has timing issues that can tip the vehicle.", FlawTypeDesign, TriggerLiftoff},
	{"Acoustic Vibration Damage", "Launch acoustic environment exceeds component qualification levels in some areas.", FlawTypeDesign, TriggerLiftoff},
}

// Generator draws flaws for a design from the engine/design template
// catalogs using a supplied random source, so two generations with the
// same seed produce identical flaws.
//
// failureRate is log-normal, clamped into [0.005, 1.0]: Mu/Sigma are
// chosen so the median sits near 2%, with a long tail of rare, severe
// flaws. testingModifier is uniform over [0.1, 1.0].
type Generator struct {
	failureRate     distuv.LogNormal
	testingModifier distuv.Uniform
}

// NewGenerator returns a flaw Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{
		failureRate:     distuv.LogNormal{Mu: -3.9, Sigma: 0.85, Src: rng},
		testingModifier: distuv.Uniform{Min: 0.1, Max: 1.0, Src: rng},
	}
}

// GenerateEngineFlaws draws one flaw per template in the category
// appropriate to the engine, tagged with engineDesignID.
func (g *Generator) GenerateEngineFlaws(category FlawCategory, engineDesignID int, nextID func() uint32) []Flaw {
	templates := liquidEngineFlawTemplates
	if category == CategorySolidMotor {
		templates = solidMotorFlawTemplates
	}
	return g.generate(templates, engineDesignID, nextID)
}

// GenerateDesignFlaws draws one flaw per design-level template.
func (g *Generator) GenerateDesignFlaws(nextID func() uint32) []Flaw {
	return g.generate(designFlawTemplates, -1, nextID)
}

func (g *Generator) generate(templates []flawTemplate, engineDesignID int, nextID func() uint32) []Flaw {
	flaws := make([]Flaw, 0, len(templates))
	for _, t := range templates {
		flaws = append(flaws, Flaw{
			ID:              nextID(),
			Type:            t.flawType,
			Name:            t.name,
			Description:     t.description,
			FailureRate:     clampFailureRate(g.failureRate.Rand()),
			TestingModifier: g.testingModifier.Rand(),
			Trigger:         t.trigger,
			EngineDesignID:  engineDesignID,
		})
	}
	return flaws
}

func clampFailureRate(v float64) float64 {
	return math.Max(0.005, math.Min(1.0, v))
}
