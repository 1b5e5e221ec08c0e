package mission

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// gravityLossCoefficients are the per-stage-position gravity-loss
// coefficients applied to a stage's raw Tsiolkovsky delta-v: the first
// stage fights the whole gravity well, later stages progressively less.
// A simplified, deliberately non-physical stand-in for integrating the
// gravity-loss term over an actual trajectory.
var gravityLossCoefficients = []float64{0.15, 0.08, 0.03, 0.01}

func gravityLossCoefficient(stageIndex int) float64 {
	if stageIndex < len(gravityLossCoefficients) {
		return gravityLossCoefficients[stageIndex]
	}
	return gravityLossCoefficients[len(gravityLossCoefficients)-1]
}

// StageInput is the minimal per-stage data the rocket-equation solver
// needs: wet/dry mass and exhaust velocity, already resolved from a
// design snapshot.
type StageInput struct {
	WetMassKg       float64
	DryMassKg       float64
	ExhaustVelocity float64
	IsBooster       bool
}

// Result is the outcome of solving a rocket's total usable delta-v
// against a required delta-v.
// Sufficient is left for the caller to set by comparing TotalDeltaV
// against the mission plan's required delta-v; the solver itself has no
// notion of a target.
type Result struct {
	TotalDeltaV         float64
	PerStageDeltaV      []float64
	PropellantRemaining *mat64.Vector
	Sufficient          bool
}

// SolveDeltaV computes the rocket's total usable delta-v for a payload
// mass, stage by stage from the top down, applying each stage's
// gravity-loss coefficient. Booster stages (parallel-burn side boosters
// attached to the first core stage) contribute their delta-v added
// directly to the first core stage's figure rather than as their own
// sequential stage, since they burn simultaneously with it.
//
// This is the "fast path": a direct closed-form evaluation, used whenever
// every stage's masses are already known and no iterative solving of a
// mass-fraction target is required. SolveDeltaVForTarget below is a
// separate inverse query: it bisects one stage's propellant load until a
// required delta-v is met. No per-leg (slow path) solver exists.
func SolveDeltaV(stages []StageInput, payloadMassKg float64) Result {
	var boosterDeltaV float64

	above := payloadMassKg
	// Accumulate from the top (last stage) down, as in RocketDesign.TotalDeltaV.
	perStage := make([]float64, len(stages))

	propellantRemaining := mat64.NewVector(len(stages), nil)
	for i := len(stages) - 1; i >= 0; i-- {
		s := stages[i]
		m0 := s.WetMassKg + above
		mf := s.DryMassKg + above
		raw := s.ExhaustVelocity * math.Log(m0/mf)
		loss := 1.0 - gravityLossCoefficient(i)
		dv := raw * loss
		if s.IsBooster {
			boosterDeltaV += dv
			propellantRemaining.SetVec(i, 0)
			continue
		}
		perStage[i] = dv
		above += s.WetMassKg
		propellantRemaining.SetVec(i, s.WetMassKg-s.DryMassKg)
	}

	if len(stages) > 0 {
		perStage[0] += boosterDeltaV
	}

	total := 0.0
	for _, v := range perStage {
		total += v
	}

	return Result{TotalDeltaV: total, PerStageDeltaV: perStage, PropellantRemaining: propellantRemaining}
}

// SolveDeltaVForTarget iterates a single stage's propellant mass (holding
// dry mass and exhaust velocity fixed) until its delta-v meets target,
// using bisection over a fixed propellant-mass range. Used by design
// tools that need "how much propellant does this stage need" rather than
// "what delta-v does this propellant load give".
func SolveDeltaVForTarget(dryMassKg, exhaustVelocity, payloadMassKg, target float64, maxPropellantKg float64) (propellantKg float64, ok bool) {
	lo, hi := 0.0, maxPropellantKg
	const iterations = 60
	stageDeltaV := func(propellant float64) float64 {
		m0 := dryMassKg + propellant + payloadMassKg
		mf := dryMassKg + payloadMassKg
		return exhaustVelocity * math.Log(m0/mf)
	}
	if stageDeltaV(hi) < target {
		return hi, false
	}
	for i := 0; i < iterations; i++ {
		mid := (lo + hi) / 2
		if stageDeltaV(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi, true
}
