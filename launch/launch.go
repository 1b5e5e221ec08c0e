// Package launch implements the deterministic launch-stage sequence
// simulator: ignition through orbital insertion, each with a fixed
// failure probability rolled against a caller-supplied RNG stream. This
// is the stage-by-stage pass/fail model only, not a Monte-Carlo
// animation — a flight's outcome is decided by these rolls, not by any
// continuous physics.
package launch

import "math/rand"

// Stage is one step of a launch sequence.
type Stage uint8

const (
	StageIgnition Stage = iota
	StageLiftoff
	StageMaxQ
	StageStage1Separation
	StageStage2Ignition
	StageMECO
	StageOrbitInsertion
)

// FailureProbability is the chance this stage fails, independent of
// every other stage.
func (s Stage) FailureProbability() float64 {
	switch s {
	case StageIgnition:
		return 0.08
	case StageLiftoff:
		return 0.05
	case StageMaxQ:
		return 0.15
	case StageStage1Separation:
		return 0.10
	case StageStage2Ignition:
		return 0.07
	case StageMECO:
		return 0.03
	case StageOrbitInsertion:
		return 0.05
	default:
		return 0.0
	}
}

// Description is a human-readable label for the stage.
func (s Stage) Description() string {
	switch s {
	case StageIgnition:
		return "Engine ignition"
	case StageLiftoff:
		return "Liftoff"
	case StageMaxQ:
		return "Max-Q (maximum dynamic pressure)"
	case StageStage1Separation:
		return "Stage 1 separation"
	case StageStage2Ignition:
		return "Stage 2 ignition"
	case StageMECO:
		return "MECO (Main Engine Cutoff)"
	case StageOrbitInsertion:
		return "Orbital insertion"
	default:
		return ""
	}
}

// Next returns the following stage in sequence, and false if s is the
// final stage.
func (s Stage) Next() (Stage, bool) {
	if s == StageOrbitInsertion {
		return 0, false
	}
	return s + 1, true
}

// AllStages lists every stage in flight order.
func AllStages() []Stage {
	return []Stage{
		StageIgnition, StageLiftoff, StageMaxQ, StageStage1Separation,
		StageStage2Ignition, StageMECO, StageOrbitInsertion,
	}
}

// Result is the outcome of a full launch attempt.
type Result struct {
	Success      bool
	FailedStage  Stage
	StagesPassed []Stage
}

// Message is a human-readable summary of the result.
func (r Result) Message() string {
	if r.Success {
		return "Success! Rocket reached Low Earth Orbit!"
	}
	return "Failure during " + r.FailedStage.Description() + ". Rocket exploded."
}

// Simulate runs a full launch attempt, stage by stage, rolling against
// rng. Deterministic given the same rng state — the same WorldSeed
// stream always produces the same outcome.
func Simulate(rng *rand.Rand) Result {
	return SimulateWithCallback(rng, nil)
}

// SimulateWithCallback runs a full launch attempt like Simulate, invoking
// onStage (if non-nil) before rolling each stage, so a caller can report
// progress as the sequence unfolds.
func SimulateWithCallback(rng *rand.Rand, onStage func(Stage)) Result {
	stage := StageIgnition
	var passed []Stage
	for {
		if onStage != nil {
			onStage(stage)
		}
		if rng.Float64() <= stage.FailureProbability() {
			return Result{Success: false, FailedStage: stage, StagesPassed: passed}
		}
		passed = append(passed, stage)
		next, ok := stage.Next()
		if !ok {
			return Result{Success: true, StagesPassed: passed}
		}
		stage = next
	}
}
