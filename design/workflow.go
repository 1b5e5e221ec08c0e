// Package design implements the design lineage, workflow state machine,
// and flaw engine shared by engine and rocket designs.
package design

import "fmt"

// Work totals and rates shared by every design's workflow.
const (
	DetailedEngineeringWork = 30.0
	TestingWork             = 30.0
	FlawFixWork             = 14.0

	// HardwareDecayRate is the daily multiplicative decay applied to a
	// design's hardware boost while Testing or Fixing. Pure exponential,
	// no floor: repeated decay approaches zero but never reaches it.
	HardwareDecayRate = 0.004
)

// Status tags which phase of the workflow a design is in. Fields that
// don't apply to the current Status are left at their zero value, the
// idiomatic Go stand-in for a Rust enum carrying per-variant data.
type Status uint8

const (
	StatusSpecification Status = iota
	StatusEngineering
	StatusTesting
	StatusFixing
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusSpecification:
		return "Specification"
	case StatusEngineering:
		return "Engineering"
	case StatusTesting:
		return "Testing"
	case StatusFixing:
		return "Fixing"
	case StatusComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// CanEdit reports whether a design in this status may still have its
// specification changed.
func (s Status) CanEdit() bool {
	return s == StatusSpecification
}

// CanLaunch reports whether a design in this status is eligible for
// manufacturing and flight. Testing and Fixing designs can still launch,
// with whatever flaws are already known.
func (s Status) CanLaunch() bool {
	return s == StatusComplete || s == StatusTesting || s == StatusFixing
}

// IsWorking reports whether teams assigned to this design are doing
// billable work this tick.
func (s Status) IsWorking() bool {
	return s == StatusEngineering || s == StatusTesting || s == StatusFixing
}

// Workflow is the shared state machine for engine and rocket designs:
// specification -> engineering -> testing <-> fixing -> complete is never
// reached automatically — Testing simply keeps re-cycling, since repeated
// testing is how remaining flaws are found.
type Workflow struct {
	Status Status

	// Progress/Total apply to Engineering, Testing, and Fixing.
	Progress float64
	Total    float64

	// FlawName/FlawIndex apply to Fixing only.
	FlawName  string
	FlawIndex int

	ActiveFlaws []Flaw
	FixedFlaws  []Flaw

	FlawsGenerated       bool
	TestingWorkCompleted float64
	HardwareBoost        float64
}

// NewWorkflow returns a workflow in Specification with a fresh hardware
// boost of 1.0.
func NewWorkflow() *Workflow {
	return &Workflow{
		Status:        StatusSpecification,
		HardwareBoost: 1.0,
	}
}

// HardwareMultiplier returns the current hardware-test speed multiplier.
func (w *Workflow) HardwareMultiplier() float64 {
	return w.HardwareBoost
}

// DecayHardwareBoost applies one day of exponential decay.
func (w *Workflow) DecayHardwareBoost() {
	w.HardwareBoost *= 1.0 - HardwareDecayRate
}

// ResetHardwareBoost restores a fresh boost after a hardware test or launch.
func (w *Workflow) ResetHardwareBoost() {
	w.HardwareBoost = 1.0
}

// AddLaunchTestingWork credits testing work earned by flying the design
// and resets the hardware boost, as a real flight is itself a hardware test.
func (w *Workflow) AddLaunchTestingWork(work float64) {
	w.TestingWorkCompleted += work
	w.ResetHardwareBoost()
}

// ProgressFraction returns progress as a fraction of total, 0 in
// Specification and 1 in Complete.
func (w *Workflow) ProgressFraction() float64 {
	switch w.Status {
	case StatusSpecification:
		return 0.0
	case StatusComplete:
		return 1.0
	default:
		if w.Total > 0 {
			return w.Progress / w.Total
		}
		return 0.0
	}
}

// DisplayName includes the flaw name when Fixing.
func (w *Workflow) DisplayName() string {
	if w.Status == StatusFixing {
		return fmt.Sprintf("Fixing: %s", w.FlawName)
	}
	return w.Status.String()
}

// SubmitToEngineering moves a Specification design into Engineering.
// Returns false if the design isn't in Specification.
func (w *Workflow) SubmitToEngineering() bool {
	if w.Status != StatusSpecification {
		return false
	}
	w.Status = StatusEngineering
	w.Progress = 0
	w.Total = DetailedEngineeringWork
	return true
}

// AdvanceWork applies one day's worth of team efficiency to the current
// work phase. Returns true if the phase's work total was reached.
func (w *Workflow) AdvanceWork(efficiency float64) bool {
	switch w.Status {
	case StatusEngineering:
		w.Progress += efficiency
		if w.Progress >= w.Total {
			w.Status = StatusTesting
			w.Progress = 0
			w.Total = TestingWork
			return true
		}
	case StatusTesting:
		w.Progress += efficiency
		if w.Progress >= w.Total {
			// Testing cycle complete - reset for the next cycle. Staying in
			// Testing is deliberate: there is no automatic path to Complete.
			w.Progress = 0
			w.Total = TestingWork
			return true
		}
	case StatusFixing:
		w.Progress += efficiency
		if w.Progress >= w.Total {
			return true
		}
	}
	return false
}

// StartFixingFlaw transitions from Testing to Fixing a specific
// discovered, unfixed flaw. Returns false if the preconditions aren't met.
func (w *Workflow) StartFixingFlaw(flawIndex int) bool {
	if w.Status != StatusTesting {
		return false
	}
	if flawIndex < 0 || flawIndex >= len(w.ActiveFlaws) {
		return false
	}
	flaw := w.ActiveFlaws[flawIndex]
	if !flaw.Discovered || flaw.Fixed {
		return false
	}
	w.Status = StatusFixing
	w.FlawName = flaw.Name
	w.FlawIndex = flawIndex
	w.Progress = 0
	w.Total = FlawFixWork
	return true
}

// CompleteFlawFix moves the fixed flaw from ActiveFlaws to FixedFlaws and
// returns to Testing with a fresh cycle. Returns "", false if not Fixing.
func (w *Workflow) CompleteFlawFix() (string, bool) {
	if w.Status != StatusFixing {
		return "", false
	}
	flawName := w.FlawName
	flawIndex := w.FlawIndex

	if flawIndex < len(w.ActiveFlaws) {
		flaw := w.ActiveFlaws[flawIndex]
		w.ActiveFlaws = append(w.ActiveFlaws[:flawIndex], w.ActiveFlaws[flawIndex+1:]...)
		flaw.Fixed = true
		w.FixedFlaws = append(w.FixedFlaws, flaw)
	}

	w.Status = StatusTesting
	w.Progress = 0
	w.Total = TestingWork
	return flawName, true
}

// GetNextUnfixedFlaw returns the index of the first discovered, unfixed
// flaw, or -1 if there is none.
func (w *Workflow) GetNextUnfixedFlaw() int {
	for i, f := range w.ActiveFlaws {
		if f.Discovered && !f.Fixed {
			return i
		}
	}
	return -1
}

// DiscoverFlawsOnCycleComplete rolls discovery for every undiscovered
// flaw using rng, returning the names of any newly discovered flaws.
func (w *Workflow) DiscoverFlawsOnCycleComplete(rng RandSource) []string {
	var discovered []string
	for i := range w.ActiveFlaws {
		f := &w.ActiveFlaws[i]
		if f.Discovered || f.Fixed {
			continue
		}
		if rng.Float64() < f.DiscoveryProbability() {
			f.Discovered = true
			discovered = append(discovered, f.Name)
		}
	}
	return discovered
}

// GetDiscoveredUnfixedCount counts flaws known but not yet fixed.
func (w *Workflow) GetDiscoveredUnfixedCount() int {
	n := 0
	for _, f := range w.ActiveFlaws {
		if f.Discovered && !f.Fixed {
			n++
		}
	}
	return n
}

// GetUnfixedFlawNames returns the names of flaws known but not yet fixed.
func (w *Workflow) GetUnfixedFlawNames() []string {
	var names []string
	for _, f := range w.ActiveFlaws {
		if f.Discovered && !f.Fixed {
			names = append(names, f.Name)
		}
	}
	return names
}

// GetFixedFlawNames returns the names of every flaw fixed so far.
func (w *Workflow) GetFixedFlawNames() []string {
	names := make([]string, len(w.FixedFlaws))
	for i, f := range w.FixedFlaws {
		names[i] = f.Name
	}
	return names
}

// RandSource is the minimal random interface the workflow needs; satisfied
// by *rand.Rand.
type RandSource interface {
	Float64() float64
}
