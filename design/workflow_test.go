package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand satisfies RandSource with a constant Float64 value, for
// deterministic discovery-roll assertions.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestWorkflowSubmitToEngineering(t *testing.T) {
	w := NewWorkflow()
	assert.True(t, w.Status.CanEdit())

	ok := w.SubmitToEngineering()
	require.True(t, ok)
	assert.Equal(t, StatusEngineering, w.Status)
	assert.Equal(t, DetailedEngineeringWork, w.Total)
	assert.False(t, w.Status.CanEdit())

	assert.False(t, w.SubmitToEngineering(), "cannot resubmit once past Specification")
}

func TestWorkflowAdvanceWorkEngineeringToTesting(t *testing.T) {
	w := NewWorkflow()
	w.SubmitToEngineering()

	done := w.AdvanceWork(DetailedEngineeringWork / 2)
	assert.False(t, done)
	assert.Equal(t, StatusEngineering, w.Status)

	done = w.AdvanceWork(DetailedEngineeringWork / 2)
	assert.True(t, done)
	assert.Equal(t, StatusTesting, w.Status)
	assert.Equal(t, 0.0, w.Progress)
	assert.Equal(t, TestingWork, w.Total)
}

func TestWorkflowTestingRecyclesRatherThanCompletes(t *testing.T) {
	w := NewWorkflow()
	w.SubmitToEngineering()
	w.AdvanceWork(DetailedEngineeringWork)
	require.Equal(t, StatusTesting, w.Status)

	done := w.AdvanceWork(TestingWork)
	assert.True(t, done, "a completed testing cycle reports done")
	assert.Equal(t, StatusTesting, w.Status, "testing never auto-completes to StatusComplete")
	assert.Equal(t, 0.0, w.Progress)
}

func TestWorkflowStartFixingFlawRequiresDiscoveredUnfixed(t *testing.T) {
	w := NewWorkflow()
	w.SubmitToEngineering()
	w.AdvanceWork(DetailedEngineeringWork)
	w.ActiveFlaws = []Flaw{{Name: "Leaky Valve"}}

	assert.False(t, w.StartFixingFlaw(0), "flaw not yet discovered")

	w.ActiveFlaws[0].Discovered = true
	ok := w.StartFixingFlaw(0)
	require.True(t, ok)
	assert.Equal(t, StatusFixing, w.Status)
	assert.Equal(t, "Leaky Valve", w.FlawName)
	assert.Equal(t, FlawFixWork, w.Total)

	assert.False(t, w.StartFixingFlaw(5), "out of range index")
}

func TestWorkflowCompleteFlawFixReturnsToTesting(t *testing.T) {
	w := NewWorkflow()
	w.SubmitToEngineering()
	w.AdvanceWork(DetailedEngineeringWork)
	w.ActiveFlaws = []Flaw{{Name: "Leaky Valve", Discovered: true}}
	w.StartFixingFlaw(0)

	name, ok := w.CompleteFlawFix()
	require.True(t, ok)
	assert.Equal(t, "Leaky Valve", name)
	assert.Equal(t, StatusTesting, w.Status)
	assert.Empty(t, w.ActiveFlaws)
	require.Len(t, w.FixedFlaws, 1)
	assert.True(t, w.FixedFlaws[0].Fixed)

	_, ok = w.CompleteFlawFix()
	assert.False(t, ok, "not Fixing anymore")
}

func TestWorkflowHardwareBoostDecaysAndResets(t *testing.T) {
	w := NewWorkflow()
	assert.Equal(t, 1.0, w.HardwareBoost)

	w.DecayHardwareBoost()
	assert.Less(t, w.HardwareBoost, 1.0)
	assert.Greater(t, w.HardwareBoost, 0.0)

	w.ResetHardwareBoost()
	assert.Equal(t, 1.0, w.HardwareBoost)

	w.AddLaunchTestingWork(30.0)
	assert.Equal(t, 30.0, w.TestingWorkCompleted)
	assert.Equal(t, 1.0, w.HardwareBoost, "a launch is itself a hardware test")
}

func TestWorkflowDiscoverFlawsOnCycleComplete(t *testing.T) {
	w := NewWorkflow()
	w.ActiveFlaws = []Flaw{
		{Name: "A", TestingModifier: 1.0},
		{Name: "B", TestingModifier: 1.0, Discovered: true},
		{Name: "C", TestingModifier: 1.0, Fixed: true},
	}

	discovered := w.DiscoverFlawsOnCycleComplete(fixedRand(0.0))

	assert.Equal(t, []string{"A"}, discovered, "only the undiscovered, unfixed flaw rolls")
	assert.True(t, w.ActiveFlaws[0].Discovered)
}

func TestWorkflowGetNextUnfixedFlaw(t *testing.T) {
	w := NewWorkflow()
	assert.Equal(t, -1, w.GetNextUnfixedFlaw())

	w.ActiveFlaws = []Flaw{
		{Name: "A", Discovered: false},
		{Name: "B", Discovered: true, Fixed: true},
		{Name: "C", Discovered: true},
	}
	assert.Equal(t, 2, w.GetNextUnfixedFlaw())
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusSpecification.CanEdit())
	assert.False(t, StatusEngineering.CanEdit())

	assert.True(t, StatusComplete.CanLaunch())
	assert.True(t, StatusTesting.CanLaunch())
	assert.True(t, StatusFixing.CanLaunch())
	assert.False(t, StatusEngineering.CanLaunch())
	assert.False(t, StatusSpecification.CanLaunch())

	assert.True(t, StatusEngineering.IsWorking())
	assert.True(t, StatusTesting.IsWorking())
	assert.True(t, StatusFixing.IsWorking())
	assert.False(t, StatusSpecification.IsWorking())
	assert.False(t, StatusComplete.IsWorking())
}
