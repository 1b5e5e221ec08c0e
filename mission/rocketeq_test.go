package mission

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveDeltaVSingleStageAppliesGravityLoss(t *testing.T) {
	stage := StageInput{WetMassKg: 500_000, DryMassKg: 50_000, ExhaustVelocity: 3000}
	payload := 5_000.0

	result := SolveDeltaV([]StageInput{stage}, payload)

	raw := stage.ExhaustVelocity * math.Log((stage.WetMassKg+payload)/(stage.DryMassKg+payload))
	want := raw * (1.0 - gravityLossCoefficient(0))

	require.Len(t, result.PerStageDeltaV, 1)
	assert.InDelta(t, want, result.PerStageDeltaV[0], 1e-6)
	assert.InDelta(t, want, result.TotalDeltaV, 1e-6)
	assert.Equal(t, stage.WetMassKg-stage.DryMassKg, result.PropellantRemaining.At(0, 0))
}

func TestSolveDeltaVBoosterAddsToFirstCoreStage(t *testing.T) {
	core := StageInput{WetMassKg: 400_000, DryMassKg: 40_000, ExhaustVelocity: 3000}
	booster := StageInput{WetMassKg: 100_000, DryMassKg: 10_000, ExhaustVelocity: 2800, IsBooster: true}

	result := SolveDeltaV([]StageInput{core, booster}, 5_000)

	assert.Equal(t, 0.0, result.PropellantRemaining.At(1, 0), "a booster's propellant isn't tracked as a sequential stage")
	assert.Greater(t, result.PerStageDeltaV[0], 0.0)
	assert.Equal(t, result.PerStageDeltaV[0], result.TotalDeltaV, "booster contributes only to the core stage, no independent stage of its own")
}

func TestSolveDeltaVMultiStageAccumulatesFromTopDown(t *testing.T) {
	upper := StageInput{WetMassKg: 50_000, DryMassKg: 5_000, ExhaustVelocity: 3200}
	lower := StageInput{WetMassKg: 400_000, DryMassKg: 40_000, ExhaustVelocity: 3000}

	result := SolveDeltaV([]StageInput{lower, upper}, 5_000)

	require.Len(t, result.PerStageDeltaV, 2)
	assert.Greater(t, result.PerStageDeltaV[0], 0.0)
	assert.Greater(t, result.PerStageDeltaV[1], 0.0)
	assert.InDelta(t, result.PerStageDeltaV[0]+result.PerStageDeltaV[1], result.TotalDeltaV, 1e-9)
}

func TestGravityLossCoefficientClampsToLastEntryBeyondTableLength(t *testing.T) {
	assert.Equal(t, gravityLossCoefficients[len(gravityLossCoefficients)-1], gravityLossCoefficient(99))
}

func TestSolveDeltaVForTargetBisectsToTarget(t *testing.T) {
	propellant, ok := SolveDeltaVForTarget(40_000, 3000, 5_000, 9000, 400_000)
	require.True(t, ok)

	m0 := 40_000 + propellant + 5_000
	mf := 40_000 + 5_000
	achieved := 3000 * math.Log(m0/mf)
	assert.InDelta(t, 9000.0, achieved, 1.0)
}

func TestSolveDeltaVForTargetUnreachableReturnsFalse(t *testing.T) {
	_, ok := SolveDeltaVForTarget(40_000, 3000, 5_000, 1_000_000, 10_000)
	assert.False(t, ok, "even the max propellant load can't reach this target")
}
