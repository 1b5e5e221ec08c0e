package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineDesignCanModifyLocksAfterSubmission(t *testing.T) {
	e := NewEngineDesign(FuelKerolox)
	assert.True(t, e.CanModify())

	require.True(t, e.SetFuel(FuelHydrolox))
	require.True(t, e.SetScale(2.0))

	e.Workflow.SubmitToEngineering()
	assert.False(t, e.CanModify())

	assert.False(t, e.SetFuel(FuelSolid), "fuel change must be rejected once locked")
	assert.False(t, e.SetScale(1.5), "scale change must be rejected once locked")
	assert.Equal(t, FuelHydrolox, e.Fuel)
	assert.Equal(t, 2.0, e.Scale)
}

func TestEngineDesignSetScaleClamps(t *testing.T) {
	e := NewEngineDesign(FuelKerolox)

	e.SetScale(100.0)
	assert.Equal(t, EngineScaleMax, e.Scale)

	e.SetScale(-5.0)
	assert.Equal(t, EngineScaleMin, e.Scale)
}

func TestEngineSnapshotScalesLinearly(t *testing.T) {
	e := NewEngineDesign(FuelKerolox)
	e.SetScale(2.0)

	snap := e.Snapshot(3, "Merlin")
	base := fuelBaseStats[FuelKerolox]

	assert.Equal(t, base.massKg*2.0, snap.MassKg)
	assert.Equal(t, base.thrustKN*2.0, snap.ThrustKN)
	assert.Equal(t, base.baseCost*2.0, snap.BaseCost)
	assert.Equal(t, base.exhaustVelocity, snap.ExhaustVelocity)
	assert.Equal(t, 3, snap.EngineDesignID)
	assert.Equal(t, "Merlin", snap.Name)
}

func TestEngineDesignCloneIsIndependent(t *testing.T) {
	e := NewEngineDesign(FuelKerolox)
	e.Workflow.ActiveFlaws = []Flaw{{Name: "Turbopump Bearing Defect"}}

	clone := e.Clone()
	clone.Fuel = FuelSolid
	clone.Workflow.ActiveFlaws[0].Name = "mutated"

	assert.Equal(t, FuelKerolox, e.Fuel)
	assert.Equal(t, "Turbopump Bearing Defect", e.Workflow.ActiveFlaws[0].Name)
}

func TestStageFailureRateGrowsWithEngineCount(t *testing.T) {
	snap := EngineSnapshot{}

	single := snap.StageFailureRate(1, 0.01)
	quad := snap.StageFailureRate(4, 0.01)

	assert.InDelta(t, 0.01, single, 1e-9)
	assert.Greater(t, quad, single)
	assert.Less(t, quad, 1.0)
}
