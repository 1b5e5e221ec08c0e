package design

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kerolox(id int) EngineSnapshot {
	e := NewEngineDesign(FuelKerolox)
	return e.Snapshot(id, "Merlin")
}

func TestStageDeltaVMatchesTsiolkovsky(t *testing.T) {
	s := Stage{Engine: kerolox(1), EngineCount: 1, PropellantKg: 1000.0}
	payload := 200.0

	got := s.DeltaV(payload)
	m0 := s.WetMassKg() + payload
	mf := s.DryMassKg() + payload
	want := s.Engine.ExhaustVelocity * math.Log(m0/mf)

	assert.InDelta(t, want, got, 1e-9)
}

func TestRocketDesignTotalDeltaVSumsStagesTopDown(t *testing.T) {
	r := NewRocketDesign()
	r.Stages = []Stage{
		{Engine: kerolox(1), EngineCount: 9, PropellantKg: 400_000},
		{Engine: kerolox(2), EngineCount: 1, PropellantKg: 90_000},
	}

	payload := 5_000.0
	total := r.TotalDeltaV(payload)

	upper := r.Stages[1]
	upperDv := upper.DeltaV(payload)
	lower := r.Stages[0]
	lowerDv := lower.DeltaV(payload + upper.WetMassKg())

	assert.InDelta(t, upperDv+lowerDv, total, 1e-6)
	assert.Greater(t, total, 0.0)
}

func TestRocketDesignCanModifyLocksAfterSubmission(t *testing.T) {
	r := NewRocketDesign()
	assert.True(t, r.CanModify())

	r.Workflow.SubmitToEngineering()
	assert.False(t, r.CanModify())
}

func TestEnginesRequiredSumsAcrossSharedStages(t *testing.T) {
	r := NewRocketDesign()
	shared := kerolox(1)
	r.Stages = []Stage{
		{Engine: shared, EngineCount: 9},
		{Engine: shared, EngineCount: 1},
		{Engine: kerolox(2), EngineCount: 1},
	}

	required := r.EnginesRequired()
	require.Len(t, required, 2)
	assert.Equal(t, EngineRequired{EngineDesignID: 1, Quantity: 10}, required[0])
	assert.Equal(t, EngineRequired{EngineDesignID: 2, Quantity: 1}, required[1])
}

func TestRocketDesignCloneIsIndependent(t *testing.T) {
	r := NewRocketDesign()
	r.Stages = []Stage{{Engine: kerolox(1), EngineCount: 9}}
	r.Workflow.ActiveFlaws = []Flaw{{Name: "Structural Resonance"}}

	clone := r.Clone()
	clone.Stages[0].EngineCount = 1
	clone.Workflow.ActiveFlaws[0].Name = "mutated"

	assert.Equal(t, 9, r.Stages[0].EngineCount)
	assert.Equal(t, "Structural Resonance", r.Workflow.ActiveFlaws[0].Name)
}

func TestStageDryWetMassKg(t *testing.T) {
	s := Stage{Engine: kerolox(1), EngineCount: 9, PropellantKg: 400_000}
	assert.Equal(t, s.Engine.MassKg*9, s.DryMassKg())
	assert.Equal(t, s.DryMassKg()+400_000, s.WetMassKg())
}
