// Package flight implements the flight propagator, launch site, and
// cargo manifest.
package flight

import (
	"github.com/aclough/rocket-game-sub000/design"
	"github.com/aclough/rocket-game-sub000/mission"
)

// Status is the lifecycle of a flight once it has left the ground.
type Status uint8

const (
	StatusInTransit Status = iota
	StatusAtLocation
	StatusCompleted
	StatusFailed
)

// StageState is the per-stage runtime state of a flight: propellant
// remaining and whether the stage is still attached (a burned-out stage
// is jettisoned).
type StageState struct {
	StageIndex          int
	PropellantRemaining float64
	Attached            bool
}

// State is a single flight in progress: the rocket it's flying, its
// position along the mission plan, and per-stage propellant state.
type State struct {
	ID                 uint32
	LineageID          int
	RevisionNumber     uint32
	CurrentLocation    string
	Destination        string
	Stages             []StageState
	PayloadMassKg      float64
	Status             Status
	Plan               mission.MissionPlan
	CurrentLeg         int
	DaysIntoCurrentLeg uint32
}

// FromDesign initializes a flight from a rocket design's revision
// snapshot: every stage starts attached with full propellant.
func FromDesign(id uint32, lineageID int, revision uint32, stages []design.Stage, destination string, payloadMassKg float64, plan mission.MissionPlan) *State {
	stageStates := make([]StageState, len(stages))
	for i, s := range stages {
		stageStates[i] = StageState{StageIndex: i, PropellantRemaining: s.PropellantKg, Attached: true}
	}
	return &State{
		ID:              id,
		LineageID:       lineageID,
		RevisionNumber:  revision,
		CurrentLocation: "earth_surface",
		Destination:     destination,
		Stages:          stageStates,
		PayloadMassKg:   payloadMassKg,
		Status:          StatusInTransit,
		Plan:            plan,
	}
}

// LegCount is the number of legs in the flight's mission plan.
func (s *State) LegCount() int {
	return s.Plan.LegCount()
}

// AdvanceDay propagates the flight by one day along its mission plan. A
// leg with zero transit days (an instantaneous burn) collapses: the
// flight crosses it the same day it starts, rather than spending a tick
// "in transit" on a leg that takes no time. Returns true if the flight
// reached its final destination this tick.
func (s *State) AdvanceDay() bool {
	if s.Status != StatusInTransit {
		return false
	}
	if s.CurrentLeg < len(s.Plan.Legs) {
		s.DaysIntoCurrentLeg++
	}
	for s.CurrentLeg < len(s.Plan.Legs) {
		leg := s.Plan.Legs[s.CurrentLeg]
		if s.DaysIntoCurrentLeg < leg.TransitDays {
			break
		}
		s.CurrentLocation = leg.To
		s.CurrentLeg++
		s.DaysIntoCurrentLeg = 0
	}
	if s.CurrentLeg >= len(s.Plan.Legs) {
		s.Status = StatusAtLocation
		return true
	}
	return false
}

// Complete finalizes a successfully arrived flight, updating per-stage
// propellant from the given remaining-propellant figures (indexed by
// stage). Stages with no entry burned out completely and are jettisoned.
func (s *State) Complete(remaining map[int]float64) {
	s.Status = StatusCompleted
	s.CurrentLocation = s.Destination
	for i := range s.Stages {
		if kg, ok := remaining[s.Stages[i].StageIndex]; ok {
			s.Stages[i].PropellantRemaining = kg
		} else {
			s.Stages[i].PropellantRemaining = 0
			s.Stages[i].Attached = false
		}
	}
}

// Fail marks a flight as failed in place; its location does not advance.
func (s *State) Fail() {
	s.Status = StatusFailed
}

// TotalPropellantRemainingKg sums propellant across attached stages.
func (s *State) TotalPropellantRemainingKg() float64 {
	total := 0.0
	for _, st := range s.Stages {
		if st.Attached {
			total += st.PropellantRemaining
		}
	}
	return total
}

// IsActive reports whether the flight is still underway.
func (s *State) IsActive() bool {
	return s.Status == StatusInTransit || s.Status == StatusAtLocation
}
