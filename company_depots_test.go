package aerocorp

import (
	"testing"

	"github.com/aclough/rocket-game-sub000/flight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDepotDesignComputesDryMassAndFloorSpace(t *testing.T) {
	c := NewCompany(1)
	idx := c.CreateDepotDesign("Small Depot", 10_000, false)

	d := c.DepotDesigns[idx]
	assert.Equal(t, 500.0, d.DryMassKg) // 5% of 10,000
	assert.Equal(t, 1, d.FloorSpaceRequired())
}

func TestCreateDepotDesignInsulatedAddsMassAndCost(t *testing.T) {
	c := NewCompany(1)
	plainIdx := c.CreateDepotDesign("Plain", 60_000, false)
	insulatedIdx := c.CreateDepotDesign("Insulated", 60_000, true)

	assert.Greater(t, c.DepotDesigns[insulatedIdx].DryMassKg, c.DepotDesigns[plainIdx].DryMassKg)
	assert.Greater(t, c.DepotDesigns[insulatedIdx].MaterialCost(), c.DepotDesigns[plainIdx].MaterialCost())
	assert.Equal(t, 2, c.DepotDesigns[insulatedIdx].FloorSpaceRequired(), "capacity over 50,000 needs 2 units")
}

func TestBuildDepotUnitRequiresFloorSpace(t *testing.T) {
	c := NewCompany(1)
	idx := c.CreateDepotDesign("Small Depot", 10_000, false)
	_, err := c.BuildDepotUnit(idx)
	assert.True(t, IsViolation(err))
}

func TestBuildDepotUnitDebitsCostAndAddsToInventory(t *testing.T) {
	c := NewCompany(1)
	idx := c.CreateDepotDesign("Small Depot", 10_000, false)
	buyAndFinishFloorSpace(c, 5)

	before := c.Money
	serial, err := c.BuildDepotUnit(idx)
	require.NoError(t, err)
	assert.NotZero(t, serial)
	assert.Less(t, c.Money, before)
	require.Len(t, c.DepotInventory, 1)
	assert.Equal(t, serial, c.DepotInventory[0].Serial)
}

func TestBuildDepotUnitInvalidDesignIndex(t *testing.T) {
	c := NewCompany(1)
	_, err := c.BuildDepotUnit(99)
	assert.True(t, IsViolation(err))
}

func TestLaunchDepotMissionDepotNotInInventory(t *testing.T) {
	c := NewCompany(1)
	_, rocketID := lowEarthOrbitCapableRocket(c)
	c.RocketInventory[rocketID] = 1

	_, _, err := c.LaunchDepotMission(42, "leo", rocketID)
	assert.True(t, IsViolation(err))
}

func TestLaunchDepotMissionAndDeployOnArrival(t *testing.T) {
	c := NewCompany(1)
	idx := c.CreateDepotDesign("Small Depot", 10_000, false)
	buyAndFinishFloorSpace(c, 5)
	serial, err := c.BuildDepotUnit(idx)
	require.NoError(t, err)

	_, rocketID := lowEarthOrbitCapableRocket(c)
	c.RocketInventory[rocketID] = 1

	flightID, events, err := c.LaunchDepotMission(serial, "leo", rocketID)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	st := c.Flights[flightID]
	if st.Status == flight.StatusFailed {
		_, ok := c.ActiveDepotMissions[flightID]
		assert.False(t, ok, "a failed launch never registers a depot mission")
		return
	}

	assert.Empty(t, c.DepotInventory)
	c.tickFlights()
	require.NoError(t, c.CompleteDepotArrival(flightID))

	depot, ok := c.Infrastructure.DepotAt("leo")
	require.True(t, ok)
	assert.Equal(t, 10_000.0, depot.CapacityKg)
	_, stillActive := c.ActiveDepotMissions[flightID]
	assert.False(t, stillActive)
}

func TestCompleteDepotArrivalInvalidFlight(t *testing.T) {
	c := NewCompany(1)
	err := c.CompleteDepotArrival(999)
	assert.True(t, IsViolation(err))
}

func TestCompleteDepotArrivalFlightNotCarryingDepot(t *testing.T) {
	c := NewCompany(1)
	_, rocketID := lowEarthOrbitCapableRocket(c)
	c.RocketInventory[rocketID] = 1

	idx := c.CreateDepotDesign("D", 10_000, false)
	buyAndFinishFloorSpace(c, 5)
	serial, err := c.BuildDepotUnit(idx)
	require.NoError(t, err)

	flightID, _, err := c.LaunchDepotMission(serial, "leo", rocketID)
	require.NoError(t, err)

	st := c.Flights[flightID]
	if st.Status == flight.StatusFailed {
		return
	}

	delete(c.ActiveDepotMissions, flightID)
	c.tickFlights()
	err = c.CompleteDepotArrival(flightID)
	assert.True(t, IsViolation(err))
}
