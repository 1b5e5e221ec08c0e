package aerocorp

import (
	"github.com/aclough/rocket-game-sub000/flight"
	"github.com/aclough/rocket-game-sub000/launch"
	"github.com/aclough/rocket-game-sub000/mission"
)

// CreateDepotDesign registers a new fuel-depot blueprint and returns its
// design index.
func (c *Company) CreateDepotDesign(name string, capacityKg float64, insulated bool) int {
	d := DepotDesign{
		Name:       name,
		CapacityKg: capacityKg,
		DryMassKg:  depotDryMassKg(capacityKg, insulated),
		Insulated:  insulated,
	}
	c.DepotDesigns = append(c.DepotDesigns, d)
	return len(c.DepotDesigns) - 1
}

// BuildDepotUnit manufactures one unit of a depot design straight into
// inventory, debiting its material cost and requiring floor space for the
// duration of the call — depots carry no engineering workflow, so
// construction is immediate rather than queued like engine and rocket
// orders.
func (c *Company) BuildDepotUnit(designIndex int) (uint32, error) {
	if designIndex < 0 || designIndex >= len(c.DepotDesigns) {
		return 0, violation("Invalid depot design")
	}
	d := c.DepotDesigns[designIndex]
	if !c.Manufacturing.CanStartOrderWithSpace(d.FloorSpaceRequired()) {
		return 0, violation("Not enough floor space")
	}
	cost := d.MaterialCost()
	if cost > c.Money {
		return 0, violation("Not enough funds for materials")
	}
	c.Money -= cost
	serial := c.nextDepotSerial
	c.nextDepotSerial++
	c.DepotInventory = append(c.DepotInventory, depotInventoryItem{DesignIndex: designIndex, Serial: serial})
	return serial, nil
}

// LaunchDepotMission launches a rocket from inventory carrying a depot
// unit from inventory to a destination, to be deployed into
// Infrastructure on arrival.
func (c *Company) LaunchDepotMission(serial uint32, destinationID string, rocketDesignID int) (uint32, []Event, error) {
	invIdx := -1
	for i, item := range c.DepotInventory {
		if item.Serial == serial {
			invIdx = i
			break
		}
	}
	if invIdx == -1 {
		return 0, nil, violation("Depot not found in inventory")
	}
	designIndex := c.DepotInventory[invIdx].DesignIndex
	d := c.DepotDesigns[designIndex]

	lineage, ok := c.RocketLineages[rocketDesignID]
	if !ok {
		return 0, nil, violation("Invalid rocket design")
	}
	if c.RocketInventory[rocketDesignID] == 0 {
		return 0, nil, violation("No assembled rocket in inventory")
	}

	plan, ok := mission.FromShortestPath(c.DeltaVMap, "earth_surface", destinationID)
	if !ok {
		return 0, nil, violation("Unknown destination")
	}
	rev, ok := lineage.LatestRevision()
	if !ok {
		return 0, nil, violation("No frozen revision to fly")
	}
	solved := mission.SolveDeltaV(stageInputsFrom(rev.Snapshot.Stages), d.DryMassKg)
	if solved.TotalDeltaV < plan.TotalDeltaV() {
		return 0, nil, violation("Insufficient delta-v for destination")
	}
	if !c.LaunchSite.CanLaunchRocket(rev.Snapshot.WetMassKg()) {
		return 0, nil, violation("Rocket exceeds launch pad capacity")
	}

	c.RocketInventory[rocketDesignID]--
	c.DepotInventory = append(c.DepotInventory[:invIdx], c.DepotInventory[invIdx+1:]...)

	flightID := c.nextFlightID
	c.nextFlightID++

	var events []Event
	rng := c.Seed.QueryRNG("launch-depot-" + destinationID)
	result := launch.Simulate(rng)
	events = append(events, Event{Kind: EventLaunchAttempted, FlightID: flightID, Message: result.Message()})

	st := flight.FromDesign(flightID, rocketDesignID, rev.Number, rev.Snapshot.Stages, destinationID, d.DryMassKg, plan)
	c.Flights[flightID] = st
	c.flightPropellantRemaining[flightID] = remainingPropellantByStage(solved)

	if result.Success {
		c.ActiveDepotMissions[flightID] = depotMission{DesignIndex: designIndex, Serial: serial, Destination: destinationID}
		lineage.Head.Workflow.AddLaunchTestingWork(30.0)
	} else {
		lineage.Head.Workflow.AddLaunchTestingWork(20.0)
		st.Fail()
		events = append(events, Event{Kind: EventFlightFailed, FlightID: flightID})
	}

	return flightID, events, nil
}

// CompleteDepotArrival deploys an arrived depot-carrying flight's payload
// into Infrastructure at its destination.
func (c *Company) CompleteDepotArrival(flightID uint32) error {
	st, ok := c.Flights[flightID]
	if !ok {
		return violation("Invalid flight")
	}
	if st.Status != flight.StatusCompleted {
		return violation("Flight has not arrived")
	}
	if !c.deployDepotIfCarried(flightID) {
		return violation("Flight is not carrying a depot")
	}
	return nil
}

// deployDepotIfCarried deploys flightID's depot payload into
// Infrastructure if it's carrying one, reporting whether it did. Callers
// are expected to have already confirmed the flight has arrived.
func (c *Company) deployDepotIfCarried(flightID uint32) bool {
	dm, ok := c.ActiveDepotMissions[flightID]
	if !ok {
		return false
	}
	d := c.DepotDesigns[dm.DesignIndex]
	c.Infrastructure.DeployDepot(dm.Destination, d.CapacityKg)
	delete(c.ActiveDepotMissions, flightID)
	return true
}
