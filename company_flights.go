package aerocorp

import (
	"sort"

	"github.com/aclough/rocket-game-sub000/flight"
	"github.com/aclough/rocket-game-sub000/launch"
	"github.com/aclough/rocket-game-sub000/mission"
)

// LaunchContract launches a rocket from inventory carrying a selected
// contract's payload. Runs the launch-stage sequence immediately: a
// failure consumes the rocket and retains the contract for retry; a
// success puts the flight InTransit along the shortest-path mission plan
// to the contract's destination.
func (c *Company) LaunchContract(contractID uint32, rocketDesignID int) (uint32, []Event, error) {
	var contract *mission.Contract
	idx := -1
	for i := range c.AvailableContracts {
		if c.AvailableContracts[i].ID == contractID {
			contract = &c.AvailableContracts[i]
			idx = i
			break
		}
	}
	if contract == nil {
		return 0, nil, violation("Invalid contract")
	}

	lineage, ok := c.RocketLineages[rocketDesignID]
	if !ok {
		return 0, nil, violation("Invalid rocket design")
	}
	if c.RocketInventory[rocketDesignID] == 0 {
		return 0, nil, violation("No assembled rocket in inventory")
	}

	destinationID := contract.Destination.LocationID()
	plan, ok := mission.FromShortestPath(c.DeltaVMap, "earth_surface", destinationID)
	if !ok {
		return 0, nil, violation("Unknown destination")
	}

	rev, ok := lineage.LatestRevision()
	if !ok {
		return 0, nil, violation("No frozen revision to fly")
	}
	solved := mission.SolveDeltaV(stageInputsFrom(rev.Snapshot.Stages), contract.MassKg)
	if solved.TotalDeltaV < plan.TotalDeltaV() {
		return 0, nil, violation("Insufficient delta-v for destination")
	}
	if !c.LaunchSite.CanLaunchRocket(rev.Snapshot.WetMassKg()) {
		return 0, nil, violation("Rocket exceeds launch pad capacity")
	}

	c.RocketInventory[rocketDesignID]--

	flightID := c.nextFlightID
	c.nextFlightID++

	var events []Event
	rng := c.Seed.QueryRNG("launch-" + contract.PayloadName)
	result := launch.Simulate(rng)
	logLaunch(c.Logger, "flight", flightID, "success", result.Success, "stages_passed", len(result.StagesPassed))
	events = append(events, Event{Kind: EventLaunchAttempted, FlightID: flightID, Message: result.Message()})

	st := flight.FromDesign(flightID, rocketDesignID, rev.Number, rev.Snapshot.Stages, destinationID, contract.MassKg, plan)
	c.Flights[flightID] = st
	c.flightPropellantRemaining[flightID] = remainingPropellantByStage(solved)

	// A launch is itself a hardware test: it always credits testing work
	// and resets the hardware boost, 30 units on success, 20 on failure.
	if result.Success {
		c.ActiveContracts[contractID] = activeContract{FlightID: flightID, Reward: contract.Reward}
		c.AvailableContracts = append(c.AvailableContracts[:idx], c.AvailableContracts[idx+1:]...)
		lineage.Head.Workflow.AddLaunchTestingWork(30.0)
	} else {
		lineage.Head.Workflow.AddLaunchTestingWork(20.0)
		st.Fail()
		events = append(events, Event{Kind: EventFlightFailed, FlightID: flightID})
	}

	return flightID, events, nil
}

// tickFlights advances every in-transit flight by one day, collapsing
// zero-transit legs within the tick, and enqueues arrivals.
func (c *Company) tickFlights() []Event {
	var events []Event
	ids := make([]uint32, 0, len(c.Flights))
	for id := range c.Flights {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		st := c.Flights[id]
		if st.Status != flight.StatusInTransit {
			continue
		}
		arrived := st.AdvanceDay()
		if arrived {
			st.Complete(c.flightPropellantRemaining[id])
			delete(c.flightPropellantRemaining, id)
			logFlight(c.Logger, "flight", id, "event", "arrived", "destination", st.Destination)
			events = append(events, Event{Kind: EventFlightArrived, FlightID: id, Message: st.Destination})
		} else {
			events = append(events, Event{Kind: EventMissionLegCompleted, FlightID: id, LegIndex: st.CurrentLeg})
		}
	}
	return events
}

// CompleteFlightArrival finalizes an arrived flight: pays every contract
// reward it's carrying (a manifest flight may carry several), records
// each completed contract id, raises Fame proportionally to the total
// reward, and returns the total amount paid (0 for a depot mission with
// no contract attached).
func (c *Company) CompleteFlightArrival(flightID uint32) (float64, []Event, error) {
	st, ok := c.Flights[flightID]
	if !ok {
		return 0, nil, violation("Invalid flight")
	}
	if st.Status != flight.StatusCompleted {
		return 0, nil, violation("Flight has not arrived")
	}

	var paidContractIDs []uint32
	var reward float64
	for cid, ac := range c.ActiveContracts {
		if ac.FlightID == flightID {
			paidContractIDs = append(paidContractIDs, cid)
			reward += ac.Reward
		}
	}
	if len(paidContractIDs) == 0 {
		c.deployDepotIfCarried(flightID)
		return 0, nil, nil
	}
	sort.Slice(paidContractIDs, func(i, j int) bool { return paidContractIDs[i] < paidContractIDs[j] })
	for _, cid := range paidContractIDs {
		delete(c.ActiveContracts, cid)
		c.CompletedContractIDs = append(c.CompletedContractIDs, cid)
	}
	c.Money += reward

	// Fame grows by one point per 1,000 of reward delivered; a single
	// contract paying a million or more therefore adds 1,000+ fame.
	fameGain := reward / 1000.0
	c.AdjustFame(fameGain)
	events := []Event{{Kind: EventFameChanged, FlightID: flightID, Amount: fameGain}}
	return reward, events, nil
}
