package aerocorp

import (
	"github.com/aclough/rocket-game-sub000/flight"
	"github.com/aclough/rocket-game-sub000/launch"
	"github.com/aclough/rocket-game-sub000/mission"
)

// LaunchManifest launches a single rocket carrying every named contract's
// payload in one flight, bundling their combined mass and reward — the
// concrete shape behind "a rocket carries a manifest of payloads to a
// destination". Every contract must target the same destination, since a
// flight still follows one mission plan to one place.
func (c *Company) LaunchManifest(contractIDs []uint32, rocketDesignID int) (uint32, []Event, error) {
	if len(contractIDs) == 0 {
		return 0, nil, violation("No contracts selected")
	}

	manifest := flight.NewManifest()
	rewardByContract := make(map[uint32]float64, len(contractIDs))
	var destination string
	for _, cid := range contractIDs {
		idx := -1
		for i := range c.AvailableContracts {
			if c.AvailableContracts[i].ID == cid {
				idx = i
				break
			}
		}
		if idx == -1 {
			return 0, nil, violation("Invalid contract")
		}
		contract := c.AvailableContracts[idx]
		destID := contract.Destination.LocationID()
		if destination == "" {
			destination = destID
		} else if destination != destID {
			return 0, nil, violation("Contracts in a manifest must share a destination")
		}
		rewardByContract[cid] = contract.Reward
		manifest.AddContract(contract.ID, contract.PayloadName, contract.PayloadName, contract.Reward, destID, destID, contract.MassKg)
	}

	lineage, ok := c.RocketLineages[rocketDesignID]
	if !ok {
		return 0, nil, violation("Invalid rocket design")
	}
	if c.RocketInventory[rocketDesignID] == 0 {
		return 0, nil, violation("No assembled rocket in inventory")
	}

	plan, ok := mission.FromShortestPath(c.DeltaVMap, "earth_surface", destination)
	if !ok {
		return 0, nil, violation("Unknown destination")
	}
	rev, ok := lineage.LatestRevision()
	if !ok {
		return 0, nil, violation("No frozen revision to fly")
	}
	payloadMassKg := manifest.TotalMassKg()
	solved := mission.SolveDeltaV(stageInputsFrom(rev.Snapshot.Stages), payloadMassKg)
	if solved.TotalDeltaV < plan.TotalDeltaV() {
		return 0, nil, violation("Insufficient delta-v for destination")
	}
	if !c.LaunchSite.CanLaunchRocket(rev.Snapshot.WetMassKg()) {
		return 0, nil, violation("Rocket exceeds launch pad capacity")
	}

	c.RocketInventory[rocketDesignID]--
	remaining := c.AvailableContracts[:0]
	for _, ct := range c.AvailableContracts {
		if _, selected := rewardByContract[ct.ID]; !selected {
			remaining = append(remaining, ct)
		}
	}
	c.AvailableContracts = remaining

	flightID := c.nextFlightID
	c.nextFlightID++

	var events []Event
	rng := c.Seed.QueryRNG("launch-manifest-" + destination)
	result := launch.Simulate(rng)
	events = append(events, Event{Kind: EventLaunchAttempted, FlightID: flightID, Message: result.Message()})

	st := flight.FromDesign(flightID, rocketDesignID, rev.Number, rev.Snapshot.Stages, destination, payloadMassKg, plan)
	c.Flights[flightID] = st
	c.flightPropellantRemaining[flightID] = remainingPropellantByStage(solved)

	if result.Success {
		for cid, reward := range rewardByContract {
			c.ActiveContracts[cid] = activeContract{FlightID: flightID, Reward: reward}
		}
		lineage.Head.Workflow.AddLaunchTestingWork(30.0)
	} else {
		lineage.Head.Workflow.AddLaunchTestingWork(20.0)
		st.Fail()
		events = append(events, Event{Kind: EventFlightFailed, FlightID: flightID})
	}

	return flightID, events, nil
}
