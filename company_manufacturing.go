package aerocorp

import (
	"sort"

	"github.com/aclough/rocket-game-sub000/design"
	"github.com/aclough/rocket-game-sub000/manufacturing"
)

// tickManufacturing unblocks waiting rocket orders the inventory can now
// satisfy, advances every active order by its assigned teams' pooled
// efficiency, and removes orders that finished this tick.
func (c *Company) tickManufacturing() []Event {
	var events []Event

	// Scan waiting rocket orders in creation order (ActiveOrders is
	// append-ordered by id) and unblock as many as inventory allows —
	// the deterministic consumption order §4.5 and §9 require.
	for _, o := range c.Manufacturing.ActiveOrders {
		if o.Kind != manufacturing.OrderRocket || !o.WaitingForEngines {
			continue
		}
		if c.Manufacturing.ConsumeEnginesForRocket(o.RocketStages) {
			o.WaitingForEngines = false
			logManufacturing(c.Logger, "order", o.ID, "event", "unblocked")
			events = append(events, Event{Kind: EventManufacturingOrderWaitingForEngines, OrderID: o.ID, Message: "unblocked"})
		}
	}

	var finished []uint32
	for _, o := range c.Manufacturing.ActiveOrders {
		if o.Complete || o.WaitingForEngines {
			continue
		}
		n := c.productiveTeamsOnOrder(o.ID)
		if n == 0 {
			continue
		}
		efficiency := PooledEfficiency(n)
		if c.Manufacturing.AdvanceOrder(o, efficiency) {
			if !o.IsEngineOrder() {
				c.RocketInventory[o.RocketDesignID]++
			}
			logManufacturing(c.Logger, "order", o.ID, "event", "complete")
			events = append(events, Event{Kind: EventManufacturingOrderComplete, OrderID: o.ID})
			finished = append(finished, o.ID)
		}
	}

	for _, id := range finished {
		c.unassignTeamsFrom(func(a Assignment) bool {
			return a.Kind == AssignmentManufacturing && a.OrderID == id
		})
		c.Manufacturing.CancelOrder(id)
	}

	return events
}

// StartEngineOrder opens a manufacturing order for quantity units of an
// engine design's latest revision. Requires the design to be at least in
// Testing, floor space, and enough money for materials up front.
func (c *Company) StartEngineOrder(engineDesignID int, quantity uint32) (uint32, error) {
	lineage, ok := c.EngineLineages[engineDesignID]
	if !ok {
		return 0, violation("Invalid engine design")
	}
	if !lineage.Head.Workflow.Status.CanLaunch() {
		return 0, violation("Design engineering not complete")
	}
	rev, ok := lineage.LatestRevision()
	if !ok {
		return 0, violation("No frozen revision to manufacture")
	}
	snap := rev.Snapshot.Snapshot(engineDesignID, lineage.Name)
	spaceNeeded := int(snap.MassKg/450.0) + 1
	if !c.Manufacturing.CanStartOrderWithSpace(spaceNeeded) {
		return 0, violation("Not enough floor space")
	}
	cost := snap.BaseCost * float64(quantity)
	if cost > c.Money {
		return 0, violation("Not enough funds for materials")
	}
	order, total := c.Manufacturing.StartEngineOrder(engineDesignID, rev.Number, snap, quantity)
	c.Money -= total
	if ct, ok := c.EngineCosts[engineDesignID]; ok {
		ct.AddProductionCost(total, quantity)
	}
	return order.ID, nil
}

// StartRocketOrder opens a rocket assembly order from a rocket design's
// latest revision, debiting assembly materials and attempting to
// immediately reserve the engines it needs from inventory.
func (c *Company) StartRocketOrder(rocketDesignID int) (uint32, error) {
	lineage, ok := c.RocketLineages[rocketDesignID]
	if !ok {
		return 0, violation("Invalid rocket design")
	}
	if !lineage.Head.Workflow.Status.CanLaunch() {
		return 0, violation("Design engineering not complete")
	}
	rev, ok := lineage.LatestRevision()
	if !ok {
		return 0, violation("No frozen revision to manufacture")
	}
	stages := rev.Snapshot.Stages
	spaceNeeded := len(stages)*2 + 2
	if !c.Manufacturing.CanStartOrderWithSpace(spaceNeeded) {
		return 0, violation("Not enough floor space")
	}
	materialCost := design.RocketOverheadCost
	if materialCost > c.Money {
		return 0, violation("Not enough funds for materials")
	}
	c.Money -= materialCost
	order := c.Manufacturing.StartRocketOrder(rocketDesignID, rev.Number, stages, materialCost)
	if c.Manufacturing.ConsumeEnginesForRocket(stages) {
		order.WaitingForEngines = false
	}
	if ct, ok := c.RocketCosts[rocketDesignID]; ok {
		ct.AddProductionCost(materialCost, 1)
	}
	return order.ID, nil
}

// IncreaseEngineOrder adds quantityToAdd units to an existing engine
// order's remaining work, debiting the additional material cost.
func (c *Company) IncreaseEngineOrder(orderID uint32, quantityToAdd uint32) error {
	o := c.Manufacturing.GetOrder(orderID)
	if o == nil || !o.IsEngineOrder() {
		return violation("Not an engine order")
	}
	cost := o.MaterialCostPerUnit * float64(quantityToAdd)
	if cost > c.Money {
		return violation("Not enough funds for materials")
	}
	c.Money -= cost
	c.Manufacturing.IncreaseEngineOrderQuantity(orderID, quantityToAdd)
	return nil
}

// CancelManufacturingOrder cancels an active order, refunding its floor
// space (materials already spent are not recoverable).
func (c *Company) CancelManufacturingOrder(orderID uint32) error {
	if !c.Manufacturing.CancelOrder(orderID) {
		return violation("Invalid manufacturing order")
	}
	c.unassignTeamsFrom(func(a Assignment) bool {
		return a.Kind == AssignmentManufacturing && a.OrderID == orderID
	})
	return nil
}

// BuyFloorSpace begins construction of additional floor space, debiting
// its cost immediately.
func (c *Company) BuyFloorSpace(units int) error {
	cost := float64(units) * manufacturing.FloorSpaceCostPerUnit
	if cost > c.Money {
		return violation("Not enough funds for materials")
	}
	c.Money -= cost
	c.Manufacturing.BuyFloorSpace(units)
	return nil
}

// AutoOrderEnginesForRocket closes the deficit between what every
// waiting rocket order needs of each engine design this rocket uses and
// what's already available or already on order, opening new engine
// orders for exactly the shortfall — never zero when a deficit exists,
// never double-counting across repeated calls. Engine designs are
// visited in ascending id order, so the opened-order list is
// deterministic.
func (c *Company) AutoOrderEnginesForRocket(rocketDesignID int) ([]uint32, error) {
	lineage, ok := c.RocketLineages[rocketDesignID]
	if !ok {
		return nil, violation("Invalid rocket design")
	}
	required := lineage.Head.EnginesRequired()
	sort.Slice(required, func(i, j int) bool { return required[i].EngineDesignID < required[j].EngineDesignID })

	var opened []uint32
	for _, r := range required {
		committed := c.Manufacturing.EnginesCommittedToWaitingRockets(r.EngineDesignID)
		available := c.Manufacturing.EnginesAvailable(r.EngineDesignID)
		pending := c.Manufacturing.EnginesPendingForDesign(r.EngineDesignID)
		deficit := int64(committed) - int64(available) - int64(pending)
		if deficit <= 0 {
			continue
		}
		if _, ok := c.EngineLineages[r.EngineDesignID]; !ok {
			continue
		}
		id, err := c.StartEngineOrder(r.EngineDesignID, uint32(deficit))
		if err != nil {
			continue
		}
		opened = append(opened, id)
	}
	return opened, nil
}

// autoAssignManufacturingTeams iteratively places every idle
// manufacturing team on the not-blocked active order with the lowest
// ratio of teams-already-on-order to remaining-work, ties broken by
// lower order id — the manufacturing analogue of engineering teams'
// least-loaded assignment rule.
func (c *Company) autoAssignManufacturingTeams() []Event {
	var events []Event
	for {
		var idle *Team
		var idleIDs []uint32
		for id, t := range c.Teams {
			if t.Type == TeamManufacturing && t.IsIdle() {
				idleIDs = append(idleIDs, id)
			}
		}
		if len(idleIDs) == 0 {
			return events
		}
		sort.Slice(idleIDs, func(i, j int) bool { return idleIDs[i] < idleIDs[j] })
		idle = c.Teams[idleIDs[0]]

		var bestOrderID uint32
		bestRatio := 0.0
		found := false
		for _, o := range c.Manufacturing.ActiveOrders {
			if o.Complete || o.WaitingForEngines {
				continue
			}
			remaining := o.RemainingWork()
			if remaining <= 0 {
				continue
			}
			teamsOn := 0
			for _, t := range c.Teams {
				if t.Assignment.Kind == AssignmentManufacturing && t.Assignment.OrderID == o.ID {
					teamsOn++
				}
			}
			ratio := float64(teamsOn) / remaining
			if !found || ratio < bestRatio || (ratio == bestRatio && o.ID < bestOrderID) {
				bestOrderID = o.ID
				bestRatio = ratio
				found = true
			}
		}
		if !found {
			return events
		}
		idle.Assign(Assignment{Kind: AssignmentManufacturing, OrderID: bestOrderID})
		events = append(events, Event{Kind: EventWorkflowAdvanced, TeamID: idle.ID, OrderID: bestOrderID, Message: "auto-assigned"})
	}
}
