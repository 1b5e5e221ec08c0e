// Package manufacturing implements the manufacturing order pipeline:
// floor space, engine/rocket orders, inventory, and engine reservation
// across rockets still waiting on their engines.
package manufacturing

import (
	"github.com/aclough/rocket-game-sub000/design"
)

// FloorSpaceCostPerUnit is the price of one unit of floor space.
const FloorSpaceCostPerUnit = 2_000_000.0

// FloorSpaceConstructionDays is how long a bought unit of floor space
// takes to come online.
const FloorSpaceConstructionDays = 30.0

// floorSpaceForEngine is the floor space an engine manufacturing order
// occupies for its duration, scaling with engine size.
func floorSpaceForEngine(scale float64) int {
	units := int(scale)
	if units < 1 {
		units = 1
	}
	return units
}

// floorSpaceForRocket is the floor space a rocket assembly order
// occupies, scaling with the number of stages.
func floorSpaceForRocket(stageCount int) int {
	units := stageCount * 2
	if units < 2 {
		units = 2
	}
	return units
}

// OrderKind distinguishes an engine-batch order from a rocket-assembly
// order.
type OrderKind uint8

const (
	OrderEngine OrderKind = iota
	OrderRocket
)

// Order is a single manufacturing order in progress: either building a
// batch of engines or assembling one rocket from engines already in (or
// reserved from) inventory.
type Order struct {
	ID                  uint32
	Kind                OrderKind
	EngineDesignID       int
	RocketDesignID       int
	RevisionNumber      uint32
	EngineSnapshot       design.EngineSnapshot
	RocketStages         []design.Stage
	Quantity            uint32
	MaterialCostPerUnit float64
	WorkDone            float64
	WorkRequired        float64
	WaitingForEngines   bool
	FloorSpace          int
	Complete            bool
}

// IsEngineOrder reports whether this order produces engines.
func (o *Order) IsEngineOrder() bool {
	return o.Kind == OrderEngine
}

// RemainingWork is the work still needed to finish the order.
func (o *Order) RemainingWork() float64 {
	r := o.WorkRequired - o.WorkDone
	if r < 0 {
		return 0
	}
	return r
}

// IsOrderComplete reports whether the order has finished all its work.
func (o *Order) IsOrderComplete() bool {
	return o.Complete
}

// perUnitEngineWork and rocketAssemblyWork are how much work a single unit
// (one engine batch item, or the single rocket) requires; engine orders
// scale per unit produced.
const perUnitEngineWork = 10.0
const rocketAssemblyWork = 20.0

// Manufacturing owns every active order, floor space capacity, and
// finished-goods inventory.
type Manufacturing struct {
	FloorSpaceTotal        int
	floorSpaceConstructing []pendingFloorSpace
	ActiveOrders           []*Order
	EngineInventory        map[int]uint32 // engine design id -> count on hand
	nextOrderID            uint32
}

type pendingFloorSpace struct {
	units       int
	daysElapsed float64
}

// New returns a Manufacturing with no floor space and an empty inventory.
func New() *Manufacturing {
	return &Manufacturing{
		EngineInventory: make(map[int]uint32),
		nextOrderID:     1,
	}
}

// BuyFloorSpace begins construction of additional floor space units,
// completing FloorSpaceConstructionDays later.
func (m *Manufacturing) BuyFloorSpace(units int) {
	m.floorSpaceConstructing = append(m.floorSpaceConstructing, pendingFloorSpace{units: units})
}

// FloorSpaceConstructingUnits sums units still under construction.
func (m *Manufacturing) FloorSpaceConstructingUnits() int {
	total := 0
	for _, p := range m.floorSpaceConstructing {
		total += p.units
	}
	return total
}

// FloorSpaceInUse sums the floor space occupied by active, incomplete
// orders.
func (m *Manufacturing) FloorSpaceInUse() int {
	used := 0
	for _, o := range m.ActiveOrders {
		if !o.Complete {
			used += o.FloorSpace
		}
	}
	return used
}

// CanStartOrderWithSpace reports whether spaceNeeded more units can be
// allocated right now.
func (m *Manufacturing) CanStartOrderWithSpace(spaceNeeded int) bool {
	return m.FloorSpaceInUse()+spaceNeeded <= m.FloorSpaceTotal
}

// AdvanceFloorSpaceConstruction ticks one day of construction progress,
// completing any unit whose construction period has elapsed, and returns
// the total units delivered this tick (0 if none completed).
func (m *Manufacturing) AdvanceFloorSpaceConstruction() int {
	completed := 0
	remaining := m.floorSpaceConstructing[:0]
	for _, p := range m.floorSpaceConstructing {
		p.daysElapsed++
		if p.daysElapsed >= FloorSpaceConstructionDays {
			m.FloorSpaceTotal += p.units
			completed += p.units
			continue
		}
		remaining = append(remaining, p)
	}
	m.floorSpaceConstructing = remaining
	return completed
}

// StartEngineOrder creates an order to build quantity units of the
// snapshotted engine design, charging total material cost up front.
func (m *Manufacturing) StartEngineOrder(engineDesignID int, revision uint32, snap design.EngineSnapshot, quantity uint32) (*Order, float64) {
	materialCost := snap.BaseCost
	total := materialCost * float64(quantity)
	order := &Order{
		ID:                  m.allocID(),
		Kind:                OrderEngine,
		EngineDesignID:      engineDesignID,
		RevisionNumber:      revision,
		EngineSnapshot:      snap,
		Quantity:            quantity,
		MaterialCostPerUnit: materialCost,
		WorkRequired:        perUnitEngineWork * float64(quantity),
		FloorSpace:          floorSpaceForEngine(snap.MassKg / 450.0),
	}
	m.ActiveOrders = append(m.ActiveOrders, order)
	return order, total
}

// StartRocketOrder creates a rocket assembly order, beginning in a
// waiting-for-engines state until engines are consumed from inventory.
func (m *Manufacturing) StartRocketOrder(rocketDesignID int, revision uint32, stages []design.Stage, materialCost float64) *Order {
	order := &Order{
		ID:                m.allocID(),
		Kind:              OrderRocket,
		RocketDesignID:    rocketDesignID,
		RevisionNumber:    revision,
		RocketStages:      stages,
		Quantity:          1,
		WorkRequired:      rocketAssemblyWork,
		WaitingForEngines: true,
		FloorSpace:        floorSpaceForRocket(len(stages)),
	}
	m.ActiveOrders = append(m.ActiveOrders, order)
	return order
}

func (m *Manufacturing) allocID() uint32 {
	id := m.nextOrderID
	m.nextOrderID++
	return id
}

// CancelOrder removes an order by id, returning whether it existed.
func (m *Manufacturing) CancelOrder(id uint32) bool {
	for i, o := range m.ActiveOrders {
		if o.ID == id {
			m.ActiveOrders = append(m.ActiveOrders[:i], m.ActiveOrders[i+1:]...)
			return true
		}
	}
	return false
}

// GetOrder returns the order with the given id, if any.
func (m *Manufacturing) GetOrder(id uint32) *Order {
	for _, o := range m.ActiveOrders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// IncreaseEngineOrderQuantity adds quantityToAdd units to an existing
// engine order's remaining work.
func (m *Manufacturing) IncreaseEngineOrderQuantity(id uint32, quantityToAdd uint32) {
	o := m.GetOrder(id)
	if o == nil || !o.IsEngineOrder() {
		return
	}
	o.Quantity += quantityToAdd
	o.WorkRequired += perUnitEngineWork * float64(quantityToAdd)
}

// EnginesAvailable returns the number of finished engines of a design
// sitting in inventory.
func (m *Manufacturing) EnginesAvailable(engineDesignID int) uint32 {
	return m.EngineInventory[engineDesignID]
}

// EnginesPendingForDesign sums the quantity still being produced across
// active, incomplete engine orders for a design.
func (m *Manufacturing) EnginesPendingForDesign(engineDesignID int) uint32 {
	total := uint32(0)
	for _, o := range m.ActiveOrders {
		if o.IsEngineOrder() && o.EngineDesignID == engineDesignID && !o.Complete {
			unitsLeft := o.Quantity - uint32(o.WorkDone/perUnitEngineWork)
			total += unitsLeft
		}
	}
	return total
}

// EnginesCommittedToWaitingRockets sums the engine quantity every
// waiting-for-engines rocket order still needs of a design, including the
// order currently being started.
func (m *Manufacturing) EnginesCommittedToWaitingRockets(engineDesignID int) uint32 {
	total := uint32(0)
	for _, o := range m.ActiveOrders {
		if o.Kind != OrderRocket || !o.WaitingForEngines {
			continue
		}
		for _, s := range o.RocketStages {
			if s.Engine.EngineDesignID == engineDesignID {
				total += uint32(s.EngineCount)
			}
		}
	}
	return total
}

// ConsumeEnginesForRocket tries to pull every engine a rocket's stages
// need out of inventory. Succeeds only if every requirement can be met
// atomically; partial consumption never happens.
func (m *Manufacturing) ConsumeEnginesForRocket(stages []design.Stage) bool {
	needed := map[int]uint32{}
	for _, s := range stages {
		needed[s.Engine.EngineDesignID] += uint32(s.EngineCount)
	}
	for id, qty := range needed {
		if m.EngineInventory[id] < qty {
			return false
		}
	}
	for id, qty := range needed {
		m.EngineInventory[id] -= qty
	}
	return true
}

// AdvanceOrder applies one day's worth of team efficiency to an order's
// work. When an engine order completes, the finished units are delivered
// into inventory; when a rocket order completes, Complete is set and the
// caller is responsible for turning it into a flight-ready rocket.
func (m *Manufacturing) AdvanceOrder(o *Order, efficiency float64) bool {
	if o.Complete {
		return false
	}
	o.WorkDone += efficiency
	if o.WorkDone >= o.WorkRequired {
		o.WorkDone = o.WorkRequired
		o.Complete = true
		if o.IsEngineOrder() {
			m.EngineInventory[o.EngineDesignID] += o.Quantity
		}
		return true
	}
	return false
}
