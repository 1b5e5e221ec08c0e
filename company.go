// Package aerocorp is a deterministic, tick-driven simulation engine for
// an aerospace company management game: concurrent engine and rocket
// designs move through a shared engineering/testing/fixing workflow,
// manufacturing turns finished designs into flight hardware, and flights
// propagate across a static delta-v graph to deliver contracts and
// deploy infrastructure. Company is the single aggregate that owns all
// of this state; process_day is its only tick entry point.
package aerocorp

import (
	"fmt"
	"math/rand"
	"sort"

	kitlog "github.com/go-kit/kit/log"

	"github.com/aclough/rocket-game-sub000/design"
	"github.com/aclough/rocket-game-sub000/flight"
	"github.com/aclough/rocket-game-sub000/manufacturing"
	"github.com/aclough/rocket-game-sub000/mission"
)

// DepotDesign is a buildable fuel-depot blueprint: no engineering
// workflow of its own, since depots carry no flaws — they're simple
// enough that a rich design lifecycle would be over-engineering.
type DepotDesign struct {
	Name       string
	CapacityKg float64
	DryMassKg  float64
	Insulated  bool
}

// depotDryMassKg is 5% of capacity, +20% if insulated.
func depotDryMassKg(capacityKg float64, insulated bool) float64 {
	base := capacityKg * 0.05
	if insulated {
		return base * 1.20
	}
	return base
}

// MaterialCost is the cost to build one unit of this depot design: $2,000
// per kg of dry mass, +30% for insulated (cryogenic) construction.
func (d DepotDesign) MaterialCost() float64 {
	cost := d.DryMassKg * 2_000.0
	if d.Insulated {
		return cost * 1.30
	}
	return cost
}

// FloorSpaceRequired is 1 unit, or 2 for a depot with capacity over
// 50,000 kg.
func (d DepotDesign) FloorSpaceRequired() int {
	if d.CapacityKg > 50_000.0 {
		return 2
	}
	return 1
}

// Company owns every piece of state a playthrough touches: money,
// design lineages, teams, manufacturing, contracts, flights,
// infrastructure, and the clocks and RNG streams that drive them.
// Every mutation happens through a Company method; ProcessDay is the
// only method that advances simulated time.
type Company struct {
	Money float64
	Fame  float64

	LaunchSite *flight.LaunchSite
	DeltaVMap  *mission.DeltaVMap
	Time       *TimeSystem
	Seed       WorldSeed
	Config     Constants
	Logger     kitlog.Logger

	EngineLineages map[int]*design.Lineage[*design.EngineDesign]
	RocketLineages map[int]*design.Lineage[*design.RocketDesign]
	EngineCosts    map[int]*CostTracker
	RocketCosts    map[int]*CostTracker
	HardwarePolicy map[int]design.HardwareSacrificePolicy
	nextEngineID   int
	nextRocketID   int

	flawGen      *design.Generator
	discoveryRNG *rand.Rand
	nextFlawID   uint32

	Teams      map[uint32]*Team
	nextTeamID uint32

	Manufacturing *manufacturing.Manufacturing

	AvailableContracts   []mission.Contract
	ActiveContracts      map[uint32]activeContract // contract id -> flight binding
	CompletedContractIDs []uint32
	nextContractID       uint32

	DepotDesigns    []DepotDesign
	DepotInventory  []depotInventoryItem
	nextDepotSerial uint32

	// ActiveDepotMissions binds a flight carrying a depot payload to the
	// depot design and serial it's delivering, so arrival can deploy it
	// into Infrastructure instead of paying a contract reward.
	ActiveDepotMissions map[uint32]depotMission

	// RocketInventory counts assembled, flight-ready rockets by design id,
	// filled in when a rocket manufacturing order completes and drawn
	// down when a flight launches.
	RocketInventory map[int]uint32

	Flights    map[uint32]*flight.State
	nextFlightID uint32

	// flightPropellantRemaining caches each in-flight rocket's per-stage
	// propellant remaining at arrival, solved once at launch time via the
	// gravity-loss-aware rocket equation, and consumed by tickFlights on
	// arrival.
	flightPropellantRemaining map[uint32]map[int]float64

	Infrastructure *Infrastructure

	AutoAssignManufacturing bool
}

type depotInventoryItem struct {
	DesignIndex int
	Serial      uint32
}

// depotMission binds an in-flight depot payload to the destination it
// will be deployed at on arrival.
type depotMission struct {
	DesignIndex int
	Serial      uint32
	Destination string
}

// activeContract binds a selected contract to the flight carrying it and
// the reward it will pay on arrival.
type activeContract struct {
	FlightID uint32
	Reward   float64
}

// NewCompany returns a fresh playthrough: starting budget, a starter
// launch site, the built-in Earth-Moon delta-v graph, and empty
// everything else.
func NewCompany(seed uint64) *Company {
	cfg := companyConfig()
	worldSeed := NewWorldSeed(seed)
	c := &Company{
		Money:          cfg.StartingBudget,
		LaunchSite:     flight.NewLaunchSite(),
		DeltaVMap:      mission.NewEarthMoonMap(),
		Time:           NewTimeSystem(),
		Seed:           worldSeed,
		Config:         cfg,
		Logger:         NewCompanyLogger(),
		EngineLineages: make(map[int]*design.Lineage[*design.EngineDesign]),
		RocketLineages: make(map[int]*design.Lineage[*design.RocketDesign]),
		EngineCosts:    make(map[int]*CostTracker),
		RocketCosts:    make(map[int]*CostTracker),
		HardwarePolicy: make(map[int]design.HardwareSacrificePolicy),
		flawGen:        design.NewGenerator(worldSeed.QueryRNG("flaws")),
		discoveryRNG:   worldSeed.QueryRNG("flaw-discovery"),
		Teams:          make(map[uint32]*Team),
		Manufacturing:  manufacturing.New(),
		ActiveContracts: make(map[uint32]activeContract),
		ActiveDepotMissions: make(map[uint32]depotMission),
		nextContractID: 1,
		Flights:        make(map[uint32]*flight.State),
		nextFlightID:   1,
		flightPropellantRemaining: make(map[uint32]map[int]float64),
		Infrastructure: NewInfrastructure(),
		RocketInventory: make(map[int]uint32),
		nextTeamID:     1,
		nextEngineID:   0,
		nextRocketID:   0,
		nextDepotSerial: 1,
	}
	return c
}

// AdjustFame changes reputation by delta, clamped to never go negative.
func (c *Company) AdjustFame(delta float64) {
	c.Fame += delta
	if c.Fame < 0 {
		c.Fame = 0
	}
}

// FameTier buckets Fame into the game's named reputation tiers.
func (c *Company) FameTier() uint32 {
	switch f := uint32(c.Fame); {
	case f <= 9:
		return 0 // Unknown
	case f <= 29:
		return 1 // Newcomer
	case f <= 59:
		return 2 // Established
	case f <= 99:
		return 3 // Renowned
	case f <= 199:
		return 4 // Famous
	default:
		return 5 // Legendary
	}
}

// FameTierName names the tier FameTier returns.
func (c *Company) FameTierName() string {
	switch c.FameTier() {
	case 0:
		return "Unknown"
	case 1:
		return "Newcomer"
	case 2:
		return "Established"
	case 3:
		return "Renowned"
	case 4:
		return "Famous"
	default:
		return "Legendary"
	}
}

// contractRNG returns the deterministic stream used for contract
// generation, keyed off the current day so a refresh on a different day
// never reproduces the same batch.
func (c *Company) contractRNG() *rand.Rand {
	return c.Seed.QueryRNG(fmt.Sprintf("contracts-%d", c.Time.CurrentDay))
}

// ProcessDay advances simulated time by exactly one day, in the
// canonical order: ramp-up, salary, engineering/testing ticks for every
// design, manufacturing, flights, floor-space construction, and
// auto-assignment. Returns every event the tick produced, in order.
// Never re-entrant: the caller must not call ProcessDay again before
// this one returns, which the single-threaded model guarantees trivially.
func (c *Company) ProcessDay(salaryDue bool) []Event {
	var events []Event

	teamIDs := make([]uint32, 0, len(c.Teams))
	for id := range c.Teams {
		teamIDs = append(teamIDs, id)
	}
	sort.Slice(teamIDs, func(i, j int) bool { return teamIDs[i] < teamIDs[j] })
	for _, id := range teamIDs {
		t := c.Teams[id]
		wasRamping := t.IsRampingUp()
		t.ProcessDay()
		if wasRamping && !t.IsRampingUp() {
			events = append(events, Event{Kind: EventWorkflowAdvanced, TeamID: t.ID, Message: "ramped up"})
		}
	}

	if salaryDue {
		events = append(events, c.paySalaries()...)
	}

	events = append(events, c.tickRocketDesigns()...)
	events = append(events, c.tickEngineDesigns()...)

	events = append(events, c.tickManufacturing()...)
	events = append(events, c.tickFlights()...)

	if units := c.Manufacturing.AdvanceFloorSpaceConstruction(); units > 0 {
		events = append(events, Event{Kind: EventFloorSpaceCompleted, Units: units, Message: "floor space delivered"})
	}

	if c.AutoAssignManufacturing {
		events = append(events, c.autoAssignManufacturingTeams()...)
	}

	c.Time.AdvanceDay()
	return events
}

func (c *Company) paySalaries() []Event {
	var events []Event
	total := 0.0
	for _, t := range c.Teams {
		total += t.MonthlySalary
		if t.Type == TeamEngineering {
			switch t.Assignment.Kind {
			case AssignmentEngineDesign:
				if ct, ok := c.EngineCosts[t.Assignment.EngineDesignID]; ok {
					ct.AddSalary(t.MonthlySalary)
				}
			case AssignmentRocketDesign:
				if ct, ok := c.RocketCosts[t.Assignment.RocketDesignID]; ok {
					ct.AddSalary(t.MonthlySalary)
				}
			}
		}
	}
	c.Money -= total
	events = append(events, Event{Kind: EventSalaryPaid, Amount: total})
	return events
}

// productiveTeamsOnEngine counts productive (non-ramping) teams currently
// assigned to a given engine or rocket design, for the pooled-efficiency
// formula.
func (c *Company) productiveTeamsOnEngine(engineID int) int {
	n := 0
	for _, t := range c.Teams {
		if t.Type == TeamEngineering && t.Assignment.Kind == AssignmentEngineDesign &&
			t.Assignment.EngineDesignID == engineID && !t.IsRampingUp() {
			n++
		}
	}
	return n
}

func (c *Company) productiveTeamsOnRocket(rocketID int) int {
	n := 0
	for _, t := range c.Teams {
		if t.Type == TeamEngineering && t.Assignment.Kind == AssignmentRocketDesign &&
			t.Assignment.RocketDesignID == rocketID && !t.IsRampingUp() {
			n++
		}
	}
	return n
}

func (c *Company) productiveTeamsOnOrder(orderID uint32) int {
	n := 0
	for _, t := range c.Teams {
		if t.Type == TeamManufacturing && t.Assignment.Kind == AssignmentManufacturing &&
			t.Assignment.OrderID == orderID && !t.IsRampingUp() {
			n++
		}
	}
	return n
}

func (c *Company) unassignTeamsFrom(pred func(a Assignment) bool) {
	for _, t := range c.Teams {
		if pred(t.Assignment) {
			t.Unassign()
		}
	}
}

func (c *Company) tickRocketDesigns() []Event {
	var events []Event
	ids := make([]int, 0, len(c.RocketLineages))
	for id := range c.RocketLineages {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		lineage := c.RocketLineages[id]
		n := c.productiveTeamsOnRocket(id)
		if n == 0 {
			continue
		}
		efficiency := PooledEfficiency(n)
		events = append(events, c.advanceDesignWorkflow(false, id, lineage.Head.Workflow, efficiency)...)
		if lineage.Head.Workflow.Status == design.StatusComplete {
			c.unassignTeamsFrom(func(a Assignment) bool {
				return a.Kind == AssignmentRocketDesign && a.RocketDesignID == id
			})
		}
	}
	return events
}

func (c *Company) tickEngineDesigns() []Event {
	var events []Event
	ids := make([]int, 0, len(c.EngineLineages))
	for id := range c.EngineLineages {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		lineage := c.EngineLineages[id]
		n := c.productiveTeamsOnEngine(id)
		if n == 0 {
			continue
		}
		efficiency := PooledEfficiency(n)
		events = append(events, c.advanceDesignWorkflow(true, id, lineage.Head.Workflow, efficiency)...)
		if lineage.Head.Workflow.Status == design.StatusComplete {
			c.unassignTeamsFrom(func(a Assignment) bool {
				return a.Kind == AssignmentEngineDesign && a.EngineDesignID == id
			})
		}
		events = append(events, c.checkHardwareSacrifice(id, lineage.Head)...)
	}
	return events
}

// advanceDesignWorkflow applies one day of workflow tick to a design's
// shared state machine: hardware decay, work progress, flaw discovery on
// cycle completion, and auto-entry into fixing the next unfixed flaw.
func (c *Company) advanceDesignWorkflow(isEngine bool, id int, wf *design.Workflow, efficiency float64) []Event {
	var events []Event

	effective := efficiency
	if wf.Status == design.StatusTesting || wf.Status == design.StatusFixing {
		wf.DecayHardwareBoost()
		effective *= wf.HardwareMultiplier()
	}

	prevStatus := wf.Status
	cycleComplete := wf.AdvanceWork(effective)
	wf.TestingWorkCompleted += effective

	if !cycleComplete {
		return events
	}

	switch prevStatus {
	case design.StatusEngineering:
		logDesign(c.Logger, "lineage", id, "event", "entered_testing")
		events = append(events, Event{Kind: EventWorkflowAdvanced, LineageID: id, Message: "entered testing"})
		if !wf.FlawsGenerated {
			c.generateFlaws(isEngine, id, wf)
		}
		c.cutRevision(isEngine, id)
	case design.StatusTesting:
		discovered := wf.DiscoverFlawsOnCycleComplete(c.discoveryRNG)
		for _, name := range discovered {
			logDesign(c.Logger, "lineage", id, "event", "flaw_discovered", "flaw", name)
			events = append(events, Event{Kind: EventFlawDiscovered, LineageID: id, FlawName: name})
		}
		if idx := wf.GetNextUnfixedFlaw(); idx >= 0 {
			wf.StartFixingFlaw(idx)
		}
	case design.StatusFixing:
		name, _ := wf.CompleteFlawFix()
		logDesign(c.Logger, "lineage", id, "event", "flaw_fixed", "flaw", name)
		events = append(events, Event{Kind: EventFlawFixed, LineageID: id, FlawName: name})
	}
	return events
}

func (c *Company) generateFlaws(isEngine bool, id int, wf *design.Workflow) {
	nextID := func() uint32 {
		c.nextFlawID++
		return c.nextFlawID
	}
	if isEngine {
		lineage := c.EngineLineages[id]
		category := lineage.Head.Snapshot(id, lineage.Name).FlawCategory
		wf.ActiveFlaws = append(wf.ActiveFlaws, c.flawGen.GenerateEngineFlaws(category, id, nextID)...)
	} else {
		wf.ActiveFlaws = append(wf.ActiveFlaws, c.flawGen.GenerateDesignFlaws(nextID)...)
	}
	wf.FlawsGenerated = true
}

// stageInputsFrom adapts a frozen rocket revision's stages into the
// rocket-equation solver's minimal per-stage input.
func stageInputsFrom(stages []design.Stage) []mission.StageInput {
	inputs := make([]mission.StageInput, len(stages))
	for i, s := range stages {
		inputs[i] = mission.StageInput{
			WetMassKg:       s.WetMassKg(),
			DryMassKg:       s.DryMassKg(),
			ExhaustVelocity: s.Engine.ExhaustVelocity,
		}
	}
	return inputs
}

// remainingPropellantByStage converts a solved rocket-equation result's
// propellant-remaining vector into the stage-indexed map flight.Complete
// expects; a booster stage (zeroed by the solver) reports no propellant
// left, since it burns out and jettisons before arrival.
func remainingPropellantByStage(solved mission.Result) map[int]float64 {
	n, _ := solved.PropellantRemaining.Dims()
	out := make(map[int]float64, n)
	for i := 0; i < n; i++ {
		out[i] = solved.PropellantRemaining.At(i, 0)
	}
	return out
}

// cutRevision freezes a design's current head as a new manufacturable
// revision the first time it reaches Testing, since CanModify locks the
// specification before that point — later flaw fixes change the
// workflow, not the frozen snapshot manufacturing builds against.
func (c *Company) cutRevision(isEngine bool, id int) {
	if isEngine {
		lineage := c.EngineLineages[id]
		lineage.CutRevision(fmt.Sprintf("%s rev", lineage.Name))
	} else {
		lineage := c.RocketLineages[id]
		lineage.CutRevision(fmt.Sprintf("%s rev", lineage.Name))
	}
}

func (c *Company) checkHardwareSacrifice(engineID int, eng *design.EngineDesign) []Event {
	policy := c.HardwarePolicy[engineID]
	if !policy.ShouldSacrifice(eng.Workflow.Status, eng.Workflow.HardwareBoost) {
		return nil
	}
	if c.Manufacturing.EnginesAvailable(engineID) == 0 {
		return nil
	}
	consumed := c.Manufacturing.ConsumeEnginesForRocket([]design.Stage{{
		Engine:      eng.Snapshot(engineID, ""),
		EngineCount: 1,
	}})
	if !consumed {
		return nil
	}
	if ct, ok := c.EngineCosts[engineID]; ok {
		ct.AddHardwareTestCost(eng.Snapshot(engineID, "").BaseCost)
	}
	eng.Workflow.ResetHardwareBoost()
	return []Event{{Kind: EventHardwareDecayed, LineageID: engineID, Message: "hardware sacrificed"}}
}
