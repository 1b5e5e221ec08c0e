package aerocorp

import "github.com/aclough/rocket-game-sub000/design"

// CreateEngineDesign starts a new engine design lineage at scale 1.0 in
// Specification, named and untested.
func (c *Company) CreateEngineDesign(name string, fuel design.FuelType) int {
	id := c.nextEngineID
	c.nextEngineID++
	c.EngineLineages[id] = design.NewLineage(name, design.NewEngineDesign(fuel), (*design.EngineDesign).Clone)
	c.EngineCosts[id] = &CostTracker{}
	c.HardwarePolicy[id] = design.SacrificeOff
	return id
}

// CreateRocketDesign starts a new, empty rocket design lineage in
// Specification.
func (c *Company) CreateRocketDesign(name string) int {
	id := c.nextRocketID
	c.nextRocketID++
	c.RocketLineages[id] = design.NewLineage(name, design.NewRocketDesign(), (*design.RocketDesign).Clone)
	c.RocketCosts[id] = &CostTracker{}
	return id
}

// DuplicateEngineDesign copies a design's current head into a brand new
// lineage, independent of the original — revisions are not copied, since
// the duplicate starts fresh in Specification.
func (c *Company) DuplicateEngineDesign(id int, newName string) (int, error) {
	lineage, ok := c.EngineLineages[id]
	if !ok {
		return 0, violation("Invalid engine design")
	}
	newID := c.nextEngineID
	c.nextEngineID++
	clone := lineage.Head.Clone()
	clone.Workflow = design.NewWorkflow()
	c.EngineLineages[newID] = design.NewLineage(newName, clone, (*design.EngineDesign).Clone)
	c.EngineCosts[newID] = &CostTracker{}
	c.HardwarePolicy[newID] = design.SacrificeOff
	return newID, nil
}

// DuplicateRocketDesign copies a rocket design's stage stack into a new
// lineage starting fresh in Specification.
func (c *Company) DuplicateRocketDesign(id int, newName string) (int, error) {
	lineage, ok := c.RocketLineages[id]
	if !ok {
		return 0, violation("Invalid rocket design")
	}
	newID := c.nextRocketID
	c.nextRocketID++
	clone := lineage.Head.Clone()
	clone.Workflow = design.NewWorkflow()
	c.RocketLineages[newID] = design.NewLineage(newName, clone, (*design.RocketDesign).Clone)
	c.RocketCosts[newID] = &CostTracker{}
	return newID, nil
}

// DeleteEngineDesign removes an engine design lineage. Refuses to delete
// the last remaining engine design, since a company with zero engine
// designs can never build a rocket.
func (c *Company) DeleteEngineDesign(id int) error {
	if _, ok := c.EngineLineages[id]; !ok {
		return violation("Invalid engine design")
	}
	if len(c.EngineLineages) <= 1 {
		return violation("Cannot delete the last engine design")
	}
	delete(c.EngineLineages, id)
	delete(c.EngineCosts, id)
	delete(c.HardwarePolicy, id)
	c.unassignTeamsFrom(func(a Assignment) bool {
		return a.Kind == AssignmentEngineDesign && a.EngineDesignID == id
	})
	return nil
}

// DeleteRocketDesign removes a rocket design lineage. Refuses to delete
// the last remaining rocket design, for the same reason as engines.
func (c *Company) DeleteRocketDesign(id int) error {
	if _, ok := c.RocketLineages[id]; !ok {
		return violation("Invalid rocket design")
	}
	if len(c.RocketLineages) <= 1 {
		return violation("Cannot delete the last rocket design")
	}
	delete(c.RocketLineages, id)
	delete(c.RocketCosts, id)
	c.unassignTeamsFrom(func(a Assignment) bool {
		return a.Kind == AssignmentRocketDesign && a.RocketDesignID == id
	})
	return nil
}

// RenameEngineDesign changes an engine design's display name.
func (c *Company) RenameEngineDesign(id int, newName string) error {
	lineage, ok := c.EngineLineages[id]
	if !ok {
		return violation("Invalid engine design")
	}
	lineage.Name = newName
	return nil
}

// RenameRocketDesign changes a rocket design's display name.
func (c *Company) RenameRocketDesign(id int, newName string) error {
	lineage, ok := c.RocketLineages[id]
	if !ok {
		return violation("Invalid rocket design")
	}
	lineage.Name = newName
	return nil
}

// SetEngineFuel changes an engine design's fuel type. Only valid while
// the design is still in Specification.
func (c *Company) SetEngineFuel(id int, fuel design.FuelType) error {
	lineage, ok := c.EngineLineages[id]
	if !ok {
		return violation("Invalid engine design")
	}
	if !lineage.Head.SetFuel(fuel) {
		return violation("Design is no longer editable")
	}
	return nil
}

// SetEngineScale changes an engine design's scale, clamped to
// [EngineScaleMin, EngineScaleMax]. Only valid while in Specification.
func (c *Company) SetEngineScale(id int, scale float64) error {
	lineage, ok := c.EngineLineages[id]
	if !ok {
		return violation("Invalid engine design")
	}
	if !lineage.Head.SetScale(scale) {
		return violation("Design is no longer editable")
	}
	return nil
}

// SetRocketStages replaces a rocket design's entire stage stack. Only
// valid while the design is still in Specification.
func (c *Company) SetRocketStages(id int, stages []design.Stage) error {
	lineage, ok := c.RocketLineages[id]
	if !ok {
		return violation("Invalid rocket design")
	}
	if !lineage.Head.CanModify() {
		return violation("Design is no longer editable")
	}
	lineage.Head.Stages = stages
	return nil
}

// SetHardwareSacrificePolicy sets the automatic hardware-sacrifice
// threshold applied to an engine design's workflow tick.
func (c *Company) SetHardwareSacrificePolicy(engineID int, policy design.HardwareSacrificePolicy) error {
	if _, ok := c.EngineLineages[engineID]; !ok {
		return violation("Invalid engine design")
	}
	c.HardwarePolicy[engineID] = policy
	return nil
}

// SubmitEngineDesignToEngineering moves an engine design from
// Specification into Engineering, locking its specification.
func (c *Company) SubmitEngineDesignToEngineering(id int) error {
	lineage, ok := c.EngineLineages[id]
	if !ok {
		return violation("Invalid engine design")
	}
	if !lineage.Head.Workflow.SubmitToEngineering() {
		return violation("Design is not in Specification")
	}
	return nil
}

// SubmitRocketDesignToEngineering moves a rocket design from
// Specification into Engineering, locking its stage stack. Requires at
// least one stage.
func (c *Company) SubmitRocketDesignToEngineering(id int) error {
	lineage, ok := c.RocketLineages[id]
	if !ok {
		return violation("Invalid rocket design")
	}
	if len(lineage.Head.Stages) == 0 {
		return violation("Rocket design has no stages")
	}
	if !lineage.Head.Workflow.SubmitToEngineering() {
		return violation("Design is not in Specification")
	}
	return nil
}
