package aerocorp

// HireTeam hires a new team of the given type, debiting its hire cost.
func (c *Company) HireTeam(teamType TeamType) (uint32, error) {
	cost := c.Config.EngineeringHireCost
	if teamType == TeamManufacturing {
		cost = c.Config.ManufacturingHireCost
	}
	if cost > c.Money {
		return 0, violation("Not enough funds for materials")
	}
	c.Money -= cost
	id := c.nextTeamID
	c.nextTeamID++
	c.Teams[id] = NewTeam(id, teamType)
	return id, nil
}

// FireTeam removes a team, unassigning it first.
func (c *Company) FireTeam(teamID uint32) error {
	if _, ok := c.Teams[teamID]; !ok {
		return violation("Invalid team")
	}
	delete(c.Teams, teamID)
	return nil
}

// AssignTeamToEngineDesign assigns an engineering team to an engine
// design, resetting its ramp-up clock.
func (c *Company) AssignTeamToEngineDesign(teamID uint32, engineDesignID int) error {
	t, ok := c.Teams[teamID]
	if !ok {
		return violation("Invalid team")
	}
	if t.Type != TeamEngineering {
		return violation("Team is not an engineering team")
	}
	if _, ok := c.EngineLineages[engineDesignID]; !ok {
		return violation("Invalid engine design")
	}
	t.Assign(Assignment{Kind: AssignmentEngineDesign, EngineDesignID: engineDesignID})
	return nil
}

// AssignTeamToRocketDesign assigns an engineering team to a rocket
// design, resetting its ramp-up clock.
func (c *Company) AssignTeamToRocketDesign(teamID uint32, rocketDesignID int) error {
	t, ok := c.Teams[teamID]
	if !ok {
		return violation("Invalid team")
	}
	if t.Type != TeamEngineering {
		return violation("Team is not an engineering team")
	}
	if _, ok := c.RocketLineages[rocketDesignID]; !ok {
		return violation("Invalid rocket design")
	}
	t.Assign(Assignment{Kind: AssignmentRocketDesign, RocketDesignID: rocketDesignID})
	return nil
}

// AssignTeamToOrder assigns a manufacturing team to an active order,
// resetting its ramp-up clock.
func (c *Company) AssignTeamToOrder(teamID uint32, orderID uint32) error {
	t, ok := c.Teams[teamID]
	if !ok {
		return violation("Invalid team")
	}
	if t.Type != TeamManufacturing {
		return violation("Team is not a manufacturing team")
	}
	if c.Manufacturing.GetOrder(orderID) == nil {
		return violation("Invalid manufacturing order")
	}
	t.Assign(Assignment{Kind: AssignmentManufacturing, OrderID: orderID})
	return nil
}

// UnassignTeam clears a team's current assignment, leaving its ramp-up
// state untouched.
func (c *Company) UnassignTeam(teamID uint32) error {
	t, ok := c.Teams[teamID]
	if !ok {
		return violation("Invalid team")
	}
	t.Unassign()
	return nil
}
