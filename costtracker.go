package aerocorp

import "github.com/gonum/floats"

// CostTracker accumulates every cost attributable to one design lineage:
// engineering salary and hardware-test consumption (its Non-Recurring
// Engineering cost), plus the material cost of every unit manufactured.
type CostTracker struct {
	EngineeringSalarySpent       float64
	HardwareTestCost             float64
	TotalProductionMaterialCost float64
	UnitsProduced                uint32
}

// NRE is Non-Recurring Engineering cost: salary plus hardware test cost.
func (c *CostTracker) NRE() float64 {
	return floats.Sum([]float64{c.EngineeringSalarySpent, c.HardwareTestCost})
}

// TotalCost is NRE plus every unit's production material cost.
func (c *CostTracker) TotalCost() float64 {
	return c.NRE() + c.TotalProductionMaterialCost
}

// AverageCostPerFlight amortizes TotalCost over a number of launches, or
// 0 if there have been none.
func (c *CostTracker) AverageCostPerFlight(launches uint32) float64 {
	if launches == 0 {
		return 0.0
	}
	return c.TotalCost() / float64(launches)
}

// AverageProductionCost is the mean material cost per unit produced, or 0
// if nothing has been produced.
func (c *CostTracker) AverageProductionCost() float64 {
	if c.UnitsProduced == 0 {
		return 0.0
	}
	return c.TotalProductionMaterialCost / float64(c.UnitsProduced)
}

// AddSalary attributes engineering salary cost to this design.
func (c *CostTracker) AddSalary(amount float64) {
	c.EngineeringSalarySpent += amount
}

// AddHardwareTestCost attributes the cost of an engine consumed during
// hardware testing.
func (c *CostTracker) AddHardwareTestCost(amount float64) {
	c.HardwareTestCost += amount
}

// AddProductionCost records the production of units units at total
// material cost cost.
func (c *CostTracker) AddProductionCost(cost float64, units uint32) {
	c.TotalProductionMaterialCost += cost
	c.UnitsProduced += units
}
