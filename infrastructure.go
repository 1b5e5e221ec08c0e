package aerocorp

import "github.com/aclough/rocket-game-sub000/design"

// FuelDepot is propellant storage deployed at a location. Deposits cap at
// remaining capacity; withdrawals cap at what's stored. Deploying a
// second depot at the same location additively upgrades capacity rather
// than replacing it.
type FuelDepot struct {
	CapacityKg float64
	Stored     map[design.FuelType]float64
}

// NewFuelDepot returns an empty depot of the given capacity.
func NewFuelDepot(capacityKg float64) *FuelDepot {
	return &FuelDepot{CapacityKg: capacityKg, Stored: make(map[design.FuelType]float64)}
}

// TotalStoredKg sums every fuel type's stored mass.
func (d *FuelDepot) TotalStoredKg() float64 {
	total := 0.0
	for _, kg := range d.Stored {
		total += kg
	}
	return total
}

// Deposit adds propellant, capped at remaining capacity. Returns the
// amount actually deposited.
func (d *FuelDepot) Deposit(fuel design.FuelType, kg float64) float64 {
	room := d.CapacityKg - d.TotalStoredKg()
	if room <= 0 {
		return 0
	}
	amount := kg
	if amount > room {
		amount = room
	}
	d.Stored[fuel] += amount
	return amount
}

// Withdraw removes propellant, capped at what's stored. Returns the
// amount actually withdrawn.
func (d *FuelDepot) Withdraw(fuel design.FuelType, kg float64) float64 {
	have := d.Stored[fuel]
	amount := kg
	if amount > have {
		amount = have
	}
	d.Stored[fuel] -= amount
	return amount
}

// Upgrade adds capacity to an existing depot, as when a second depot
// mission deploys to an already-serviced location.
func (d *FuelDepot) Upgrade(additionalCapacityKg float64) {
	d.CapacityKg += additionalCapacityKg
}

// Infrastructure is the per-location map of deployed fuel depots.
type Infrastructure struct {
	Depots map[string]*FuelDepot
}

// NewInfrastructure returns an Infrastructure with no depots deployed.
func NewInfrastructure() *Infrastructure {
	return &Infrastructure{Depots: make(map[string]*FuelDepot)}
}

// DeployDepot deploys a depot of the given capacity at a location,
// additively upgrading any depot already there.
func (i *Infrastructure) DeployDepot(locationID string, capacityKg float64) {
	if existing, ok := i.Depots[locationID]; ok {
		existing.Upgrade(capacityKg)
		return
	}
	i.Depots[locationID] = NewFuelDepot(capacityKg)
}

// DepotAt returns the depot at a location, if any.
func (i *Infrastructure) DepotAt(locationID string) (*FuelDepot, bool) {
	d, ok := i.Depots[locationID]
	return d, ok
}
