package aerocorp

import "github.com/aclough/rocket-game-sub000/mission"

// RefreshContracts replaces the available-contract board with a freshly
// generated, destination-diverse batch, debiting the refresh cost.
func (c *Company) RefreshContracts(count int) ([]Event, error) {
	if c.Config.ContractRefreshCost > c.Money {
		return nil, violation("Not enough funds for materials")
	}
	c.Money -= c.Config.ContractRefreshCost
	batch := mission.GenerateDiverseBatch(count, c.nextContractID, c.contractRNG())
	c.nextContractID += uint32(len(batch))
	c.AvailableContracts = batch
	logMission(c.Logger, "event", "contracts_refreshed", "count", len(batch))
	return []Event{{Kind: EventContractsRefreshed, Amount: c.Config.ContractRefreshCost}}, nil
}

// SeedInitialContracts populates the board the first time, at no cost —
// used once by a fresh playthrough so there's something to bid on before
// the first paid refresh.
func (c *Company) SeedInitialContracts(count int) {
	batch := mission.GenerateDiverseBatch(count, c.nextContractID, c.contractRNG())
	c.nextContractID += uint32(len(batch))
	c.AvailableContracts = batch
}

// AbandonContract removes a contract from the board without launching it,
// at no cost and no penalty — it simply stops being offered.
func (c *Company) AbandonContract(contractID uint32) error {
	for i, ct := range c.AvailableContracts {
		if ct.ID == contractID {
			c.AvailableContracts = append(c.AvailableContracts[:i], c.AvailableContracts[i+1:]...)
			return nil
		}
	}
	return violation("Invalid contract")
}
