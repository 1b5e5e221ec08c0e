package aerocorp

// UpgradeLaunchPad advances the launch pad to the next level, debiting its
// upgrade cost.
func (c *Company) UpgradeLaunchPad() error {
	if !c.LaunchSite.CanUpgradePad() {
		return violation("Launch pad is already at maximum level")
	}
	cost := c.LaunchSite.PadUpgradeCost()
	if cost > c.Money {
		return violation("Not enough funds for materials")
	}
	c.Money -= cost
	c.LaunchSite.UpgradePad()
	return nil
}

// UpgradePropellantStorage adds additionalKg of propellant storage
// capacity to the launch site, debiting its cost (scaled off the current
// capacity before the addition).
func (c *Company) UpgradePropellantStorage(additionalKg float64) error {
	cost := c.LaunchSite.PropellantStorageUpgradeCost()
	if cost > c.Money {
		return violation("Not enough funds for materials")
	}
	c.Money -= cost
	c.LaunchSite.UpgradePropellantStorage(additionalKg)
	return nil
}
