package flight

// LaunchSite is the company's ground infrastructure: a pad level, which
// caps the wet mass of rockets it can fly, and propellant storage.
type LaunchSite struct {
	PadLevel             uint32
	PropellantStorageKg  float64
}

// NewLaunchSite returns a starter launch site: a small pad and modest
// propellant storage.
func NewLaunchSite() *LaunchSite {
	return &LaunchSite{
		PadLevel:            1,
		PropellantStorageKg: 500_000.0,
	}
}

// MaxLaunchMassKg is the heaviest wet mass the pad can support at its
// current level.
func (s *LaunchSite) MaxLaunchMassKg() float64 {
	switch s.PadLevel {
	case 1:
		return 300_000.0
	case 2:
		return 750_000.0
	case 3:
		return 1_500_000.0
	case 4:
		return 3_000_000.0
	default:
		return 7_500_000.0
	}
}

// PadUpgradeCost is the cost to upgrade to the next pad level, or 0 if
// already at the maximum level.
func (s *LaunchSite) PadUpgradeCost() float64 {
	switch s.PadLevel {
	case 1:
		return 50_000_000.0
	case 2:
		return 150_000_000.0
	case 3:
		return 400_000_000.0
	case 4:
		return 1_000_000_000.0
	default:
		return 0.0
	}
}

// CanUpgradePad reports whether the pad is below the maximum level.
func (s *LaunchSite) CanUpgradePad() bool {
	return s.PadLevel < 5
}

// UpgradePad advances the pad to the next level. Returns false if already
// at the maximum.
func (s *LaunchSite) UpgradePad() bool {
	if !s.CanUpgradePad() {
		return false
	}
	s.PadLevel++
	return true
}

// PropellantStorageUpgradeCost is $0.10 per kg of the current storage
// capacity.
func (s *LaunchSite) PropellantStorageUpgradeCost() float64 {
	return s.PropellantStorageKg * 0.1
}

// UpgradePropellantStorage adds capacity.
func (s *LaunchSite) UpgradePropellantStorage(additionalKg float64) {
	s.PropellantStorageKg += additionalKg
}

// CanLaunchRocket reports whether a rocket of the given wet mass fits
// under the pad's current mass limit.
func (s *LaunchSite) CanLaunchRocket(rocketWetMassKg float64) bool {
	return rocketWetMassKg <= s.MaxLaunchMassKg()
}

// PadLevelName is a display name for the current pad level.
func (s *LaunchSite) PadLevelName() string {
	switch s.PadLevel {
	case 1:
		return "Small Pad"
	case 2:
		return "Medium Pad"
	case 3:
		return "Large Pad"
	case 4:
		return "Heavy Pad"
	default:
		return "Super Heavy Pad"
	}
}
