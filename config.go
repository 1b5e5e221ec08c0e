package aerocorp

import (
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = defaultConstants()
)

// Constants holds every tunable named in the external interface contract:
// starting budget, hire costs, refresh cadence, decay rates, work totals,
// ramp-up time, and the pooled-efficiency exponent. A host may override any
// of them via a TOML file; absent that, the literal values from the
// contract are used so the engine runs standalone with no environment.
type Constants struct {
	StartingBudget           float64
	EngineeringHireCost       float64
	ManufacturingHireCost     float64
	ContractRefreshCost       float64
	ContractRefreshPeriodDays float64
	FloorSpacePeriodDays      float64
	HardwareDecayRatePerDay   float64
	DetailedEngineeringWork   float64
	TestingWork               float64
	FlawFixWork               float64
	RampUpDays                float64
	PooledEfficiencyExponent  float64
	EngineTestCost            float64
	RocketTestCost            float64
	FlawFixCost               float64
	BoosterAttachmentMassKg   float64
	BoosterAttachmentCost     float64
	G0                        float64
}

func defaultConstants() Constants {
	return Constants{
		StartingBudget:            500_000_000,
		EngineeringHireCost:       150_000,
		ManufacturingHireCost:     900_000,
		ContractRefreshCost:       10_000_000,
		ContractRefreshPeriodDays: 30,
		FloorSpacePeriodDays:      30,
		HardwareDecayRatePerDay:   0.004,
		DetailedEngineeringWork:   30,
		TestingWork:               30,
		FlawFixWork:               14,
		RampUpDays:                7,
		PooledEfficiencyExponent:  0.75,
		EngineTestCost:            1_000_000,
		RocketTestCost:            2_000_000,
		FlawFixCost:               5_000_000,
		BoosterAttachmentMassKg:   500.0,
		BoosterAttachmentCost:     1_000_000,
		G0:                        9.81,
	}
}

// companyConfig lazily loads Constants from the AEROCORP_CONFIG directory
// (a config.toml inside it), falling back silently to defaultConstants
// when the env var is unset or the file is absent. Unlike the teacher's
// smdConfig, which panics when SPICE data can't be found, this module must
// run in tests with no environment at all, so any load failure just keeps
// the defaults already in config.
func companyConfig() Constants {
	if cfgLoaded {
		return config
	}
	cfgLoaded = true

	dir := os.Getenv("AEROCORP_CONFIG")
	if dir == "" {
		return config
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return config
	}

	merged := config
	if err := v.Unmarshal(&merged); err == nil {
		config = merged
	}
	return config
}
