package mission

import "math/rand"

// Destination is one of the fixed payload-delivery destinations a
// contract can target.
type Destination uint8

const (
	DestSuborbital Destination = iota
	DestLEO
	DestSSO
	DestMEO
	DestGTO
	DestGEO
)

func (d Destination) LocationID() string {
	switch d {
	case DestSuborbital:
		return "suborbital"
	case DestLEO:
		return "leo"
	case DestSSO:
		return "sso"
	case DestMEO:
		return "meo"
	case DestGTO:
		return "gto"
	case DestGEO:
		return "geo"
	default:
		return ""
	}
}

// RequiredDeltaV is the delta-v needed to reach this destination from
// Earth's surface, read straight off the delta-v graph's shortest path
// so it can never drift out of sync with the graph itself.
func (d Destination) RequiredDeltaV(m *DeltaVMap) float64 {
	_, dv, ok := m.ShortestPath("earth_surface", d.LocationID())
	if !ok {
		panic("destination unreachable from earth_surface: " + d.LocationID())
	}
	return dv
}

// AllDestinations lists every destination in order of difficulty.
func AllDestinations() []Destination {
	return []Destination{DestSuborbital, DestLEO, DestSSO, DestMEO, DestGTO, DestGEO}
}

// PayloadType is a fixed catalog entry: a payload name, its destination,
// a mass range, and its reward formula (a flat fee plus a per-kg rate).
type PayloadType struct {
	Name        string
	Destination Destination
	MinMassKg   float64
	MaxMassKg   float64
	RewardPerKg float64
	BaseReward  float64
}

// payloadTypes is a small, fixed built-in catalog — a content system is
// explicitly out of scope, so this is representative rather than
// exhaustive.
var payloadTypes = []PayloadType{
	{"Sounding rocket experiment", DestSuborbital, 50, 200, 20_000, 1_000_000},
	{"Technology demonstrator", DestSuborbital, 100, 300, 15_000, 800_000},
	{"Earth observation satellite", DestLEO, 200, 1200, 12_000, 4_000_000},
	{"Communications relay", DestMEO, 500, 2000, 9_000, 8_000_000},
	{"Weather satellite", DestSSO, 300, 900, 11_000, 5_000_000},
	{"Geostationary comsat", DestGEO, 1500, 4500, 7_000, 20_000_000},
	{"GTO transfer payload", DestGTO, 800, 3000, 8_000, 12_000_000},
}

// Contract is a generated payload-delivery request: deliver a payload of
// this mass to this destination for this reward.
type Contract struct {
	ID          uint32
	PayloadName string
	Destination Destination
	MassKg      float64
	Reward      float64
}

// GenerateContract draws a single contract from the payload-type catalog
// using rng.
func GenerateContract(id uint32, rng *rand.Rand) Contract {
	t := payloadTypes[rng.Intn(len(payloadTypes))]
	mass := t.MinMassKg + rng.Float64()*(t.MaxMassKg-t.MinMassKg)
	reward := t.BaseReward + mass*t.RewardPerKg
	return Contract{
		ID:          id,
		PayloadName: t.Name,
		Destination: t.Destination,
		MassKg:      mass,
		Reward:      reward,
	}
}

// GenerateBatch draws count contracts with consecutive ids starting at
// startingID.
func GenerateBatch(count int, startingID uint32, rng *rand.Rand) []Contract {
	contracts := make([]Contract, count)
	for i := 0; i < count; i++ {
		contracts[i] = GenerateContract(startingID+uint32(i), rng)
	}
	return contracts
}

// GenerateDiverseBatch draws count contracts, cycling through distinct
// destinations before repeating, so a refreshed board doesn't cluster on
// one destination.
func GenerateDiverseBatch(count int, startingID uint32, rng *rand.Rand) []Contract {
	byDest := map[Destination][]PayloadType{}
	for _, t := range payloadTypes {
		byDest[t.Destination] = append(byDest[t.Destination], t)
	}
	dests := AllDestinations()

	contracts := make([]Contract, 0, count)
	for i := 0; i < count; i++ {
		dest := dests[i%len(dests)]
		candidates := byDest[dest]
		if len(candidates) == 0 {
			continue
		}
		t := candidates[rng.Intn(len(candidates))]
		mass := t.MinMassKg + rng.Float64()*(t.MaxMassKg-t.MinMassKg)
		reward := t.BaseReward + mass*t.RewardPerKg
		contracts = append(contracts, Contract{
			ID:          startingID + uint32(i),
			PayloadName: t.Name,
			Destination: t.Destination,
			MassKg:      mass,
			Reward:      reward,
		})
	}
	return contracts
}
