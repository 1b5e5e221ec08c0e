package mission

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContractWithinCatalogBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := GenerateContract(1, rng)

	var matched *PayloadType
	for i := range payloadTypes {
		if payloadTypes[i].Name == c.PayloadName {
			matched = &payloadTypes[i]
			break
		}
	}
	require.NotNil(t, matched)
	assert.GreaterOrEqual(t, c.MassKg, matched.MinMassKg)
	assert.LessOrEqual(t, c.MassKg, matched.MaxMassKg)
	assert.Equal(t, matched.Destination, c.Destination)
	assert.Greater(t, c.Reward, matched.BaseReward)
}

func TestGenerateBatchAssignsConsecutiveIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	batch := GenerateBatch(5, 100, rng)

	require.Len(t, batch, 5)
	for i, c := range batch {
		assert.Equal(t, uint32(100+i), c.ID)
	}
}

func TestGenerateDiverseBatchCyclesDestinations(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	batch := GenerateDiverseBatch(len(AllDestinations()), 1, rng)

	seen := map[Destination]bool{}
	for _, c := range batch {
		seen[c.Destination] = true
	}
	assert.Len(t, seen, len(AllDestinations()), "one contract per distinct destination before any repeats")
}

func TestDestinationRequiredDeltaVMatchesGraph(t *testing.T) {
	m := NewEarthMoonMap()
	dv := DestLEO.RequiredDeltaV(m)
	assert.InDelta(t, 8100.0, dv, 1e-9)
}

func TestDestinationLocationID(t *testing.T) {
	assert.Equal(t, "leo", DestLEO.LocationID())
	assert.Equal(t, "geo", DestGEO.LocationID())
}
