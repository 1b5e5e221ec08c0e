package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHardwareSacrificePolicyThreshold(t *testing.T) {
	assert.Equal(t, 0.0, SacrificeOff.Threshold())
	assert.Equal(t, 0.5, SacrificeConservative.Threshold())
	assert.Equal(t, 0.65, SacrificeModerate.Threshold())
	assert.Equal(t, 0.8, SacrificeAggressive.Threshold())
}

func TestHardwareSacrificePolicyShouldSacrifice(t *testing.T) {
	assert.False(t, SacrificeOff.ShouldSacrifice(StatusTesting, 0.01), "off never triggers")
	assert.False(t, SacrificeModerate.ShouldSacrifice(StatusEngineering, 0.01), "only triggers while Testing or Fixing")
	assert.False(t, SacrificeModerate.ShouldSacrifice(StatusTesting, 0.9), "boost above threshold does not trigger")
	assert.True(t, SacrificeModerate.ShouldSacrifice(StatusTesting, 0.5))
	assert.True(t, SacrificeModerate.ShouldSacrifice(StatusFixing, 0.5))
}
