package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/jobgear/internal/game/inventory"
)

func TestAllSlots_FourteenOrderedByCode(t *testing.T) {
	all := inventory.AllSlots()
	require.Len(t, all, 14)
	var codes []rune
	for _, s := range all {
		codes = append(codes, s.Code())
	}
	assert.Equal(t, []rune("ABCEFHLMNORSTW"), codes)
}

func TestPrimarySlots(t *testing.T) {
	assert.Equal(t, []inventory.Slot{inventory.SlotMainHand, inventory.SlotOffHand, inventory.SlotTwoHand}, inventory.PrimarySlots())
	assert.True(t, inventory.SlotTwoHand.IsPrimary())
	assert.False(t, inventory.SlotRing.IsPrimary())
}

func TestSlotByCode(t *testing.T) {
	s, ok := inventory.SlotByCode('S')
	require.True(t, ok)
	assert.Equal(t, inventory.SlotStockings, s)

	_, ok = inventory.SlotByCode('Z')
	assert.False(t, ok)
	_, ok = inventory.SlotByCode('s')
	assert.False(t, ok)
}

func TestSlotDisplayName(t *testing.T) {
	assert.Equal(t, "Main Hand", inventory.SlotDisplayName("main_hand"))
	assert.Equal(t, "mystery", inventory.SlotDisplayName("mystery"))
}

func TestSlot_UnknownHasNoCode(t *testing.T) {
	assert.Equal(t, rune(0), inventory.Slot("tail").Code())
	assert.False(t, inventory.Slot("tail").Valid())
}

func TestProperty_SlotCodeRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.SampledFrom(inventory.AllSlots()).Draw(rt, "slot")
		assert.True(rt, s.Valid())
		got, ok := inventory.SlotByCode(s.Code())
		require.True(rt, ok)
		assert.Equal(rt, s, got)
	})
}
