// Package inventory provides the equipment slot enumeration used to classify gear.
package inventory

import "sort"

// Slot identifies an equipment slot a piece of gear occupies.
//
// Weapons are classed by the slot they occupy: most jobs hold a single main-hand
// weapon, while jobs that may use either a one- or two-handed weapon use TwoHand.
type Slot string

const (
	SlotHands    Slot = "hands"
	SlotBody     Slot = "body"
	SlotCowl     Slot = "cowl"
	SlotEarrings Slot = "earrings"
	SlotFeet     Slot = "feet"
	SlotHead     Slot = "head"
	SlotLegs     Slot = "legs"
	SlotMainHand Slot = "main_hand"
	SlotNeck     Slot = "neck"
	SlotOffHand  Slot = "off_hand"
	SlotRing     Slot = "ring"
	// SlotStockings covers both the feet and legs slots.
	SlotStockings Slot = "stockings"
	SlotTwoHand   Slot = "two_hand"
	SlotWrists    Slot = "wrists"
)

type slotInfo struct {
	code    rune
	label   string
	primary bool
}

var slots = map[Slot]slotInfo{
	SlotHands:     {code: 'A', label: "Hands"},
	SlotBody:      {code: 'B', label: "Body"},
	SlotCowl:      {code: 'C', label: "Cowl"},
	SlotEarrings:  {code: 'E', label: "Earrings"},
	SlotFeet:      {code: 'F', label: "Feet"},
	SlotHead:      {code: 'H', label: "Head"},
	SlotLegs:      {code: 'L', label: "Legs"},
	SlotMainHand:  {code: 'M', label: "Main Hand", primary: true},
	SlotNeck:      {code: 'N', label: "Neck"},
	SlotOffHand:   {code: 'O', label: "Off Hand", primary: true},
	SlotRing:      {code: 'R', label: "Ring"},
	SlotStockings: {code: 'S', label: "Stockings"},
	SlotTwoHand:   {code: 'T', label: "Two Hand", primary: true},
	SlotWrists:    {code: 'W', label: "Wrists"},
}

var slotsByCode = func() map[rune]Slot {
	m := make(map[rune]Slot, len(slots))
	for s, info := range slots {
		m[info.code] = s
	}
	return m
}()

// AllSlots returns every slot ordered by code.
//
// Postcondition: Returns a fresh slice of 14 slots.
func AllSlots() []Slot {
	out := make([]Slot, 0, len(slots))
	for s := range slots {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return slots[out[i]].code < slots[out[j]].code })
	return out
}

// PrimarySlots returns the weapon-holding slots ordered by code.
//
// Gear for these slots is usually restricted to one job (at most three for shields),
// unlike armor, which any job able to wear its weight may equip.
func PrimarySlots() []Slot {
	var out []Slot
	for _, s := range AllSlots() {
		if slots[s].primary {
			out = append(out, s)
		}
	}
	return out
}

// SlotByCode returns the slot printed as code on gear.
//
// Postcondition: ok is true iff code is one of the 14 slot codes.
func SlotByCode(code rune) (Slot, bool) {
	s, ok := slotsByCode[code]
	return s, ok
}

// Code returns the single-character code of s, or 0 if s is unknown.
func (s Slot) Code() rune { return slots[s].code }

// IsPrimary reports whether s holds a weapon or shield.
func (s Slot) IsPrimary() bool { return slots[s].primary }

// Valid reports whether s is a known slot.
func (s Slot) Valid() bool {
	_, ok := slots[s]
	return ok
}

// SlotDisplayName returns the human-readable label for a slot identifier.
//
// Precondition: slot is a non-empty string.
// Postcondition: returns the registered label, or slot itself if not found.
func SlotDisplayName(slot string) string {
	if info, ok := slots[Slot(slot)]; ok {
		return info.label
	}
	return slot
}
