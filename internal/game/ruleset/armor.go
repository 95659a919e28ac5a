package ruleset

import "fmt"

// ArmorCapability is the heaviest armor weight a job may equip.
// Capabilities are totally ordered: a job able to wear plate may also wear mail and leather.
type ArmorCapability int

const (
	ArmorNone ArmorCapability = iota
	ArmorLeather
	ArmorMail
	ArmorPlate
)

var armorNames = map[ArmorCapability]string{
	ArmorNone:    "none",
	ArmorLeather: "leather",
	ArmorMail:    "mail",
	ArmorPlate:   "plate",
}

// String returns the lower-case armor weight name.
func (a ArmorCapability) String() string {
	if name, ok := armorNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ArmorCapability(%d)", int(a))
}

// Allows reports whether a job with capability a may wear armor that requires required.
func (a ArmorCapability) Allows(required ArmorCapability) bool {
	return a >= required
}

// ParseArmorCapability converts an armor weight name to an ArmorCapability.
//
// Precondition: s may be any string.
// Postcondition: Returns a valid capability or a non-nil error.
func ParseArmorCapability(s string) (ArmorCapability, error) {
	for a, name := range armorNames {
		if name == s {
			return a, nil
		}
	}
	return ArmorNone, fmt.Errorf("unknown armor capability %q", s)
}
