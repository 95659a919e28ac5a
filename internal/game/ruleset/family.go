package ruleset

import "github.com/cory-johannsen/jobgear/internal/game/stat"

// Category separates jobs whose gear is picked by main stats from production jobs.
type Category string

const (
	CategoryAdventuring Category = "adventuring"
	CategoryCrafting    Category = "crafting"
	CategoryGathering   Category = "gathering"
)

// Family groups jobs that share stat priorities and a minimum armor capability.
// A job's family fixes its category, its primary stat, and its supporting stats.
type Family string

const (
	FamilyTank      Family = "tank"
	FamilyStrength  Family = "strength"
	FamilyDexterity Family = "dexterity"
	FamilyHealer    Family = "healer"
	FamilyCaster    Family = "caster"
	FamilyCrafting  Family = "crafting"
	FamilyGathering Family = "gathering"
)

type familyPolicy struct {
	category   Category
	primary    stat.Stat // empty for production families
	supporting []stat.Stat
	minArmor   ArmorCapability
}

var familyPolicies = map[Family]familyPolicy{
	FamilyTank: {
		category:   CategoryAdventuring,
		primary:    stat.Strength,
		supporting: []stat.Stat{stat.Tenacity, stat.Defense},
		minArmor:   ArmorPlate,
	},
	FamilyStrength: {
		category: CategoryAdventuring,
		primary:  stat.Strength,
		minArmor: ArmorLeather,
	},
	FamilyDexterity: {
		category: CategoryAdventuring,
		primary:  stat.Dexterity,
		minArmor: ArmorLeather,
	},
	FamilyHealer: {
		category:   CategoryAdventuring,
		primary:    stat.Mind,
		supporting: []stat.Stat{stat.Piety},
	},
	FamilyCaster: {
		category: CategoryAdventuring,
		primary:  stat.Intelligence,
	},
	FamilyCrafting: {
		category:   CategoryCrafting,
		supporting: []stat.Stat{stat.Control, stat.CP, stat.Craftsmanship},
	},
	FamilyGathering: {
		category:   CategoryGathering,
		supporting: []stat.Stat{stat.Gathering, stat.GP, stat.Perception},
	},
}

// Families returns every declared family.
func Families() []Family {
	return []Family{
		FamilyTank, FamilyStrength, FamilyDexterity, FamilyHealer, FamilyCaster,
		FamilyCrafting, FamilyGathering,
	}
}

// Category returns the production category of the family, or "" if f is unknown.
func (f Family) Category() Category {
	return familyPolicies[f].category
}

// MinArmor returns the lowest armor capability any job of family f may declare.
func (f Family) MinArmor() ArmorCapability {
	return familyPolicies[f].minArmor
}

// Valid reports whether f is a declared family.
func (f Family) Valid() bool {
	_, ok := familyPolicies[f]
	return ok
}

// mainStats returns the stats with absolute priority for jobs of family f.
// Adventuring jobs always pair their primary stat with vitality.
func (f Family) mainStats() stat.Set {
	p := familyPolicies[f]
	if p.primary == "" {
		return stat.NewSet()
	}
	return stat.NewSet(p.primary, stat.Vitality)
}

func (f Family) supportingStats() stat.Set {
	return stat.NewSet(familyPolicies[f].supporting...)
}
