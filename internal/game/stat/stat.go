// Package stat defines the closed set of character attributes that gear can carry.
package stat

import "sort"

// Stat identifies a single attribute printed on gear.
type Stat string

const (
	Strength      Stat = "strength"
	Dexterity     Stat = "dexterity"
	Vitality      Stat = "vitality"
	Intelligence  Stat = "intelligence"
	Mind          Stat = "mind"
	Piety         Stat = "piety"
	Tenacity      Stat = "tenacity"
	Defense       Stat = "defense"
	MagicDefense  Stat = "magic_defense"
	CriticalHit   Stat = "critical_hit"
	Determination Stat = "determination"
	DirectHit     Stat = "direct_hit"
	SkillSpeed    Stat = "skill_speed"
	SpellSpeed    Stat = "spell_speed"

	Craftsmanship Stat = "craftsmanship"
	Control       Stat = "control"
	CP            Stat = "cp"

	Gathering  Stat = "gathering"
	Perception Stat = "perception"
	GP         Stat = "gp"
)

var all = []Stat{
	Strength, Dexterity, Vitality, Intelligence, Mind, Piety, Tenacity, Defense,
	MagicDefense, CriticalHit, Determination, DirectHit, SkillSpeed, SpellSpeed,
	Craftsmanship, Control, CP,
	Gathering, Perception, GP,
}

var known = func() map[Stat]struct{} {
	m := make(map[Stat]struct{}, len(all))
	for _, s := range all {
		m[s] = struct{}{}
	}
	return m
}()

// All returns every known stat in declaration order.
//
// Postcondition: the returned slice is a fresh copy.
func All() []Stat {
	out := make([]Stat, len(all))
	copy(out, all)
	return out
}

// Parse returns the Stat named s.
//
// Postcondition: ok is true iff s names a known stat.
func Parse(s string) (Stat, bool) {
	st := Stat(s)
	_, ok := known[st]
	return st, ok
}

// Set is an unordered collection of stats.
type Set map[Stat]struct{}

// NewSet returns a Set holding stats.
func NewSet(stats ...Stat) Set {
	s := make(Set, len(stats))
	for _, st := range stats {
		s[st] = struct{}{}
	}
	return s
}

// Contains reports whether st is in s.
func (s Set) Contains(st Stat) bool {
	_, ok := s[st]
	return ok
}

// Len returns the number of stats in s.
func (s Set) Len() int { return len(s) }

// Union returns a new Set holding every stat in s or other.
// Neither operand is modified.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for st := range s {
		out[st] = struct{}{}
	}
	for st := range other {
		out[st] = struct{}{}
	}
	return out
}

// Clone returns a copy of s.
func (s Set) Clone() Set {
	return s.Union(nil)
}

// Equal reports whether s and other hold the same stats.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for st := range s {
		if _, ok := other[st]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the stats in s in lexical order.
func (s Set) Sorted() []Stat {
	out := make([]Stat, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the stat names in s in lexical order.
func (s Set) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, st := range sorted {
		out[i] = string(st)
	}
	return out
}
