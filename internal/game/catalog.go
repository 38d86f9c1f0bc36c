package game

// Catalog is a small, closed set of demonstration cards, one to three per
// ability archetype. Deliberately not a full commercial-scale card list
// (see DESIGN.md): the kernel's job is to dispatch the six ability
// kinds correctly, not to host hundreds of named cards.
var Catalog = map[string]func() *Card{
	"Footsoldier": func() *Card {
		return NewCard("Footsoldier", 1, KindUnit, Ability{Kind: AbilityNone}, 1, 1)
	},
	"Raider": func() *Card {
		return NewCard("Raider", 2, KindUnit, Ability{Kind: AbilityCharge}, 2, 2)
	},
	"Warhorn": func() *Card {
		return NewCard("Warhorn", 2, KindUnit, Ability{Kind: AbilityIncreaseDamage, Value: 3}, 1, 3)
	},
	"Battle Chaplain": func() *Card {
		return NewCard("Battle Chaplain", 3, KindUnit, Ability{Kind: AbilityIncreaseAlliesHealth, Value: 2}, 2, 2)
	},
	"Stoneform": func() *Card {
		return NewCard("Stoneform", 2, KindSpell, Ability{Kind: AbilitySetUnitStats, Value: 4}, 0, 0)
	},
	"Firebolt": func() *Card {
		return NewCard("Firebolt", 1, KindSpell, Ability{Kind: AbilityDealDamage, Value: 3, CanTarget: true}, 0, 0)
	},
	"Flame Wave": func() *Card {
		return NewCard("Flame Wave", 4, KindSpell, Ability{Kind: AbilityDealDamage, Value: 2, CanTarget: false}, 0, 0)
	},
	"Venom Fang": func() *Card {
		return NewCard("Venom Fang", 3, KindUnit, Ability{Kind: AbilityDealDamage, Value: 5}, 0, 2)
	},
}

// LookupCard constructs a fresh instance of a catalog card by name. It
// panics on an unknown name: deck lists are validated against the
// catalog at load time, so an unresolved lookup past that point is a
// programming error, not a data error.
func LookupCard(name string) *Card {
	ctor, ok := Catalog[name]
	if !ok {
		panic("game: unknown card " + name)
	}
	return ctor()
}
