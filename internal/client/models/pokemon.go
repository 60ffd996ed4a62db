package models

// Pokemon is one entry of a catalog list page.
type Pokemon struct {
	// Name as returned by the catalog API (lower case).
	Name string `json:"name"`

	// URL points at the item's detail resource.
	URL string `json:"url"`
}

// PokemonDetail is the detail view of a single item.
type PokemonDetail struct {
	Name string `json:"name"`

	Sprites struct {
		// FrontDefault may be empty when the API has no sprite.
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`

	Abilities []AbilityEntry `json:"abilities"`
}

// AbilityEntry wraps a named ability the way the catalog API nests it.
type AbilityEntry struct {
	Ability struct {
		Name string `json:"name"`
	} `json:"ability"`
}

// AbilityNames flattens the nested ability entries.
func (d *PokemonDetail) AbilityNames() []string {
	names := make([]string, 0, len(d.Abilities))
	for _, a := range d.Abilities {
		names = append(names, a.Ability.Name)
	}
	return names
}
