// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package taxonomy holds the static reference data of the directory: the
State → District → Block location hierarchy and the Category → Subcategory
catalogue.

All lookups are pure and never fail. Unknown names yield empty results.
Resetting dependent selections when a parent changes is the caller's job;
see directory.Session for the canonical implementation of that contract.
*/
package taxonomy

// # Location Hierarchy

// District is the second level of the location hierarchy.
type District struct {
	Name   string   `json:"name"`
	Blocks []string `json:"blocks"`
}

// State is the top level of the location hierarchy.
type State struct {
	Name      string     `json:"name"`
	Districts []District `json:"districts"`
}

// # Category Catalogue

// Category is a top-level artist category with its allowed subcategories.
type Category struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// Taxonomy is an immutable view over the reference data.
//
// It is built once at startup and is safe for concurrent reads.
type Taxonomy struct {
	states        []State
	categories    []string
	subcategories map[string][]string

	stateIndex    map[string]int
	districtOwner map[string]string
}

// New builds a [Taxonomy] from raw reference data. Inputs are copied.
func New(states []State, categories []string, subcategories map[string][]string) *Taxonomy {
	taxonomy := &Taxonomy{
		states:        cloneStates(states),
		categories:    append([]string(nil), categories...),
		subcategories: make(map[string][]string, len(subcategories)),
		stateIndex:    make(map[string]int, len(states)),
		districtOwner: make(map[string]string),
	}

	for name, subs := range subcategories {
		taxonomy.subcategories[name] = append([]string(nil), subs...)
	}

	for i, state := range taxonomy.states {
		taxonomy.stateIndex[state.Name] = i

		for _, district := range state.Districts {
			// First state wins when two states share a district name.
			if _, taken := taxonomy.districtOwner[district.Name]; !taken {
				taxonomy.districtOwner[district.Name] = state.Name
			}
		}
	}

	return taxonomy
}

// # Location Lookups

// States returns every state in declaration order.
func (t *Taxonomy) States() []State {
	return cloneStates(t.states)
}

// StateNames returns the state names in declaration order.
func (t *Taxonomy) StateNames() []string {
	names := make([]string, len(t.states))
	for i, state := range t.states {
		names[i] = state.Name
	}
	return names
}

// HasState reports whether the state is known.
func (t *Taxonomy) HasState(state string) bool {
	_, ok := t.stateIndex[state]
	return ok
}

// DistrictsOf returns the districts of a state, or an empty slice when the
// state is unknown.
func (t *Taxonomy) DistrictsOf(state string) []District {
	i, ok := t.stateIndex[state]
	if !ok {
		return []District{}
	}
	return cloneDistricts(t.states[i].Districts)
}

// HasDistrict reports whether district belongs to state.
func (t *Taxonomy) HasDistrict(state, district string) bool {
	_, ok := t.district(state, district)
	return ok
}

// BlocksOf returns the blocks of a district, or an empty slice when either
// level is unknown.
func (t *Taxonomy) BlocksOf(state, district string) []string {
	found, ok := t.district(state, district)
	if !ok {
		return []string{}
	}
	return append([]string{}, found.Blocks...)
}

// StateOfDistrict resolves the parent state of a district name.
func (t *Taxonomy) StateOfDistrict(district string) (string, bool) {
	state, ok := t.districtOwner[district]
	return state, ok
}

func (t *Taxonomy) district(state, district string) (District, bool) {
	i, ok := t.stateIndex[state]
	if !ok {
		return District{}, false
	}

	for _, candidate := range t.states[i].Districts {
		if candidate.Name == district {
			return candidate, true
		}
	}
	return District{}, false
}

// # Category Lookups

// Categories returns the category names in declaration order.
func (t *Taxonomy) Categories() []string {
	return append([]string{}, t.categories...)
}

// Catalogue returns every category with its subcategories.
func (t *Taxonomy) Catalogue() []Category {
	catalogue := make([]Category, len(t.categories))
	for i, name := range t.categories {
		catalogue[i] = Category{Name: name, Subcategories: t.SubcategoriesOf(name)}
	}
	return catalogue
}

// HasCategory reports whether the category is part of the fixed enum.
func (t *Taxonomy) HasCategory(category string) bool {
	for _, name := range t.categories {
		if name == category {
			return true
		}
	}
	return false
}

// SubcategoriesOf returns the allowed subcategories of a category, or an
// empty slice when none are registered.
func (t *Taxonomy) SubcategoriesOf(category string) []string {
	return append([]string{}, t.subcategories[category]...)
}

// HasSubcategory reports whether subcategory is registered under category.
func (t *Taxonomy) HasSubcategory(category, subcategory string) bool {
	for _, name := range t.subcategories[category] {
		if name == subcategory {
			return true
		}
	}
	return false
}

func cloneStates(states []State) []State {
	out := make([]State, len(states))
	for i, state := range states {
		out[i] = State{Name: state.Name, Districts: cloneDistricts(state.Districts)}
	}
	return out
}

func cloneDistricts(districts []District) []District {
	out := make([]District, len(districts))
	for i, district := range districts {
		out[i] = District{Name: district.Name, Blocks: append([]string{}, district.Blocks...)}
	}
	return out
}
