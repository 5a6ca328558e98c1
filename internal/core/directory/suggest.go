// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"fmt"
	"strings"

	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/internal/core/taxonomy"
	"github.com/kalamanch/directory/pkg/textfold"
)

// MaxSuggestions caps the suggestion list.
const MaxSuggestions = 6

// SuggestionType groups suggestions; categories rank first, artists last.
type SuggestionType string

const (
	SuggestCategory SuggestionType = "category"
	SuggestLocation SuggestionType = "location"
	SuggestArtist   SuggestionType = "artist"
)

// Suggestion is one type-ahead entry. Location suggestions carry the resolved
// taxonomy path so a caller can apply them as filters directly.
type Suggestion struct {
	Type     SuggestionType `json:"type"`
	Text     string         `json:"text"`
	Subtext  string         `json:"subtext"`
	Value    string         `json:"value"`
	State    string         `json:"state,omitempty"`
	District string         `json:"district,omitempty"`
	ArtistID string         `json:"artistId,omitempty"`
}

/*
Suggest returns up to [MaxSuggestions] entries whose label contains text,
ignoring case and accents.

Categories come first in taxonomy order, then locations (each state followed
by its matching districts), then artists in record order. A blank text yields
an empty list.
*/
func Suggest(text string, tax *taxonomy.Taxonomy, records []artist.Record) []Suggestion {
	suggestions := make([]Suggestion, 0, MaxSuggestions)

	needle := strings.TrimSpace(text)
	if needle == "" {
		return suggestions
	}

	full := func() bool { return len(suggestions) >= MaxSuggestions }

	for _, category := range tax.Categories() {
		if full() {
			return suggestions
		}
		if textfold.Contains(category, needle) {
			suggestions = append(suggestions, Suggestion{
				Type:    SuggestCategory,
				Text:    category,
				Subtext: "Category",
				Value:   category,
			})
		}
	}

	for _, state := range tax.States() {
		if full() {
			return suggestions
		}
		if textfold.Contains(state.Name, needle) {
			suggestions = append(suggestions, Suggestion{
				Type:    SuggestLocation,
				Text:    fmt.Sprintf("Artists in %s", state.Name),
				Subtext: "State",
				Value:   state.Name,
				State:   state.Name,
			})
		}

		for _, district := range state.Districts {
			if full() {
				return suggestions
			}
			if textfold.Contains(district.Name, needle) {
				suggestions = append(suggestions, Suggestion{
					Type:     SuggestLocation,
					Text:     fmt.Sprintf("Artists in %s", district.Name),
					Subtext:  fmt.Sprintf("District in %s", state.Name),
					Value:    district.Name,
					State:    state.Name,
					District: district.Name,
				})
			}
		}
	}

	for i := range records {
		if full() {
			return suggestions
		}
		record := &records[i]
		if textfold.Contains(record.Name, needle) {
			suggestions = append(suggestions, Suggestion{
				Type:     SuggestArtist,
				Text:     record.Name,
				Subtext:  fmt.Sprintf("%s • %s", record.Category, record.City),
				Value:    record.Name,
				ArtistID: record.ID,
			})
		}
	}

	return suggestions
}
