// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"fmt"
	"strings"

	"github.com/kalamanch/directory/internal/core/taxonomy"
	"github.com/kalamanch/directory/internal/platform/validate"
)

// Validate checks the hard invariants of a record against the taxonomy.
//
// It returns a VALIDATION_ERROR for violations that make a record unusable,
// and a list of soft warnings for references the taxonomy does not know.
func Validate(record *Record, tax *taxonomy.Taxonomy) (warnings []string, err error) {
	validator := &validate.Validator{}

	validator.
		Required(FieldID, record.ID).
		Required(FieldName, record.Name).
		MaxLen(FieldName, record.Name, 120).
		Custom(FieldCategory, !tax.HasCategory(record.Category), fmt.Sprintf("Unknown category %q", record.Category)).
		FloatRange(FieldRating, record.Rating, 0, 5).
		NonNegative(FieldStartingPrice, record.StartingPrice).
		NonNegative(FieldExperience, record.Experience).
		OneOf(FieldAvailability, string(record.Availability),
			string(AvailabilityOnline), string(AvailabilityOffline), string(AvailabilityBoth)).
		Date(FieldJoinedDate, record.JoinedDate).
		URL(FieldImageURL, record.ImageURL).
		Custom(FieldGeo, (record.GeoLat == nil) != (record.GeoLng == nil), "geoLat and geoLng must be set together")

	for _, skill := range record.Skills {
		if strings.TrimSpace(skill) == "" {
			validator.Custom(FieldSkills, true, "Skills must be non-empty strings")
			break
		}
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Soft references: logged, never rejected.
	if record.Subcategory != nil && !tax.HasSubcategory(record.Category, *record.Subcategory) {
		warnings = append(warnings, fmt.Sprintf("subcategory %q is not registered under %q", *record.Subcategory, record.Category))
	}

	switch {
	case !tax.HasState(record.State):
		warnings = append(warnings, fmt.Sprintf("state %q is not in the location taxonomy", record.State))
	case !tax.HasDistrict(record.State, record.District):
		warnings = append(warnings, fmt.Sprintf("district %q is not in state %q", record.District, record.State))
	}

	return warnings, nil
}
