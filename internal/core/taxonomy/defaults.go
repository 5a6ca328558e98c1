// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

// Built-in reference data shipped with the directory.
var (
	defaultCategories = []string{
		"Singer", "Musician", "Actor", "Dancer", "Model",
		"Recording Studio", "Live Sound", "Photographer", "Video Editor", "Makeup Artist",
	}

	defaultSubcategories = map[string][]string{
		"Singer":           {"Bollywood", "Folk", "Classical", "Rapper", "Devotional", "Playback"},
		"Dancer":           {"Classical", "Hip Hop", "Contemporary", "Folk", "Bollywood"},
		"Musician":         {"Guitarist", "Drummer", "Keyboardist", "Flutist", "Tabla"},
		"Actor":            {"TV Actor", "Film Actor", "Theatre", "Voice Over", "Child Artist"},
		"Recording Studio": {"Vocal Recording", "Dubbing", "Mixing/Mastering", "Jam Room"},
		"Live Sound":       {"DJ", "PA System", "Orchestra", "Sound Engineer"},
		"Photographer":     {"Wedding", "Fashion", "Product", "Event"},
		"Makeup Artist":    {"Bridal", "Party", "Cinematic", "SFX"},
	}

	defaultStates = []State{
		{
			Name: "Rajasthan",
			Districts: []District{
				{Name: "Jaipur", Blocks: []string{"Sanganer", "Jhotwara", "Amer", "Phulera"}},
				{Name: "Jodhpur", Blocks: []string{"Luni", "Mandore", "Osian", "Bilara"}},
				{Name: "Udaipur", Blocks: []string{"Girwa", "Badgaon", "Mavli", "Salumbar"}},
				{Name: "Kota", Blocks: []string{"Ladpura", "Digod", "Sangod"}},
			},
		},
		{
			Name: "Maharashtra",
			Districts: []District{
				{Name: "Mumbai", Blocks: []string{"Andheri", "Bandra", "Colaba", "Dadar"}},
				{Name: "Pune", Blocks: []string{"Haveli", "Khed", "Mulshi"}},
				{Name: "Nagpur", Blocks: []string{"Ramtek", "Hingna", "Kamptee"}},
			},
		},
		{
			Name: "Delhi",
			Districts: []District{
				{Name: "New Delhi", Blocks: []string{"Connaught Place", "Chanakyapuri"}},
				{Name: "South Delhi", Blocks: []string{"Hauz Khas", "Saket", "Mehrauli"}},
				{Name: "North Delhi", Blocks: []string{"Civil Lines", "Sadar Bazar"}},
			},
		},
	}
)

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return New(defaultStates, defaultCategories, defaultSubcategories)
}
