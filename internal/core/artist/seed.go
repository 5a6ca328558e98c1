// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import "github.com/kalamanch/directory/pkg/pointer"

// SeedRecords returns a fresh copy of the built-in demo listings.
//
// Real-world coordinates are the block centroids. The Mohali listing has none
// and therefore never appears in radius searches.
func SeedRecords() []Record {
	str := pointer.To[string]
	num := pointer.To[float64]
	count := pointer.To[int]
	flag := pointer.To[bool]
	badge := pointer.To[Badge]

	return []Record{
		{
			ID: "d1", Name: "Aarav Singh", Category: "Singer", Subcategory: str("Playback"),
			City: "Jaipur", State: "Rajasthan", District: "Jaipur", Block: str("Sanganer"), Pincode: str("302029"),
			Lat: 40, Lng: 30, GeoLat: num(26.8167), GeoLng: num(75.7890),
			StartingPrice: count(15000), Experience: count(5),
			Rating: 4.8, Reviews: count(120), Verified: true, Badge: badge(BadgeGolden),
			Views: count(5200), Bookings: count(45), IsTrending: flag(true), JoinedDate: "2023-01-15",
			Availability: AvailabilityBoth, Skills: []string{"Bollywood", "Sufi", "Classical"},
			Description: str("Professional playback singer with 5 years experience."), ImageURL: "https://picsum.photos/seed/sing1/200/200",
		},
		{
			ID: "d2", Name: "Riya Gupta", Category: "Dancer", Subcategory: str("Kathak"),
			City: "Mumbai", State: "Maharashtra", District: "Mumbai", Block: str("Bandra"), Pincode: str("400050"),
			Lat: 60, Lng: 25, GeoLat: num(19.0596), GeoLng: num(72.8295),
			StartingPrice: count(20000), Experience: count(8),
			Rating: 4.9, Reviews: count(85), Verified: true, Badge: badge(BadgeGold),
			Views: count(8900), Bookings: count(62), IsTrending: flag(true), JoinedDate: "2023-03-10",
			Availability: AvailabilityOffline, Skills: []string{"Kathak", "Contemporary", "Bollywood"},
			Description: str("Available for stage shows and wedding choreography."), ImageURL: "https://picsum.photos/seed/dance1/200/200",
		},
		{
			ID: "d3", Name: "Sonic Boom Studios", Category: "Recording Studio", Subcategory: str("Mixing/Mastering"),
			City: "Delhi", State: "Delhi", District: "South Delhi", Block: str("Hauz Khas"), Pincode: str("110016"),
			Lat: 25, Lng: 35, GeoLat: num(28.5494), GeoLng: num(77.2001),
			StartingPrice: count(1000), Experience: count(10),
			Rating: 4.5, Reviews: count(45), Verified: true,
			Views: count(1200), Bookings: count(15), IsTrending: flag(false), JoinedDate: "2023-05-20",
			Availability: AvailabilityOffline, Skills: []string{"Vocal Recording", "Mixing", "Mastering"},
			Description: str("State of the art recording facility in South Delhi."), ImageURL: "https://picsum.photos/seed/studioD/200/200",
		},
		{
			ID: "d4", Name: "Vikram Malhotra", Category: "Actor", Subcategory: str("Theatre"),
			City: "Mumbai", State: "Maharashtra", District: "Mumbai", Block: str("Andheri"), Pincode: str("400053"),
			Lat: 62, Lng: 26, GeoLat: num(19.1136), GeoLng: num(72.8697),
			StartingPrice: count(5000), Experience: count(3),
			Rating: 4.2, Reviews: count(20), Verified: false, Badge: badge(BadgeSilver),
			Views: count(800), Bookings: count(5), IsTrending: flag(false), JoinedDate: "2023-08-05",
			Availability: AvailabilityBoth, Skills: []string{"Method Acting", "Theatre", "Voice Over"},
			Description: str("Theatre artist looking for serious roles."), ImageURL: "https://picsum.photos/seed/actor1/200/200",
		},
		{
			ID: "d5", Name: "DJ Max", Category: "Live Sound", Subcategory: str("DJ"),
			City: "Pune", State: "Maharashtra", District: "Pune", Block: str("Haveli"), Pincode: str("411001"),
			Lat: 65, Lng: 30, GeoLat: num(18.5204), GeoLng: num(73.8567),
			StartingPrice: count(25000), Experience: count(7),
			Rating: 4.7, Reviews: count(210), Verified: true, Badge: badge(BadgeGold),
			Views: count(3500), Bookings: count(80), IsTrending: flag(true), JoinedDate: "2023-02-12",
			Availability: AvailabilityOffline, Skills: []string{"EDM", "Wedding DJ", "Sound Setup"},
			Description: str("Best DJ in town for your parties."), ImageURL: "https://picsum.photos/seed/dj1/200/200",
		},
		{
			ID: "d6", Name: "Neha Kakkad", Category: "Singer", Subcategory: str("Folk"),
			City: "Jaipur", State: "Rajasthan", District: "Jaipur", Block: str("Jhotwara"), Pincode: str("302012"),
			Lat: 41, Lng: 31, GeoLat: num(26.9536), GeoLng: num(75.7396),
			StartingPrice: count(8000), Experience: count(12),
			Rating: 4.6, Reviews: count(30), Verified: true,
			Views: count(1500), Bookings: count(20), IsTrending: flag(false), JoinedDate: "2023-06-18",
			Availability: AvailabilityOffline, Skills: []string{"Folk", "Bhajan"},
			Description: str("Specialist in Rajasthani Folk music."), ImageURL: "https://picsum.photos/seed/sing2/200/200",
		},
		{
			ID: "d7", Name: "Raj Photography", Category: "Photographer", Subcategory: str("Wedding"),
			City: "Udaipur", State: "Rajasthan", District: "Udaipur", Block: str("Girwa"), Pincode: str("313001"),
			Lat: 50, Lng: 28, GeoLat: num(24.5854), GeoLng: num(73.7125),
			StartingPrice: count(35000), Experience: count(15),
			Rating: 4.9, Reviews: count(500), Verified: true, Badge: badge(BadgeGolden),
			Views: count(12000), Bookings: count(150), IsTrending: flag(true), JoinedDate: "2022-11-30",
			Availability: AvailabilityOffline, Skills: []string{"Wedding", "Portfolio", "Event"},
			Description: str("Capturing moments that last forever."), ImageURL: "https://picsum.photos/seed/photo1/200/200",
		},
		{
			ID: "d8", Name: "Suraj Band", Category: "Musician", Subcategory: str("Live Band"),
			City: "Jodhpur", State: "Rajasthan", District: "Jodhpur", Block: str("Mandore"), Pincode: str("342001"),
			Lat: 45, Lng: 25, GeoLat: num(26.3506), GeoLng: num(73.0483),
			StartingPrice: count(50000), Experience: count(4),
			Rating: 4.3, Reviews: count(15), Verified: false,
			Views: count(600), Bookings: count(8), IsTrending: flag(false), JoinedDate: "2023-09-01",
			Availability: AvailabilityOffline, Skills: []string{"Live Band", "Orchestra"},
			Description: str("Complete live band for weddings."), ImageURL: "https://picsum.photos/seed/band1/200/200",
		},
		{
			ID: "d9", Name: "Delhi Dance Academy", Category: "Dancer", Subcategory: str("Hip Hop"),
			City: "Delhi", State: "Delhi", District: "North Delhi", Block: str("Civil Lines"), Pincode: str("110054"),
			Lat: 22, Lng: 36, GeoLat: num(28.6814), GeoLng: num(77.2226),
			StartingPrice: count(1500), Experience: count(9),
			Rating: 4.4, Reviews: count(60), Verified: true,
			Views: count(2200), Bookings: count(12), IsTrending: flag(false), JoinedDate: "2023-04-10",
			Availability: AvailabilityOnline, Skills: []string{"Hip Hop", "Salsa"},
			Description: str("Learn dance from the experts."), ImageURL: "https://picsum.photos/seed/dance2/200/200",
		},
		{
			ID: "d10", Name: "Amit Keys", Category: "Musician", Subcategory: str("Keyboardist"),
			City: "Kota", State: "Rajasthan", District: "Kota", Block: str("Ladpura"), Pincode: str("324001"),
			Lat: 48, Lng: 35, GeoLat: num(25.1800), GeoLng: num(75.8333),
			StartingPrice: count(5000), Experience: count(2),
			Rating: 4.0, Reviews: count(8), Verified: false,
			Views: count(300), Bookings: count(2), IsTrending: flag(false), JoinedDate: "2023-10-05",
			Availability: AvailabilityOffline, Skills: []string{"Keyboard", "Piano"},
			Description: str("Freelance keyboard player."), ImageURL: "https://picsum.photos/seed/keys1/200/200",
		},
		{
			ID: "d11", Name: "Studio 99", Category: "Recording Studio", Subcategory: str("Dubbing"),
			City: "Jaipur", State: "Rajasthan", District: "Jaipur", Block: str("Amer"), Pincode: str("302028"),
			Lat: 39, Lng: 29, GeoLat: num(26.9855), GeoLng: num(75.8513),
			StartingPrice: count(1200), Experience: count(6),
			Rating: 4.6, Reviews: count(40), Verified: true,
			Views: count(1100), Bookings: count(18), IsTrending: flag(false), JoinedDate: "2023-07-22",
			Availability: AvailabilityOffline, Skills: []string{"Dubbing", "Music Production"},
			Description: str("Affordable recording studio in Amer."), ImageURL: "https://picsum.photos/seed/studio99/200/200",
		},
		{
			ID: "d12", Name: "Simran Makeovers", Category: "Makeup Artist", Subcategory: str("Bridal"),
			City: "Chandigarh", State: "Punjab", District: "Mohali", Block: str("Sector 62"), Pincode: str("160062"),
			Lat: 15, Lng: 30,
			StartingPrice: count(12000), Experience: count(7),
			Rating: 4.8, Reviews: count(95), Verified: true, Badge: badge(BadgeGold),
			Views: count(4000), Bookings: count(55), IsTrending: flag(true), JoinedDate: "2023-01-05",
			Availability: AvailabilityOffline, Skills: []string{"Bridal", "Party", "HD Makeup"},
			Description: str("Certified makeup artist."), ImageURL: "https://picsum.photos/seed/makeup1/200/200",
		},
	}
}
