package schema

// DirectoryArtistTable represents the 'directory.artist' table
type DirectoryArtistTable struct {
	Table         string
	ID            string
	Name          string
	Category      string
	Subcategory   string
	City          string
	State         string
	District      string
	Block         string
	Pincode       string
	DisplayLat    string
	DisplayLng    string
	GeoLat        string
	GeoLng        string
	StartingPrice string
	Experience    string
	Rating        string
	Reviews       string
	Verified      string
	Badge         string
	Views         string
	Bookings      string
	IsTrending    string
	JoinedDate    string
	Availability  string
	Skills        string
	Description   string
	ImageURL      string
	SortOrder     string
	CreatedAt     string
	UpdatedAt     string
	DeletedAt     string
}

// DirectoryArtist is the schema definition for directory.artist
var DirectoryArtist = DirectoryArtistTable{
	Table:         "directory.artist",
	ID:            "id",
	Name:          "name",
	Category:      "category",
	Subcategory:   "subcategory",
	City:          "city",
	State:         "state",
	District:      "district",
	Block:         "block",
	Pincode:       "pincode",
	DisplayLat:    "displaylat",
	DisplayLng:    "displaylng",
	GeoLat:        "geolat",
	GeoLng:        "geolng",
	StartingPrice: "startingprice",
	Experience:    "experience",
	Rating:        "rating",
	Reviews:       "reviews",
	Verified:      "verified",
	Badge:         "badge",
	Views:         "views",
	Bookings:      "bookings",
	IsTrending:    "istrending",
	JoinedDate:    "joineddate",
	Availability:  "availability",
	Skills:        "skills",
	Description:   "description",
	ImageURL:      "imageurl",
	SortOrder:     "sortorder",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
	DeletedAt:     "deletedat",
}

// RecordColumns lists the columns mapped onto an artist record, in scan order.
func (t DirectoryArtistTable) RecordColumns() []string {
	return []string{
		t.ID, t.Name, t.Category, t.Subcategory,
		t.City, t.State, t.District, t.Block, t.Pincode,
		t.DisplayLat, t.DisplayLng, t.GeoLat, t.GeoLng,
		t.StartingPrice, t.Experience,
		t.Rating, t.Reviews, t.Verified, t.Badge,
		t.Views, t.Bookings, t.IsTrending, t.JoinedDate,
		t.Availability, t.Skills, t.Description, t.ImageURL,
	}
}
