package models

// View models consumed by the HTML templates. These are assembled per
// request from the stored rows and are never written back.

// VenueSummary is one venue row inside a city group or search result.
type VenueSummary struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// CityGroup collects the venues of one distinct (city, state) pair.
type CityGroup struct {
	City   string
	State  string
	Venues []VenueSummary
}

// SearchResult is one matched record with its upcoming-show count.
type SearchResult struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// SearchResults carries the match count and rows for the results page.
type SearchResults struct {
	Count int
	Data  []SearchResult
}

// VenueShow is a show on a venue detail page, annotated with the
// performing artist. StartTime is already rendered as text.
type VenueShow struct {
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

// ArtistShow is a show on an artist detail page, annotated with the
// booked venue.
type ArtistShow struct {
	VenueID        int64
	VenueName      string
	VenueImageLink string
	StartTime      string
}

// VenuePage is the denormalized detail view of a single venue.
type VenuePage struct {
	ID                 int64
	Name               string
	Genres             []string
	City               string
	State              string
	Address            string
	Phone              string
	Website            string
	ImageLink          string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string

	UpcomingShows      []VenueShow
	UpcomingShowsCount int
	PastShows          []VenueShow
	PastShowsCount     int
}

// ArtistPage is the denormalized detail view of a single artist.
type ArtistPage struct {
	ID                 int64
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	Website            string
	ImageLink          string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string

	UpcomingShows      []ArtistShow
	UpcomingShowsCount int
	PastShows          []ArtistShow
	PastShowsCount     int
}

// ArtistRow is one entry of the flat artist listing.
type ArtistRow struct {
	ID   int64
	Name string
}

// ShowRow is one entry of the flat show listing, joined with both
// counterpart entities.
type ShowRow struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}
