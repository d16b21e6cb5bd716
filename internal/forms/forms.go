// Package forms decodes submitted HTML forms into allow-listed DTOs
// and validates them. Only the fields named here ever reach a stored
// record, so a client-supplied id can never override a generated one.
package forms

import (
	"net/url"
	"regexp"

	"github.com/go-playground/validator/v10"

	"gigbook/internal/models"
)

var phoneRe = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// xxx-xxx-xxxx, the format the listing forms have always used
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return v
}

// VenueForm is the allow-listed shape of a venue create/edit
// submission.
type VenueForm struct {
	Name               string   `validate:"required"`
	Genres             []string `validate:"-"`
	City               string   `validate:"-"`
	State              string   `validate:"-"`
	Address            string   `validate:"-"`
	Phone              string   `validate:"omitempty,phone"`
	Website            string   `validate:"omitempty,url"`
	ImageLink          string   `validate:"omitempty,url"`
	FacebookLink       string   `validate:"omitempty,url"`
	SeekingTalent      bool     `validate:"-"`
	SeekingDescription string   `validate:"-"`
}

// ParseVenueForm copies the known venue fields out of a submission.
// The seeking_talent checkbox is true iff its key is present,
// whatever its value.
func ParseVenueForm(values url.Values) VenueForm {
	_, seeking := values["seeking_talent"]
	return VenueForm{
		Name:               values.Get("name"),
		Genres:             values["genres"],
		City:               values.Get("city"),
		State:              values.Get("state"),
		Address:            values.Get("address"),
		Phone:              values.Get("phone"),
		Website:            values.Get("website"),
		ImageLink:          values.Get("image_link"),
		FacebookLink:       values.Get("facebook_link"),
		SeekingTalent:      seeking,
		SeekingDescription: values.Get("seeking_description"),
	}
}

func (f VenueForm) Validate() error {
	return validate.Struct(f)
}

// Apply overwrites every mapped column of the venue with the
// submitted values. Absent fields become their zero defaults; this is
// a full overwrite, not a partial patch.
func (f VenueForm) Apply(v *models.Venue) {
	v.Name = f.Name
	v.Genres = models.JoinGenres(f.Genres)
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.Website = f.Website
	v.ImageLink = f.ImageLink
	v.FacebookLink = f.FacebookLink
	v.SeekingTalent = f.SeekingTalent
	v.SeekingDescription = f.SeekingDescription
}

// ArtistForm is the allow-listed shape of an artist create/edit
// submission.
type ArtistForm struct {
	Name               string   `validate:"required"`
	Genres             []string `validate:"-"`
	City               string   `validate:"-"`
	State              string   `validate:"-"`
	Phone              string   `validate:"omitempty,phone"`
	Website            string   `validate:"omitempty,url"`
	ImageLink          string   `validate:"omitempty,url"`
	FacebookLink       string   `validate:"omitempty,url"`
	SeekingVenue       bool     `validate:"-"`
	SeekingDescription string   `validate:"-"`
}

// ParseArtistForm copies the known artist fields out of a submission.
func ParseArtistForm(values url.Values) ArtistForm {
	_, seeking := values["seeking_venue"]
	return ArtistForm{
		Name:               values.Get("name"),
		Genres:             values["genres"],
		City:               values.Get("city"),
		State:              values.Get("state"),
		Phone:              values.Get("phone"),
		Website:            values.Get("website"),
		ImageLink:          values.Get("image_link"),
		FacebookLink:       values.Get("facebook_link"),
		SeekingVenue:       seeking,
		SeekingDescription: values.Get("seeking_description"),
	}
}

func (f ArtistForm) Validate() error {
	return validate.Struct(f)
}

// Apply overwrites every mapped column of the artist with the
// submitted values.
func (f ArtistForm) Apply(a *models.Artist) {
	a.Name = f.Name
	a.Genres = models.JoinGenres(f.Genres)
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.Website = f.Website
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
	a.SeekingVenue = f.SeekingVenue
	a.SeekingDescription = f.SeekingDescription
}

// ShowForm carries the raw strings of a show submission. The ids are
// not checked against existing records; a dangling reference is left
// to the foreign-key constraints at commit time.
type ShowForm struct {
	ArtistID  string `validate:"required"`
	VenueID   string `validate:"required"`
	StartTime string `validate:"required"`
}

// ParseShowForm copies the show fields out of a submission.
func ParseShowForm(values url.Values) ShowForm {
	return ShowForm{
		ArtistID:  values.Get("artist_id"),
		VenueID:   values.Get("venue_id"),
		StartTime: values.Get("start_time"),
	}
}

func (f ShowForm) Validate() error {
	return validate.Struct(f)
}
