package roomtype

import (
	"errors"
	"strings"
	"time"

	"luxora-booking/internal/domain/pricing"
	"luxora-booking/internal/pkg/errs"
	"luxora-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

const (
	DefaultMaxGuests  = 2
	DefaultTotalUnits = 5
)

var (
	ErrInvalidName       = errors.New("room name is required")
	ErrInvalidLabel      = errors.New("room type label is required")
	ErrInvalidPrice      = errors.New("price per night must be positive")
	ErrInvalidMaxGuests  = errors.New("max guests must be at least 1")
	ErrInvalidTotalUnits = errors.New("total units must be at least 1")
	ErrInvalidStatus     = errors.New("invalid room type status")
)

// Attributes holds the values a room type is created from.
type Attributes struct {
	Name          string
	Description   string
	PricePerNight pricing.Money
	Label         string
	ImageURL      string
	MaxGuests     int
	Amenities     []string
	TotalUnits    int
	Status        Status
}

// Patch lists the fields an update may change; nil fields stay as they are.
type Patch struct {
	Name          *string
	Description   *string
	PricePerNight *pricing.Money
	Label         *string
	ImageURL      *string
	MaxGuests     *int
	Amenities     *[]string
	TotalUnits    *int
	Status        *Status
}

// RoomType is a sellable category with an aggregate unit count. Bookings
// reference it by id; individual units are never assigned.
type RoomType struct {
	id            uuid.UUID
	name          string
	description   string
	pricePerNight pricing.Money
	label         string
	imageURL      string
	maxGuests     int
	amenities     []string
	totalUnits    int
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRoomType(attrs Attributes, now time.Time) (*RoomType, error) {
	if attrs.Status == "" {
		attrs.Status = StatusActive
	}
	r := &RoomType{
		id:            uuid.New(),
		name:          strings.TrimSpace(attrs.Name),
		description:   strings.TrimSpace(attrs.Description),
		pricePerNight: attrs.PricePerNight,
		label:         strings.TrimSpace(attrs.Label),
		imageURL:      strings.TrimSpace(attrs.ImageURL),
		maxGuests:     attrs.MaxGuests,
		amenities:     NormalizeAmenities(attrs.Amenities),
		totalUnits:    attrs.TotalUnits,
		status:        attrs.Status,
		createdAt:     now,
		updatedAt:     now,
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoomType(
	id uuid.UUID,
	name, description string,
	pricePerNight pricing.Money,
	label, imageURL string,
	maxGuests int,
	amenities []string,
	totalUnits int,
	status Status,
	createdAt, updatedAt time.Time,
) *RoomType {
	return &RoomType{
		id:            id,
		name:          name,
		description:   description,
		pricePerNight: pricePerNight,
		label:         label,
		imageURL:      imageURL,
		maxGuests:     maxGuests,
		amenities:     amenities,
		totalUnits:    totalUnits,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Apply updates the room type in place. Nothing changes when the patched
// result would be invalid.
func (r *RoomType) Apply(p Patch, now time.Time) error {
	next := *r
	next.name = patch.Coalesce(patch.Trimmed(p.Name), r.name)
	next.description = patch.Coalesce(patch.Trimmed(p.Description), r.description)
	next.pricePerNight = patch.Coalesce(p.PricePerNight, r.pricePerNight)
	next.label = patch.Coalesce(patch.Trimmed(p.Label), r.label)
	next.imageURL = patch.Coalesce(patch.Trimmed(p.ImageURL), r.imageURL)
	next.maxGuests = patch.Coalesce(p.MaxGuests, r.maxGuests)
	next.totalUnits = patch.Coalesce(p.TotalUnits, r.totalUnits)
	next.status = patch.Coalesce(p.Status, r.status)
	if p.Amenities != nil {
		next.amenities = NormalizeAmenities(*p.Amenities)
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*r = next
	return nil
}

// Deactivate hides the room type from availability and new bookings.
// Existing bookings keep their reference.
func (r *RoomType) Deactivate(now time.Time) {
	if r.status == StatusInactive {
		return
	}
	r.status = StatusInactive
	r.updatedAt = now
}

func (r *RoomType) validate() error {
	switch {
	case r.name == "":
		return errs.Mark(ErrInvalidName, errs.ErrDomainValidation)
	case r.label == "":
		return errs.Mark(ErrInvalidLabel, errs.ErrDomainValidation)
	case !r.pricePerNight.IsPositive():
		return errs.Mark(ErrInvalidPrice, errs.ErrDomainValidation)
	case r.maxGuests < 1:
		return errs.Mark(ErrInvalidMaxGuests, errs.ErrDomainValidation)
	case r.totalUnits < 1:
		return errs.Mark(ErrInvalidTotalUnits, errs.ErrDomainValidation)
	case !r.status.IsValid():
		return errs.Mark(ErrInvalidStatus, errs.ErrDomainValidation)
	}
	return nil
}

func (r *RoomType) IsActive() bool { return r.status == StatusActive }

func (r *RoomType) ID() uuid.UUID                { return r.id }
func (r *RoomType) Name() string                 { return r.name }
func (r *RoomType) Description() string          { return r.description }
func (r *RoomType) PricePerNight() pricing.Money { return r.pricePerNight }
func (r *RoomType) Label() string                { return r.label }
func (r *RoomType) ImageURL() string             { return r.imageURL }
func (r *RoomType) MaxGuests() int               { return r.maxGuests }
func (r *RoomType) Amenities() []string          { return r.amenities }
func (r *RoomType) TotalUnits() int              { return r.totalUnits }
func (r *RoomType) Status() Status               { return r.status }
func (r *RoomType) CreatedAt() time.Time         { return r.createdAt }
func (r *RoomType) UpdatedAt() time.Time         { return r.updatedAt }
