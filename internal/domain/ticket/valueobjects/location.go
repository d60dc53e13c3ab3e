package valueobjects

import (
	"errors"
	"unicode/utf8"
)

const maxAddressLength = 500

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrPartialCoords    = errors.New("latitude and longitude must be given together")
	ErrAddressTooLong   = errors.New("address exceeds maximum length of 500 characters")
)

// Location is an optional geolocation with a free-text address.
type Location struct {
	Latitude  *float64
	Longitude *float64
	Address   string
}

func NewLocation(lat, lon *float64, address string) (Location, error) {
	if (lat == nil) != (lon == nil) {
		return Location{}, ErrPartialCoords
	}
	if lat != nil && (*lat < -90 || *lat > 90) {
		return Location{}, ErrInvalidLatitude
	}
	if lon != nil && (*lon < -180 || *lon > 180) {
		return Location{}, ErrInvalidLongitude
	}
	if utf8.RuneCountInString(address) > maxAddressLength {
		return Location{}, ErrAddressTooLong
	}
	return Location{Latitude: lat, Longitude: lon, Address: address}, nil
}

func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

func (l Location) IsZero() bool {
	return !l.HasCoordinates() && l.Address == ""
}

// Equal compares by value.
func (l Location) Equal(o Location) bool {
	return floatPtrEqual(l.Latitude, o.Latitude) &&
		floatPtrEqual(l.Longitude, o.Longitude) &&
		l.Address == o.Address
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
