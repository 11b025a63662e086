package domain

import "errors"

var ErrAccommodationNotFound = errors.New("accommodation not found")

// Location is the postal address of an accommodation.
type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Street  string `json:"street"`
	Number  int    `json:"number"`
}

// Accommodation is the display view served by the accommodation service.
type Accommodation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      string   `json:"images"`
	Location    Location `json:"location"`
	Benefits    string   `json:"benefits"`
	MinGuest    int      `json:"minGuest"`
	MaxGuest    int      `json:"maxGuest"`
	OwnerID     string   `json:"ownerId"`
}
