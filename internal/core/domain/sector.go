package domain

// Sector identifies one of the hotel's revenue lines.
type Sector string

const (
	SectorRooms      Sector = "ROOMS"
	SectorBar        Sector = "BAR"
	SectorRestaurant Sector = "RESTAURANT"
)

// AllSectors lists every revenue sector in canonical order.
var AllSectors = []Sector{SectorRooms, SectorBar, SectorRestaurant}

// SectorFilter selects which sectors a report covers. The zero value
// (SectorFilterAll) covers the whole business.
type SectorFilter string

const (
	SectorFilterAll        SectorFilter = "ALL"
	SectorFilterRooms      SectorFilter = "ROOMS"
	SectorFilterBar        SectorFilter = "BAR"
	SectorFilterRestaurant SectorFilter = "RESTAURANT"
)

// Sectors returns the concrete sectors selected by the filter.
func (f SectorFilter) Sectors() []Sector {
	switch f {
	case SectorFilterRooms:
		return []Sector{SectorRooms}
	case SectorFilterBar:
		return []Sector{SectorBar}
	case SectorFilterRestaurant:
		return []Sector{SectorRestaurant}
	default:
		return AllSectors
	}
}

// BookingStatus is the lifecycle state of a room booking.
type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// ActiveBookingStatuses is the set of booking states whose revenue is
// recognized. Recognition is keyed to booking-creation time, not check-out,
// so a room sale lands in the period the booking was made.
var ActiveBookingStatuses = []BookingStatus{BookingConfirmed, BookingCheckedIn, BookingCheckedOut}
