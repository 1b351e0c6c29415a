package slot

// ===============================
// Slot Status
// ===============================

type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusBooked    Status = "booked"

	// StatusCancelled is part of the declared enum but no transition routes
	// to it; cancelling a booking returns the slot to available.
	StatusCancelled Status = "cancelled"
)

type PaymentType string

const (
	PaymentOnline PaymentType = "online"
	PaymentCash   PaymentType = "cash"
)

// Occupied reports whether the status represents a held slot.
func Occupied(s Status) bool {
	return s == StatusPending || s == StatusBooked
}

// ValidFilter reports whether s can be used as a listing filter.
func ValidFilter(s Status) bool {
	switch s {
	case StatusAvailable, StatusPending, StatusBooked, StatusCancelled:
		return true
	}
	return false
}
