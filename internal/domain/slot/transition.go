package slot

// ===============================
// Transition column changes
// ===============================
//
// Every write to a slot's occupant fields goes through one of these
// builders. ReserveChanges never touches the offline customer and
// OfflineChanges never touches the reserving user, so a slot can never
// carry both.

// ReserveChanges moves an available slot to pending, held by userID.
func ReserveChanges(userID uint, requestCode string) map[string]any {
	return map[string]any{
		"status":         string(StatusPending),
		"reserved_by_id": userID,
		"request_code":   requestCode,
	}
}

// ConfirmChanges moves a pending slot to booked.
func ConfirmChanges(bookingNumber string, payment PaymentType) map[string]any {
	return map[string]any{
		"status":         string(StatusBooked),
		"booking_number": bookingNumber,
		"payment_type":   string(payment),
	}
}

// OfflineChanges books an available slot directly for a walk-in customer,
// paid in cash, bypassing pending.
func OfflineChanges(name, mobile, bookingNumber string) map[string]any {
	return map[string]any{
		"status":         string(StatusBooked),
		"booking_number": bookingNumber,
		"payment_type":   string(PaymentCash),
		"offline_name":   name,
		"offline_mobile": mobile,
	}
}

// ReleaseChanges returns a slot to available and clears every occupancy
// field, whichever path had populated it.
func ReleaseChanges() map[string]any {
	return map[string]any{
		"status":         string(StatusAvailable),
		"reserved_by_id": nil,
		"request_code":   nil,
		"booking_number": nil,
		"payment_type":   nil,
		"offline_name":   nil,
		"offline_mobile": nil,
	}
}
