package dto

import "github.com/harshitgawli/Turf-Booking/internal/models"

// BookingDTO is the admin view of a held slot, resolving the occupant to
// either the reserving user or the offline customer.
type BookingDTO struct {
	ID     uint   `json:"id"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Price  int    `json:"price"`
	Status string `json:"status"`

	CustomerName   string `json:"customer_name,omitempty"`
	CustomerMobile string `json:"customer_mobile,omitempty"`
	CustomerEmail  string `json:"customer_email,omitempty"`

	RequestCode   string `json:"request_code,omitempty"`
	BookingNumber string `json:"booking_number,omitempty"`
	PaymentType   string `json:"payment_type,omitempty"`
}

func ToBookingDTO(s models.Slot) BookingDTO {
	out := BookingDTO{
		ID:     s.ID,
		Date:   s.Date,
		Time:   s.Time,
		Price:  s.Price,
		Status: s.Status,
	}

	if s.ReservedBy != nil {
		out.CustomerName = s.ReservedBy.Name
		out.CustomerMobile = s.ReservedBy.Mobile
		out.CustomerEmail = s.ReservedBy.Email
	} else if s.OfflineName != nil {
		out.CustomerName = *s.OfflineName
		if s.OfflineMobile != nil {
			out.CustomerMobile = *s.OfflineMobile
		}
	}

	if s.RequestCode != nil {
		out.RequestCode = *s.RequestCode
	}
	if s.BookingNumber != nil {
		out.BookingNumber = *s.BookingNumber
	}
	if s.PaymentType != nil {
		out.PaymentType = *s.PaymentType
	}

	return out
}
