package models

import "time"

type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_slots_date_time" json:"date"`
	Time string `gorm:"size:20;not null;uniqueIndex:idx_slots_date_time" json:"time"`

	Price  int    `gorm:"not null" json:"price"`
	Status string `gorm:"size:20;default:'available'" json:"status"`

	ReservedByID *uint `json:"reserved_by_id,omitempty"`
	ReservedBy   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"reserved_by,omitempty"`

	RequestCode   *string `gorm:"size:6" json:"request_code,omitempty"`
	BookingNumber *string `gorm:"size:6" json:"booking_number,omitempty"`
	PaymentType   *string `gorm:"size:10" json:"payment_type,omitempty"`

	// Offline (cash) bookings carry the walk-in customer directly; such a
	// slot never has a ReservedBy user.
	OfflineName   *string `gorm:"size:100" json:"offline_name,omitempty"`
	OfflineMobile *string `gorm:"size:20" json:"offline_mobile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
