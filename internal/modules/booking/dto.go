package booking

import "strings"

type CreateReservationRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Contact string `json:"contact" validate:"required,max=200"`
	Date    string `json:"booking_date" validate:"required"`
	Time    string `json:"booking_time" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email,max=320"`
}

func (r *CreateReservationRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Contact = strings.TrimSpace(r.Contact)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Email = strings.TrimSpace(r.Email)
}

type CreateReservationResponse struct {
	ID   string `json:"id"`
	Date string `json:"booking_date"`
	Time string `json:"booking_time"`
}

type SlotAvailability struct {
	Time      string `json:"time"`
	Booked    bool   `json:"booked"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	Date      string             `json:"date"`
	Offerable bool               `json:"offerable"`
	Slots     []SlotAvailability `json:"slots"`
}
