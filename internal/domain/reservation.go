package domain

import "time"

// Date and time layouts used for slot keys.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Reservation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Date      string    `json:"booking_date"`
	Time      string    `json:"booking_time"`
	CreatedAt time.Time `json:"created_at"`
}

// Slot is the public projection of a reservation: occupancy without identity.
type Slot struct {
	Date string `json:"booking_date"`
	Time string `json:"booking_time"`
}

func (r *Reservation) Slot() Slot {
	return Slot{Date: r.Date, Time: r.Time}
}
