package bookingRepo

import "vishalaksha/models"

// Repository persists confirmed consultation bookings. Bookings are
// write-only in this scope: a record is created after payment success and
// is immutable thereafter.
type Repository interface {
	Create(booking *models.ConsultationBooking) error
}
