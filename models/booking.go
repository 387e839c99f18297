package models

import "time"

// ConsultationIssues are the selectable concern categories on the booking
// form, in display order. The last entry opens the free-text field.
var ConsultationIssues = []string{
	"Family Harmony Issues",
	"Financial Problems",
	"Health Concerns",
	"Career Stagnation",
	"Relationship Troubles",
	"Property/Land Related",
	"Business Growth Issues",
	"Children's Education",
	IssueOther,
}

// IssueOther is the category that requires a custom issue description.
const IssueOther = "Other (Please specify)"

// BookingStatusConfirmed is the only status a stored booking ever has:
// records are written after payment success and never updated.
const BookingStatusConfirmed = "confirmed"

// ConsultationForm carries the details captured on the booking form step.
type ConsultationForm struct {
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Issue       string `json:"issue"`
	CustomIssue string `json:"customIssue,omitempty"`
}

// ConsultationBooking is a confirmed consultation booking record as stored
// in the consultation-bookings collection.
type ConsultationBooking struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Mobile           string    `bson:"mobile" json:"mobile"`
	Email            string    `bson:"email" json:"email"`
	Address          string    `bson:"address" json:"address"`
	Issue            string    `bson:"issue" json:"issue"`
	CustomIssue      string    `bson:"customIssue,omitempty" json:"customIssue,omitempty"`
	ConsultationRate int64     `bson:"consultationRate" json:"consultationRate"`
	PaymentID        string    `bson:"paymentId" json:"paymentId"`
	BookingDate      time.Time `bson:"bookingDate" json:"bookingDate"`
	Status           string    `bson:"status" json:"status"`
}
