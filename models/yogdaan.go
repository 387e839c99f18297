package models

import "time"

// YogdaanQueryMaxLen caps the free-text query field.
const YogdaanQueryMaxLen = 200

// YogdaanStatusPending is the status every new submission starts with;
// no further lifecycle is defined here.
const YogdaanStatusPending = "pending"

// YogdaanForm carries the text fields of the Yogdaan intake form.
type YogdaanForm struct {
	Name         string `json:"name"`
	Mobile       string `json:"mobile"`
	DOB          string `json:"dob"`
	PlaceOfBirth string `json:"placeOfBirth"`
	Query        string `json:"query"`
}

// YogdaanSubmission is a Yogdaan intake record as stored in the
// yogdaan-submissions collection. The URL fields are empty strings when no
// file was attached.
type YogdaanSubmission struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Mobile          string    `bson:"mobile" json:"mobile"`
	DOB             string    `bson:"dob" json:"dob"`
	PlaceOfBirth    string    `bson:"placeOfBirth" json:"placeOfBirth"`
	Query           string    `bson:"query" json:"query"`
	KundliMapURL    string    `bson:"kundliMapUrl" json:"kundliMapUrl"`
	KundliSchemeURL string    `bson:"kundliSchemeUrl" json:"kundliSchemeUrl"`
	SubmittedAt     time.Time `bson:"submittedAt" json:"submittedAt"`
	Status          string    `bson:"status" json:"status"`
}
