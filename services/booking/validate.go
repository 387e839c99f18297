package booking

import (
	"strings"

	"vishalaksha/models"
)

// ValidateForm checks the form step preconditions: all required fields
// non-empty, issue one of the fixed categories, and a custom issue present
// when the "Other" category is chosen. No email or phone format checks are
// performed here.
func ValidateForm(form models.ConsultationForm) error {
	required := []struct {
		field string
		value string
	}{
		{"name", form.Name},
		{"mobile", form.Mobile},
		{"email", form.Email},
		{"address", form.Address},
		{"issue", form.Issue},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.field, Reason: "is required"}
		}
	}

	if !validIssue(form.Issue) {
		return &ValidationError{Field: "issue", Reason: "is not a known concern category"}
	}
	if form.Issue == models.IssueOther && strings.TrimSpace(form.CustomIssue) == "" {
		return &ValidationError{Field: "customIssue", Reason: "is required when the issue is 'Other'"}
	}
	return nil
}

func validIssue(issue string) bool {
	for _, opt := range models.ConsultationIssues {
		if issue == opt {
			return true
		}
	}
	return false
}
