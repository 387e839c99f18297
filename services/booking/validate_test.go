package booking

import (
	"testing"

	"vishalaksha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.ConsultationForm {
	return models.ConsultationForm{
		Name:    "Asha Verma",
		Mobile:  "9876543210",
		Email:   "asha@example.com",
		Address: "12 MG Road, Pune",
		Issue:   "Health Concerns",
	}
}

func TestValidateForm_Valid(t *testing.T) {
	assert.NoError(t, ValidateForm(validForm()))
}

func TestValidateForm_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*models.ConsultationForm)
	}{
		{"name", func(f *models.ConsultationForm) { f.Name = "" }},
		{"mobile", func(f *models.ConsultationForm) { f.Mobile = "  " }},
		{"email", func(f *models.ConsultationForm) { f.Email = "" }},
		{"address", func(f *models.ConsultationForm) { f.Address = "" }},
		{"issue", func(f *models.ConsultationForm) { f.Issue = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			err := ValidateForm(form)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestValidateForm_UnknownIssue(t *testing.T) {
	form := validForm()
	form.Issue = "Something Else Entirely"

	var vErr *ValidationError
	require.ErrorAs(t, ValidateForm(form), &vErr)
	assert.Equal(t, "issue", vErr.Field)
}

func TestValidateForm_OtherRequiresCustomIssue(t *testing.T) {
	form := validForm()
	form.Issue = models.IssueOther
	form.CustomIssue = ""

	var vErr *ValidationError
	require.ErrorAs(t, ValidateForm(form), &vErr)
	assert.Equal(t, "customIssue", vErr.Field)

	form.CustomIssue = "North-facing kitchen worries"
	assert.NoError(t, ValidateForm(form))
}
