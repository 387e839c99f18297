package yogdaanRepo

import "vishalaksha/models"

// Repository persists Yogdaan intake submissions. Submissions are created
// once per intake; no lifecycle beyond creation is defined here.
type Repository interface {
	Create(submission *models.YogdaanSubmission) error
}
