package contactRepo

import (
	"context"

	"hourlyride/models"
)

// ContactRepository defines the interface for contact submission data access.
type ContactRepository interface {
	Create(ctx context.Context, submission *models.ContactSubmission) error
	List(ctx context.Context) ([]models.ContactSubmission, error)
}
