package profile

import (
	"time"

	"maatricare/internal/model"
)

// CreateInput holds the onboarding fields.
type CreateInput struct {
	Name           string
	Age            int
	LMPDate        *time.Time
	MedicalHistory []model.MedicalHistoryFlag
	Language       string
}

// UpdateInput is a delta: nil pointers leave the current value unchanged.
type UpdateInput struct {
	Name           *string
	Age            *int
	LMPDate        *time.Time
	DeliveryDate   *time.Time
	MedicalHistory []model.MedicalHistoryFlag // appended and deduplicated, not replaced
	Language       *string
}
