package http

import (
	"time"

	"maatricare/internal/model"
	"maatricare/internal/profile"
)

// --- Request DTOs ---

type createReq struct {
	Name           string   `json:"name"           binding:"required,min=1,max=255"`
	Age            int      `json:"age"            binding:"omitempty,min=1,max=120"`
	LMPDate        *string  `json:"lmpDate"        binding:"omitempty"`
	MedicalHistory []string `json:"medicalHistory" binding:"omitempty"`
	Language       string   `json:"language"       binding:"omitempty,max=8"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() (profile.CreateInput, error) {
	lmp, err := parseDateField(r.LMPDate)
	if err != nil {
		return profile.CreateInput{}, err
	}
	return profile.CreateInput{
		Name:           r.Name,
		Age:            r.Age,
		LMPDate:        lmp,
		MedicalHistory: toHistoryFlags(r.MedicalHistory),
		Language:       r.Language,
	}, nil
}

// ---

type updateReq struct {
	Name           *string  `json:"name"           binding:"omitempty,min=1,max=255"`
	Age            *int     `json:"age"            binding:"omitempty,min=1,max=120"`
	LMPDate        *string  `json:"lmpDate"        binding:"omitempty"`
	DeliveryDate   *string  `json:"deliveryDate"   binding:"omitempty"`
	MedicalHistory []string `json:"medicalHistory" binding:"omitempty"`
	Language       *string  `json:"language"       binding:"omitempty,max=8"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() (profile.UpdateInput, error) {
	lmp, err := parseDateField(r.LMPDate)
	if err != nil {
		return profile.UpdateInput{}, err
	}
	delivery, err := parseDateField(r.DeliveryDate)
	if err != nil {
		return profile.UpdateInput{}, err
	}
	return profile.UpdateInput{
		Name:           r.Name,
		Age:            r.Age,
		LMPDate:        lmp,
		DeliveryDate:   delivery,
		MedicalHistory: toHistoryFlags(r.MedicalHistory),
		Language:       r.Language,
	}, nil
}

// parseDateField parses an optional "2006-01-02" field.
func parseDateField(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toHistoryFlags(values []string) []model.MedicalHistoryFlag {
	if len(values) == 0 {
		return nil
	}
	flags := make([]model.MedicalHistoryFlag, len(values))
	for i, v := range values {
		flags[i] = model.MedicalHistoryFlag(v)
	}
	return flags
}

// --- Response DTOs ---

type profileResp struct {
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	Age            int       `json:"age,omitempty"`
	LMPDate        string    `json:"lmpDate,omitempty"`
	DeliveryDate   string    `json:"deliveryDate,omitempty"`
	DueDate        string    `json:"dueDate,omitempty"`
	MedicalHistory []string  `json:"medicalHistory,omitempty"`
	Language       string    `json:"language,omitempty"`
	Archived       bool      `json:"archived,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func newProfileResp(p model.Profile) profileResp {
	resp := profileResp{
		UserID:    p.UserID,
		Name:      p.Name,
		Age:       p.Age,
		Language:  p.Language,
		Archived:  p.Archived,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.LMPDate != nil {
		resp.LMPDate = p.LMPDate.Format("2006-01-02")
		resp.DueDate = p.DueDate().Format("2006-01-02")
	}
	if p.DeliveryDate != nil {
		resp.DeliveryDate = p.DeliveryDate.Format("2006-01-02")
	}
	for _, f := range p.MedicalHistory {
		resp.MedicalHistory = append(resp.MedicalHistory, string(f))
	}
	return resp
}
