package jobdescapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type GenerationRequest struct {
	Designation string   `json:"designation"` // Job title to generate descriptions for
	Yoe         int      `json:"yoe"`         // Years of experience
	Skills      []string `json:"skills"`      // Skill list, may be empty
	ExtraInfo   string   `json:"extraInfo"`   // Additional free-text context
}

func (r GenerationRequest) Validate() error {
	if len(strings.TrimSpace(r.Designation)) == 0 {
		return errors.New("designation cannot be empty")
	}
	if r.Yoe < 0 {
		return errors.New("years of experience cannot be negative")
	}
	if r.Yoe > 50 {
		return errors.New("years of experience cannot exceed 50")
	}
	return nil
}

// DescriptionRecord is one generated job description variation. Every list
// field is guaranteed non-empty by the response normalizer.
type DescriptionRecord struct {
	Designation      string   `json:"designation"`
	Experience       int      `json:"experience"`
	Skills           []string `json:"skills"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
}

type GenerationResponse struct {
	Success bool                `json:"success"`
	Data    []DescriptionRecord `json:"data"`
	Message string              `json:"message"`
	Count   int                 `json:"count"`
}
