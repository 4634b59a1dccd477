package entity

import (
	"Bricklix/internal/lib/validate"
	"net/http"
)

// Inquiry is a submission from the agency contact form. Only the name and
// email are mandatory; everything else depends on the inquiry type.
type Inquiry struct {
	FirstName     string `json:"firstName" validate:"required,min=1"`
	LastName      string `json:"lastName" validate:"required,min=1"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contactNumber,omitempty" validate:"omitempty,phone"`
	Company       string `json:"company,omitempty"`
	Budget        string `json:"budget,omitempty"`
	Platform      string `json:"platform,omitempty"`
	Uptime        string `json:"uptime,omitempty"`
	LaunchDate    string `json:"launchDate,omitempty"`
	TechStack     string `json:"techStack,omitempty"`
	Role          string `json:"role,omitempty"`
	Duration      string `json:"duration,omitempty"`
	InquiryType   string `json:"inquiryType,omitempty"`
	Message       string `json:"message,omitempty"`
}

func (i *Inquiry) Bind(_ *http.Request) error {
	return validate.Struct(i)
}

var inquiryLabels = map[string]string{
	"contactSales":     "Contact Sales",
	"takeService":      "Get Service",
	"workOnProject":    "New Project",
	"workWithTeam":     "Staff Augmentation",
	"outsourceProject": "Outsource",
}

// TypeLabel maps the inquiry type to its human readable label.
func (i *Inquiry) TypeLabel() string {
	if label, ok := inquiryLabels[i.InquiryType]; ok {
		return label
	}
	return "General Inquiry"
}
