package applicants

import "intern-portal/internal/shared/validation"

// RegisterInput is the registration request body.
type RegisterInput struct {
	FullName   string `json:"fullName" validate:"required,min=3"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,mobile_phone"`
	Interest   string `json:"interest" validate:"required,oneof=Intern Volunteer"`
	Resume     string `json:"resume" validate:"required,resume_url"`
	WhyThisJob string `json:"whythisjob" validate:"max=500"`
}

var registerMessages = validation.Messages{
	"fullName.required": "Full name is required",
	"fullName.min":      "Full name must be at least 3 characters long",
	"email.required":    "Email is required",
	"email":             "Please enter a valid email address",
	"phone.required":    "Phone number is required",
	"phone":             "Please enter a valid phone number",
	"interest.required": "Interest (Intern/Volunteer) is required",
	"interest":          `Interest must be either "Intern" or "Volunteer"`,
	"resume.required":   "Resume URL is required",
	"resume":            "Resume must be a valid URL",
	"whythisjob":        "Why this job? message can be at most 500 characters long",
}

type registerResponse struct {
	Message   string    `json:"message"`
	Applicant Applicant `json:"applicant"`
}
