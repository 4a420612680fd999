package applicants

import "time"

// Interest is the kind of position an applicant is registering for.
type Interest string

const (
	InterestIntern    Interest = "Intern"
	InterestVolunteer Interest = "Volunteer"
)

// Applicant is one registration submission.
type Applicant struct {
	ID               string    `json:"id"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Interest         Interest  `json:"interest"`
	Resume           string    `json:"resume"`
	WhyThisJob       string    `json:"whythisjob,omitempty"`
	RegistrationDate time.Time `json:"registrationDate"`
}
