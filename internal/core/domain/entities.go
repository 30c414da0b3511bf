package domain

import "time"

// Role represents a user role in the portal
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleOfficer   Role = "officer"
)

// ParseRole narrows a raw role string to a known Role
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleApplicant, RoleOfficer:
		return Role(value), nil
	}
	return "", &IntegrityError{Entity: "user", Field: "role", Value: value}
}

// ApplicationStatus is the lifecycle state of an application
type ApplicationStatus string

const (
	StatusSubmitted ApplicationStatus = "submitted"
	StatusReview    ApplicationStatus = "review"
	StatusApproved  ApplicationStatus = "approved"
	StatusRejected  ApplicationStatus = "rejected"
)

// ParseApplicationStatus narrows a raw status string to a known ApplicationStatus
func ParseApplicationStatus(value string) (ApplicationStatus, error) {
	switch ApplicationStatus(value) {
	case StatusSubmitted, StatusReview, StatusApproved, StatusRejected:
		return ApplicationStatus(value), nil
	}
	return "", &IntegrityError{Entity: "application", Field: "status", Value: value}
}

// Label returns the German display label of the status
func (s ApplicationStatus) Label() string {
	switch s {
	case StatusSubmitted:
		return "EINGEREICHT"
	case StatusReview:
		return "IN PRÜFUNG"
	case StatusApproved:
		return "VORLÄUFIG GENEHMIGT"
	case StatusRejected:
		return "ABGELEHNT"
	}
	return string(s)
}

// User is a portal account including its demo password
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
	Token       string `json:"token"`
}

// Public returns the projection of the user that is safe to hand out
func (u User) Public() AuthenticatedUser {
	return AuthenticatedUser{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Token:       u.Token,
	}
}

// AuthenticatedUser is the public projection of a User
type AuthenticatedUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
	Token       string `json:"token"`
}

// Program is a funding scheme
type Program struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	AmountMin   float64   `json:"amountMin"`
	AmountMax   float64   `json:"amountMax"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Tags        []string  `json:"tags"`
}

// Comment is a note left on an application by an officer or the applicant
type Comment struct {
	ID         string    `json:"id"`
	AuthorRole Role      `json:"authorRole"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Application is a funding request for a program
type Application struct {
	ID             string            `json:"id"`
	ApplicantName  string            `json:"applicantName"`
	ApplicantEmail string            `json:"applicantEmail"`
	ProgramID      string            `json:"programId"`
	Status         ApplicationStatus `json:"status"`
	Amount         float64           `json:"amount"`
	Purpose        string            `json:"purpose"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	Comments       []Comment         `json:"comments"`
}

// NewApplication holds the applicant supplied fields of a submission
type NewApplication struct {
	ApplicantName  string
	ApplicantEmail string
	ProgramID      string
	Amount         float64
	Purpose        string
}

// ApplicationPatch is a partial application update. Nil fields are left untouched.
type ApplicationPatch struct {
	Status   *ApplicationStatus
	Amount   *float64
	Purpose  *string
	Comments []Comment // nil keeps the current comments
}

// ProgramPatch is a partial program update. Nil fields are left untouched.
type ProgramPatch struct {
	Name        *string
	Summary     *string
	Description *string
	AmountMin   *float64
	AmountMax   *float64
	Tags        []string // nil keeps the current tags
}

// Snapshot is a read-only dump of the visible collections
type Snapshot struct {
	Users        []AuthenticatedUser `json:"users"`
	Programs     []Program           `json:"programs"`
	Applications []Application       `json:"applications"`
}
