package model

import "time"

const (
	RolePatient = "PATIENT"
	RoleDoctor  = "DOCTOR"
)

// UserAccount represents a login account in the system.
// Exactly one of PatientID/DoctorID is set, matching the account role.
type UserAccount struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	PatientID    *int      `json:"patient_id,omitempty"`
	DoctorID     *int      `json:"doctor_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
