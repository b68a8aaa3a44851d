package model

// PatientDashboard is the composed payload for the patient view.
// Patient is nil when no profile row exists for the linked id.
type PatientDashboard struct {
	Patient      *Patient         `json:"patient"`
	Appointments []Appointment    `json:"appointments"`
	Allergies    []AllergyWarning `json:"allergies"`
}

// DoctorDashboard is the composed payload for the doctor view.
type DoctorDashboard struct {
	Appointments []Appointment `json:"appointments"`
	Patients     []Patient     `json:"patients"`
}
