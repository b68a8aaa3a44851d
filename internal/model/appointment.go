package model

import "time"

// Appointment links a patient and a doctor for a visit. Appointments are
// created outside this service and read-only here. DoctorName is filled
// on the patient view, PatientName on the doctor view.
type Appointment struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason_for_visit"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	PatientName string    `json:"patient_name,omitempty"`
}
