package repository

import (
	"context"
	"fmt"

	"healthhub/internal/model"
)

// DoctorRepository defines the reads backing the doctor dashboard
type DoctorRepository interface {
	UpcomingAppointments(ctx context.Context, doctorID int) ([]model.Appointment, error)
	DistinctPatients(ctx context.Context, doctorID int) ([]model.Patient, error)
}

type doctorRepository struct {
	db Querier
}

// NewDoctorRepository creates a new DoctorRepository
func NewDoctorRepository(db Querier) DoctorRepository {
	return &doctorRepository{db: db}
}

// UpcomingAppointments returns the doctor's next ten appointments,
// soonest first, each carrying the patient's name.
func (r *doctorRepository) UpcomingAppointments(ctx context.Context, doctorID int) ([]model.Appointment, error) {
	sql := `SELECT a.id, a.appointment_date, to_char(a.start_time, 'HH24:MI') AS start_time,
                   a.status, a.reason_for_visit, p.name AS patient_name
            FROM appointment a
            JOIN patient p ON a.patient_id = p.id
            WHERE a.doctor_id = $1
            ORDER BY a.appointment_date, a.start_time
            LIMIT 10`
	rows, err := r.db.Query(ctx, sql, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctor appointments: %w", err)
	}
	defer rows.Close()

	appointments := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.Date, &a.StartTime, &a.Status, &a.Reason, &a.PatientName); err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return appointments, nil
}

// DistinctPatients returns every patient this doctor has ever had an
// appointment with, alphabetically by name, without duplicates.
func (r *doctorRepository) DistinctPatients(ctx context.Context, doctorID int) ([]model.Patient, error) {
	sql := `SELECT DISTINCT p.id, p.name, p.age, p.gender
            FROM appointment a
            JOIN patient p ON a.patient_id = p.id
            WHERE a.doctor_id = $1
            ORDER BY p.name`
	rows, err := r.db.Query(ctx, sql, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctor's patients: %w", err)
	}
	defer rows.Close()

	patients := []model.Patient{}
	for rows.Next() {
		var p model.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Gender); err != nil {
			return nil, fmt.Errorf("failed to scan patient row: %w", err)
		}
		patients = append(patients, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patient rows: %w", err)
	}
	return patients, nil
}
