package repository

import (
	"context"
	"errors"
	"fmt"

	"healthhub/internal/model"

	"github.com/jackc/pgx/v5"
)

// PatientRepository defines the reads backing the patient dashboard
type PatientRepository interface {
	FindByID(ctx context.Context, patientID int) (*model.Patient, error)
	RecentAppointments(ctx context.Context, patientID int) ([]model.Appointment, error)
	Allergies(ctx context.Context, patientID int) ([]model.AllergyWarning, error)
}

type patientRepository struct {
	db Querier
}

// NewPatientRepository creates a new PatientRepository
func NewPatientRepository(db Querier) PatientRepository {
	return &patientRepository{db: db}
}

// FindByID retrieves a patient's demographic profile
func (r *patientRepository) FindByID(ctx context.Context, patientID int) (*model.Patient, error) {
	p := &model.Patient{}
	sql := `SELECT id, name, age, gender, insurance FROM patient WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, patientID).Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.Insurance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Missing profile is rendered as null, not an error
		}
		return nil, fmt.Errorf("failed to find patient by ID: %w", err)
	}
	return p, nil
}

// RecentAppointments returns the five most recent appointments for a
// patient, newest first, each carrying the treating doctor's name.
func (r *patientRepository) RecentAppointments(ctx context.Context, patientID int) ([]model.Appointment, error) {
	sql := `SELECT a.id, a.appointment_date, to_char(a.start_time, 'HH24:MI') AS start_time,
                   a.status, a.reason_for_visit, d.name AS doctor_name
            FROM appointment a
            JOIN doctor d ON a.doctor_id = d.id
            WHERE a.patient_id = $1
            ORDER BY a.appointment_date DESC, a.start_time DESC
            LIMIT 5`
	rows, err := r.db.Query(ctx, sql, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query patient appointments: %w", err)
	}
	defer rows.Close()

	appointments := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.Date, &a.StartTime, &a.Status, &a.Reason, &a.DoctorName); err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return appointments, nil
}

// Allergies returns every allergy warning recorded for a patient
func (r *patientRepository) Allergies(ctx context.Context, patientID int) ([]model.AllergyWarning, error) {
	sql := `SELECT allergy_name, reaction_type, severity, allergy_flag, allergy_notes
            FROM allergy_warning_system
            WHERE patient_id = $1`
	rows, err := r.db.Query(ctx, sql, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query allergies: %w", err)
	}
	defer rows.Close()

	allergies := []model.AllergyWarning{}
	for rows.Next() {
		var w model.AllergyWarning
		if err := rows.Scan(&w.Name, &w.ReactionType, &w.Severity, &w.Flagged, &w.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan allergy row: %w", err)
		}
		allergies = append(allergies, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating allergy rows: %w", err)
	}
	return allergies, nil
}
