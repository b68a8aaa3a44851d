package service

import (
	"context"
	"fmt"

	"healthhub/internal/model"
	"healthhub/internal/repository"
)

// DashboardService composes the role-scoped dashboard payloads
type DashboardService interface {
	PatientDashboard(ctx context.Context, patientID int) (*model.PatientDashboard, error)
	DoctorDashboard(ctx context.Context, doctorID int) (*model.DoctorDashboard, error)
}

type dashboardService struct {
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(patientRepo repository.PatientRepository, doctorRepo repository.DoctorRepository) DashboardService {
	return &dashboardService{
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

// PatientDashboard assembles the patient view: profile, the five most
// recent appointments and all allergy warnings. A missing profile row
// yields a nil Patient, not an error.
func (s *dashboardService) PatientDashboard(ctx context.Context, patientID int) (*model.PatientDashboard, error) {
	patient, err := s.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient profile: %w", err)
	}

	appointments, err := s.patientRepo.RecentAppointments(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient appointments: %w", err)
	}

	allergies, err := s.patientRepo.Allergies(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient allergies: %w", err)
	}

	return &model.PatientDashboard{
		Patient:      patient,
		Appointments: appointments,
		Allergies:    allergies,
	}, nil
}

// DoctorDashboard assembles the doctor view: the next ten appointments
// and the distinct set of patients this doctor has seen.
func (s *dashboardService) DoctorDashboard(ctx context.Context, doctorID int) (*model.DoctorDashboard, error) {
	appointments, err := s.doctorRepo.UpcomingAppointments(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor appointments: %w", err)
	}

	patients, err := s.doctorRepo.DistinctPatients(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor's patients: %w", err)
	}

	return &model.DoctorDashboard{
		Appointments: appointments,
		Patients:     patients,
	}, nil
}
