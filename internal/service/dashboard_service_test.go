package service

import (
	"context"
	"errors"
	"testing"

	"healthhub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPatientRepo struct {
	patient      *model.Patient
	patientErr   error
	appointments []model.Appointment
	apptErr      error
	allergies    []model.AllergyWarning
	allergyErr   error
}

func (r *stubPatientRepo) FindByID(ctx context.Context, patientID int) (*model.Patient, error) {
	return r.patient, r.patientErr
}

func (r *stubPatientRepo) RecentAppointments(ctx context.Context, patientID int) ([]model.Appointment, error) {
	return r.appointments, r.apptErr
}

func (r *stubPatientRepo) Allergies(ctx context.Context, patientID int) ([]model.AllergyWarning, error) {
	return r.allergies, r.allergyErr
}

type stubDoctorRepo struct {
	appointments []model.Appointment
	apptErr      error
	patients     []model.Patient
	patientsErr  error
}

func (r *stubDoctorRepo) UpcomingAppointments(ctx context.Context, doctorID int) ([]model.Appointment, error) {
	return r.appointments, r.apptErr
}

func (r *stubDoctorRepo) DistinctPatients(ctx context.Context, doctorID int) ([]model.Patient, error) {
	return r.patients, r.patientsErr
}

func TestDashboardService_PatientDashboard(t *testing.T) {
	svc := NewDashboardService(&stubPatientRepo{
		patient:      &model.Patient{ID: 7, Name: "Jane Miller", Age: 34, Gender: "F", Insurance: "BlueShield"},
		appointments: []model.Appointment{{ID: 21, DoctorName: "Dr. Priya Shah"}},
		allergies:    []model.AllergyWarning{{Name: "Peanuts", Severity: "SEVERE", Flagged: true}},
	}, &stubDoctorRepo{})

	dashboard, err := svc.PatientDashboard(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, dashboard.Patient)
	assert.Equal(t, "Jane Miller", dashboard.Patient.Name)
	require.Len(t, dashboard.Appointments, 1)
	assert.Equal(t, "Dr. Priya Shah", dashboard.Appointments[0].DoctorName)
	require.Len(t, dashboard.Allergies, 1)
	assert.Equal(t, "Peanuts", dashboard.Allergies[0].Name)
}

func TestDashboardService_PatientDashboard_MissingProfile(t *testing.T) {
	svc := NewDashboardService(&stubPatientRepo{
		patient:      nil,
		appointments: []model.Appointment{},
		allergies:    []model.AllergyWarning{},
	}, &stubDoctorRepo{})

	dashboard, err := svc.PatientDashboard(context.Background(), 7)

	// Missing profile yields a nil patient, not an error
	require.NoError(t, err)
	assert.Nil(t, dashboard.Patient)
	assert.Empty(t, dashboard.Appointments)
	assert.Empty(t, dashboard.Allergies)
}

func TestDashboardService_PatientDashboard_QueryError(t *testing.T) {
	svc := NewDashboardService(&stubPatientRepo{
		apptErr: errors.New("connection refused"),
	}, &stubDoctorRepo{})

	dashboard, err := svc.PatientDashboard(context.Background(), 7)

	assert.Error(t, err)
	assert.Nil(t, dashboard)
}

func TestDashboardService_DoctorDashboard(t *testing.T) {
	svc := NewDashboardService(&stubPatientRepo{}, &stubDoctorRepo{
		appointments: []model.Appointment{{ID: 31, PatientName: "Jane Miller"}},
		patients:     []model.Patient{{ID: 7, Name: "Jane Miller"}, {ID: 12, Name: "Tom Ford"}},
	})

	dashboard, err := svc.DoctorDashboard(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, dashboard.Appointments, 1)
	assert.Equal(t, "Jane Miller", dashboard.Appointments[0].PatientName)
	assert.Len(t, dashboard.Patients, 2)
}

func TestDashboardService_DoctorDashboard_QueryError(t *testing.T) {
	svc := NewDashboardService(&stubPatientRepo{}, &stubDoctorRepo{
		patientsErr: errors.New("connection refused"),
	})

	dashboard, err := svc.DoctorDashboard(context.Background(), 3)

	assert.Error(t, err)
	assert.Nil(t, dashboard)
}
