package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	patientID := 7
	created := time.Now()
	rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "role", "patient_id", "doctor_id", "created_at"}).
		AddRow(1, "jane@x.com", "$2a$10$hash", "PATIENT", &patientID, (*int)(nil), created)
	mock.ExpectQuery(`SELECT id, email, password_hash, role, patient_id, doctor_id, created_at`).
		WithArgs("jane@x.com").
		WillReturnRows(rows)

	repo := NewUserRepository(mock)
	user, err := repo.FindByEmail(context.Background(), "jane@x.com")

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "jane@x.com", user.Email)
	assert.Equal(t, "PATIENT", user.Role)
	require.NotNil(t, user.PatientID)
	assert.Equal(t, 7, *user.PatientID)
	assert.Nil(t, user.DoctorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM user_account WHERE email`).
		WithArgs("nobody@x.com").
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock)
	user, err := repo.FindByEmail(context.Background(), "nobody@x.com")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM user_account WHERE email`).
		WithArgs("jane@x.com").
		WillReturnError(errors.New("connection refused"))

	repo := NewUserRepository(mock)
	user, err := repo.FindByEmail(context.Background(), "jane@x.com")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
