package repository

import (
	"context"
	"errors"
	"fmt"

	"healthhub/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for account data
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.UserAccount, error)
}

type userRepository struct {
	db Querier
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db Querier) UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves an account by email address
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.UserAccount, error) {
	user := &model.UserAccount{}
	sql := `SELECT id, email, password_hash, role, patient_id, doctor_id, created_at
            FROM user_account WHERE email = $1`
	err := r.db.QueryRow(ctx, sql, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role,
		&user.PatientID, &user.DoctorID, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Account not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find account by email: %w", err)
	}
	return user, nil
}
