package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/BerylCAtieno/resume-autofill-api/internal/models"
	"github.com/jmoiron/sqlx"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
}

type applicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	query := `
		INSERT INTO applications (
			id, first_name, last_name, email, phone, address,
			achievements, motivation, gender, ethnicity, veteran_status,
			resume_key, resume_filename, resume_content_type, resume_size, created_at
		) VALUES (
			:id, :first_name, :last_name, :email, :phone, :address,
			:achievements, :motivation, :gender, :ethnicity, :veteran_status,
			:resume_key, :resume_filename, :resume_content_type, :resume_size, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, app)
	return err
}

// GetByID returns nil, nil when no application has the given id.
func (r *applicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application

	query := `
		SELECT id, first_name, last_name, email, phone, address,
		       achievements, motivation, gender, ethnicity, veteran_status,
		       resume_key, resume_filename, resume_content_type, resume_size, created_at
		FROM applications
		WHERE id = ?
	`

	err := r.db.GetContext(ctx, &app, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &app, nil
}
