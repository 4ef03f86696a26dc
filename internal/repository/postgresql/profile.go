package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/user"
	"github.com/origin8hq/lms-backend-go/internal/pkg/database"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) user.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

func (r *profileRepositoryImpl) Create(ctx context.Context, profile user.Profile) (user.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO profiles (id, full_name, email, password_hash, role, department_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		profile.ID, profile.FullName, profile.Email,
		profile.PasswordHash, profile.Role, profile.DepartmentID,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return user.Profile{}, err
	}

	return profile, nil
}

func (r *profileRepositoryImpl) GetByID(ctx context.Context, id string) (user.Profile, error) {
	query := `
		SELECT p.id, p.full_name, p.email, p.password_hash, p.role, p.department_id,
		       p.created_at, p.updated_at, d.name
		FROM profiles p
		LEFT JOIN departments d ON p.department_id = d.id
		WHERE p.id = $1
	`
	return r.get(ctx, query, id)
}

func (r *profileRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.Profile, error) {
	query := `
		SELECT p.id, p.full_name, p.email, p.password_hash, p.role, p.department_id,
		       p.created_at, p.updated_at, d.name
		FROM profiles p
		LEFT JOIN departments d ON p.department_id = d.id
		WHERE p.email = $1
	`
	return r.get(ctx, query, email)
}

func (r *profileRepositoryImpl) get(ctx context.Context, query string, arg any) (user.Profile, error) {
	q := GetQuerier(ctx, r.db)

	var p user.Profile
	err := q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.FullName, &p.Email, &p.PasswordHash, &p.Role, &p.DepartmentID,
		&p.CreatedAt, &p.UpdatedAt, &p.DepartmentName,
	)
	if err != nil {
		return user.Profile{}, err
	}
	return p, nil
}

func (r *profileRepositoryImpl) List(ctx context.Context) ([]user.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.full_name, p.email, p.password_hash, p.role, p.department_id,
		       p.created_at, p.updated_at, d.name
		FROM profiles p
		LEFT JOIN departments d ON p.department_id = d.id
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []user.Profile
	for rows.Next() {
		var p user.Profile
		err := rows.Scan(
			&p.ID, &p.FullName, &p.Email, &p.PasswordHash, &p.Role, &p.DepartmentID,
			&p.CreatedAt, &p.UpdatedAt, &p.DepartmentName,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

func (r *profileRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
