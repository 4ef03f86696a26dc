package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
	"github.com/origin8hq/lms-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (user_id, total_entitled, remaining_days, updated_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.UserID, balance.TotalEntitled, balance.RemainingDays,
	).Scan(&balance.UpdatedAt)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) GetByUserID(ctx context.Context, userID string) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, total_entitled, remaining_days, updated_at
		FROM leave_balances
		WHERE user_id = $1
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, userID).Scan(
		&b.UserID, &b.TotalEntitled, &b.RemainingDays, &b.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	return b, nil
}

// Debit clamps at zero in SQL so a concurrent debit can never drive the
// remaining count negative.
func (r *leaveBalanceRepositoryImpl) Debit(ctx context.Context, userID string, days float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET remaining_days = GREATEST(remaining_days - $2, 0), updated_at = NOW()
		WHERE user_id = $1
	`

	commandTag, err := q.Exec(ctx, query, userID, days)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
