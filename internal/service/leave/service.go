package leave

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
	"github.com/origin8hq/lms-backend-go/internal/pkg/database"
	"github.com/origin8hq/lms-backend-go/internal/repository/postgresql"
)

// Service implements leave.LeaveService: the approval workflow, duration
// sizing, balance ledger and catalog reads behind one interface.
type Service struct {
	db       *database.DB
	types    leave.LeaveTypeRepository
	requests leave.LeaveRequestRepository
	balances leave.LeaveBalanceRepository

	// withTx runs fn inside a database transaction, with the transaction
	// threaded through the context for the repositories. Swappable in tests.
	withTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(
	db *database.DB,
	typeRepository leave.LeaveTypeRepository,
	requestRepository leave.LeaveRequestRepository,
	balanceRepository leave.LeaveBalanceRepository,
) *Service {
	return &Service{
		db:       db,
		types:    typeRepository,
		requests: requestRepository,
		balances: balanceRepository,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(context.WithValue(ctx, "tx", tx))
			})
		},
	}
}

var _ leave.LeaveService = (*Service)(nil)
