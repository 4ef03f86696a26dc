package leave

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
)

// Summarize aggregates one user's entitlement view for the dashboards. It is
// a pure read: nothing here touches remaining_days. Failed lookups degrade to
// zero counts so an unrelated card never blocks the page.
func (s *Service) Summarize(ctx context.Context, userID string) leave.BalanceSummary {
	var summary leave.BalanceSummary

	balance, err := s.balances.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		summary.Total = balance.TotalEntitled
		summary.Remaining = balance.RemainingDays
		summary.Used = balance.Used()
	case errors.Is(err, pgx.ErrNoRows):
		// No balance row yet; everything stays zero.
	default:
		slog.Warn("balance lookup failed, defaulting to zero", "user_id", userID, "error", err)
	}

	pending, err := s.requests.CountPendingByRequester(ctx, userID)
	if err != nil {
		slog.Warn("pending count failed, defaulting to zero", "user_id", userID, "error", err)
	} else {
		summary.Pending = pending
	}

	return summary
}
