package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"seller-wallet-backend/internal/logger"
)

// AuditLedger verifies that no money was created or destroyed: every ledger
// line must satisfy credit_after - credit_before = amount with the sign
// matching its type, and every seller's credit must equal the sum of their
// ledger amounts. Violations are alerted to the ops address.
func (jr *JobRunner) AuditLedger() {
	jr.runWithRecovery("AuditLedger", func() {
		ctx := context.Background()

		violations, err := jr.store.CountConservationViolations(ctx)
		if err != nil {
			logger.Error("Failed to check ledger conservation", "error", err)
			return
		}
		if violations > 0 {
			logger.Error("Ledger conservation violated", "rows", violations)
			msg := fmt.Sprintf("Ledger audit found %d transaction rows violating conservation.", violations)
			if err := jr.emailSvc.SendOpsAlert(ctx, "Ledger audit failure", msg); err != nil {
				logger.Error("Failed to send audit alert", "error", err)
			}
		}

		sellerIDs, err := jr.store.ListSellerIDs(ctx)
		if err != nil {
			logger.Error("Failed to list sellers for audit", "error", err)
			return
		}

		var drifted []string
		for _, id := range sellerIDs {
			seller, err := jr.store.SellerRepository.GetByID(ctx, id)
			if err != nil {
				logger.Error("Failed to load seller for audit", "seller_id", id, "error", err)
				continue
			}
			sum, err := jr.store.SumAmounts(ctx, id)
			if err != nil {
				logger.Error("Failed to sum transactions for audit", "seller_id", id, "error", err)
				continue
			}
			if !seller.Credit.Equal(sum) {
				logger.Error("Seller balance drifted from ledger",
					"seller_id", id, "credit", seller.Credit, "ledger_sum", sum)
				drifted = append(drifted, fmt.Sprintf("seller %d: credit=%s ledger=%s", id, seller.Credit, sum))
			}
		}

		if len(drifted) > 0 {
			msg := "Seller balances out of sync with ledger:\n" + strings.Join(drifted, "\n")
			if err := jr.emailSvc.SendOpsAlert(ctx, "Balance drift detected", msg); err != nil {
				logger.Error("Failed to send audit alert", "error", err)
			}
			return
		}

		logger.Info("Ledger audit passed", "sellers_checked", len(sellerIDs))
	})
}

// RemindStalePendingRequests emails ops about credit requests that have been
// waiting for a decision longer than the configured age.
func (jr *JobRunner) RemindStalePendingRequests() {
	jr.runWithRecovery("RemindStalePendingRequests", func() {
		ctx := context.Background()

		cutoff := time.Now().UTC().Add(-time.Duration(jr.config.Audit.StalePendingHours) * time.Hour)
		stale, err := jr.store.ListStalePending(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale pending requests", "error", err)
			return
		}
		if len(stale) == 0 {
			logger.Info("No stale pending credit requests")
			return
		}

		var lines []string
		for _, req := range stale {
			lines = append(lines, fmt.Sprintf("request %d: seller %d, amount %s, requested %s",
				req.ID, req.SellerID, req.Amount.StringFixed(2), req.RequestedAt.Format(time.RFC3339)))
		}
		msg := fmt.Sprintf("%d credit requests pending longer than %dh:\n%s",
			len(stale), jr.config.Audit.StalePendingHours, strings.Join(lines, "\n"))

		if err := jr.emailSvc.SendOpsAlert(ctx, "Stale pending credit requests", msg); err != nil {
			logger.Error("Failed to send stale request reminder", "error", err)
			return
		}
		logger.Info("Stale pending reminder sent", "count", len(stale))
	})
}
