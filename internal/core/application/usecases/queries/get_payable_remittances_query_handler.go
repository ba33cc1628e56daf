package queries

import (
	"context"
	"time"

	"deliverypay/internal/core/domain/model/finance"
	"deliverypay/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPayableRemittancesQueryHandler lists payable remittances for a
// settlement day. Joins each pending remittance against the shop's current
// pending debts so the net amount always reflects the latest debt state,
// not the consolidation-time snapshot.
type GetPayableRemittancesQueryHandler struct {
	db *gorm.DB
}

// NewGetPayableRemittancesQueryHandler creates a handler for payable
// remittance listings. Requires a GORM database connection.
func NewGetPayableRemittancesQueryHandler(db *gorm.DB) GetPayableRemittancesQueryHandler {
	return GetPayableRemittancesQueryHandler{db: db}
}

// Handle executes the query for one settlement day. Only pending remittances
// with a positive read-time net amount are returned; the pending debt rows
// backing the deduction are aggregated per shop into PendingDebtIDs.
// Results are sorted by shop name.
func (h GetPayableRemittancesQueryHandler) Handle(
	ctx context.Context,
	query GetPayableRemittancesQuery,
) ([]GetPayableRemittancesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	remittances := make([]GetPayableRemittancesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.shop_id,
			s.name,
			r.remittance_date,
			r.gross_amount,
			COALESCE(SUM(d.amount), 0) AS pending_debts,
			r.gross_amount - COALESCE(SUM(d.amount), 0) AS net_amount,
			COALESCE(ARRAY_AGG(d.id::text) FILTER (WHERE d.id IS NOT NULL), '{}') AS pending_debt_ids
		FROM remittances r
		JOIN shops s ON s.id = r.shop_id
		LEFT JOIN debts d ON d.shop_id = r.shop_id AND d.status = ?
		WHERE r.remittance_date = ? AND r.status = ?
		GROUP BY r.id, r.shop_id, s.name, r.remittance_date, r.gross_amount
		HAVING r.gross_amount - COALESCE(SUM(d.amount), 0) > 0
		ORDER BY s.name
	`,
		finance.DebtStatusPending.String(),
		query.Date().Time(),
		finance.RemittanceStatusPending.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var remittance GetPayableRemittancesQueryResponse
		var id, shopID uuid.UUID
		var remittanceDate time.Time
		var grossAmount, pendingDebts, netAmount decimal.Decimal
		var debtIDs pq.StringArray

		err = rows.Scan(
			&id,
			&shopID,
			&remittance.ShopName,
			&remittanceDate,
			&grossAmount,
			&pendingDebts,
			&netAmount,
			&debtIDs,
		)
		if err != nil {
			return nil, err
		}

		remittance.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		remittance.ShopID, err = kernel.UUIDFromBytes(shopID[:])
		if err != nil {
			return nil, err
		}

		remittance.PendingDebtIDs = make([]kernel.UUID, 0, len(debtIDs))
		for _, rawID := range debtIDs {
			debtID, idErr := kernel.UUIDFromString(rawID)
			if idErr != nil {
				return nil, idErr
			}
			remittance.PendingDebtIDs = append(remittance.PendingDebtIDs, debtID)
		}

		remittance.RemittanceDate = kernel.ReportDateFromTime(remittanceDate)
		remittance.GrossAmount = kernel.NewMoney(grossAmount)
		remittance.PendingDebts = kernel.NewMoney(pendingDebts)
		remittance.NetAmount = kernel.NewMoney(netAmount)
		remittances = append(remittances, remittance)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return remittances, nil
}
