package queries

import (
	"context"
	"time"

	"deliverypay/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDailyBalancesQueryHandler retrieves ledger rows from the database.
// Computes the derived remittance amount per row so callers never repeat
// the revenue-minus-fees arithmetic.
type GetDailyBalancesQueryHandler struct {
	db *gorm.DB
}

// NewGetDailyBalancesQueryHandler creates a handler for ledger period queries.
// Requires a GORM database connection for query execution.
func NewGetDailyBalancesQueryHandler(db *gorm.DB) GetDailyBalancesQueryHandler {
	return GetDailyBalancesQueryHandler{db: db}
}

// Handle executes the query to retrieve one shop's ledger rows over a period.
// Days without any order activity have no row and are simply absent from the
// result. Results are sorted by report date.
func (h GetDailyBalancesQueryHandler) Handle(
	ctx context.Context,
	query GetDailyBalancesQuery,
) ([]GetDailyBalancesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	balances := make([]GetDailyBalancesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			report_date,
			orders_sent,
			orders_delivered,
			revenue_articles,
			delivery_fees,
			packaging_fees,
			expedition_fees,
			revenue_articles - delivery_fees - packaging_fees AS remittance_amount
		FROM daily_balances
		WHERE shop_id = ? AND report_date BETWEEN ? AND ?
		ORDER BY report_date
	`, query.ShopID().Bytes(), query.From().Time(), query.To().Time()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var balance GetDailyBalancesQueryResponse
		var reportDate time.Time
		var revenueArticles, deliveryFees, packagingFees decimal.Decimal
		var expeditionFees, remittanceAmount decimal.Decimal

		err = rows.Scan(
			&reportDate,
			&balance.OrdersSent,
			&balance.OrdersDelivered,
			&revenueArticles,
			&deliveryFees,
			&packagingFees,
			&expeditionFees,
			&remittanceAmount,
		)
		if err != nil {
			return nil, err
		}

		balance.ReportDate = kernel.ReportDateFromTime(reportDate)
		balance.RevenueArticles = kernel.NewMoney(revenueArticles)
		balance.DeliveryFees = kernel.NewMoney(deliveryFees)
		balance.PackagingFees = kernel.NewMoney(packagingFees)
		balance.ExpeditionFees = kernel.NewMoney(expeditionFees)
		balance.RemittanceAmount = kernel.NewMoney(remittanceAmount)
		balances = append(balances, balance)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return balances, nil
}
