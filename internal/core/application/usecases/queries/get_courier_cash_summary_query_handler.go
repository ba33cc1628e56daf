package queries

import (
	"context"
	"time"

	"deliverypay/internal/core/domain/model/courier"
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCourierCashSummaryQueryHandler computes courier cash summaries from the
// order, cash transaction and shortfall tables. The totals are accumulated
// from the same event rows the summary exposes, so the figures and the audit
// list can never disagree.
type GetCourierCashSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierCashSummaryQueryHandler creates a handler for courier cash
// summaries. Requires a GORM database connection.
func NewGetCourierCashSummaryQueryHandler(db *gorm.DB) GetCourierCashSummaryQueryHandler {
	return GetCourierCashSummaryQueryHandler{db: db}
}

// Handle executes the query for one courier over a period.
//
// An order contributes its article amount when the courier delivered it (or
// failed the delivery) against cash, and minus its expedition fee when the
// customer paid the shop directly and the courier fronted a positive
// expedition fee. Expenses contribute regardless of confirmation state;
// shortfalls only while pending. Confirmed remittance transactions feed the
// totals but are not events themselves: they are the hand-over the events
// are reconciled against. Empty periods yield an all-zero summary.
func (h GetCourierCashSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetCourierCashSummaryQuery,
) (*GetCourierCashSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	response := GetCourierCashSummaryQueryResponse{
		CourierID:              query.CourierID(),
		From:                   query.From(),
		To:                     query.To(),
		TotalOrdersAmount:      kernel.ZeroMoney(),
		TotalRemittances:       kernel.ZeroMoney(),
		TotalExpenses:          kernel.ZeroMoney(),
		TotalPendingShortfalls: kernel.ZeroMoney(),
		Events:                 make([]CourierCashEvent, 0),
	}

	remittances, err := h.sumConfirmedRemittances(ctx, query)
	if err != nil {
		return nil, err
	}
	response.TotalRemittances = remittances

	if err = h.collectEvents(ctx, query, &response); err != nil {
		return nil, err
	}

	response.AmountExpected = response.TotalOrdersAmount.Sub(response.TotalRemittances)
	response.AmountConfirmed = response.TotalRemittances.Sub(response.TotalPendingShortfalls)

	return &response, nil
}

func (h GetCourierCashSummaryQueryHandler) sumConfirmedRemittances(
	ctx context.Context,
	query GetCourierCashSummaryQuery,
) (kernel.Money, error) {
	var total decimal.Decimal

	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM courier_cash_transactions
		WHERE courier_id = ?
			AND type = ?
			AND status = ?
			AND report_date BETWEEN ? AND ?
	`,
		query.CourierID().Bytes(),
		courier.CashTransactionRemittance.String(),
		courier.CashTransactionStatusConfirmed.String(),
		query.From().Time(),
		query.To().Time(),
	).Scan(&total).Error
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewMoney(total), nil
}

func (h GetCourierCashSummaryQueryHandler) collectEvents(
	ctx context.Context,
	query GetCourierCashSummaryQuery,
	response *GetCourierCashSummaryQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			'order' AS kind,
			o.id,
			o.report_date AS event_date,
			CASE WHEN o.payment_status = @cash
				THEN o.article_amount
				ELSE -o.expedition_fee
			END AS amount,
			o.customer_name AS details
		FROM orders o
		WHERE o.courier_id = @courier
			AND o.report_date BETWEEN @from AND @to
			AND ((o.status IN (@delivered, @failed) AND o.payment_status = @cash)
				OR (o.payment_status = @supplier AND o.expedition_fee > 0))
		UNION ALL
		SELECT
			'expense',
			t.id,
			t.report_date,
			t.amount,
			''
		FROM courier_cash_transactions t
		WHERE t.courier_id = @courier
			AND t.type = @expense
			AND t.report_date BETWEEN @from AND @to
		UNION ALL
		SELECT
			'shortfall',
			sf.id,
			sf.report_date,
			sf.amount,
			''
		FROM courier_shortfalls sf
		WHERE sf.courier_id = @courier
			AND sf.status = @pending
			AND sf.report_date BETWEEN @from AND @to
		ORDER BY event_date, kind, id
	`,
		map[string]interface{}{
			"courier":   query.CourierID().Bytes(),
			"from":      query.From().Time(),
			"to":        query.To().Time(),
			"cash":      order.PaymentCash.String(),
			"supplier":  order.PaymentPaidToSupplier.String(),
			"delivered": order.StatusDelivered.String(),
			"failed":    order.StatusFailedDelivery.String(),
			"expense":   courier.CashTransactionExpense.String(),
			"pending":   courier.ShortfallStatusPending.String(),
		},
	).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var event CourierCashEvent
		var id uuid.UUID
		var eventDate time.Time
		var amount decimal.Decimal

		err = rows.Scan(
			&event.Kind,
			&id,
			&eventDate,
			&amount,
			&event.Details,
		)
		if err != nil {
			return err
		}

		referenceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		event.ReferenceID = referenceID
		event.Date = kernel.ReportDateFromTime(eventDate)
		event.Amount = kernel.NewMoney(amount)

		switch event.Kind {
		case CashEventOrder:
			response.TotalOrdersAmount = response.TotalOrdersAmount.Add(event.Amount)
		case CashEventExpense:
			response.TotalExpenses = response.TotalExpenses.Add(event.Amount)
		case CashEventShortfall:
			response.TotalPendingShortfalls = response.TotalPendingShortfalls.Add(event.Amount)
		}

		response.Events = append(response.Events, event)
	}

	return rows.Err()
}
