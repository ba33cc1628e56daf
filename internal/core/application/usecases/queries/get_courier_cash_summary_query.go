package queries

import (
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
	"deliverypay/internal/pkg/guard"
)

var ErrGetCourierCashSummaryQueryIsNotConstructed = errors.New(
	"GetCourierCashSummaryQuery must be created via NewGetCourierCashSummaryQuery constructor",
)

// GetCourierCashSummaryQuery computes a courier's cash position over a
// period, inclusive of both boundary days: how much cash the courier
// collected on orders, handed back as confirmed remittances, spent as
// expenses, and still owes as pending shortfalls. The summary carries a
// merged, date-sorted list of the contributing events so the back office
// can audit every figure.
//
// Example:
//
//	query, err := NewGetCourierCashSummaryQuery(courierID, from, to)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetCourierCashSummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cash summary: %w", err)
//	}
//
//	fmt.Printf("expected %s, confirmed %s\n", summary.AmountExpected, summary.AmountConfirmed)
type GetCourierCashSummaryQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	from      kernel.ReportDate
	to        kernel.ReportDate

	guard guard.ConstructorGuard
}

// NewGetCourierCashSummaryQuery creates a query for one courier over [from, to].
func NewGetCourierCashSummaryQuery(
	courierID kernel.UUID,
	from kernel.ReportDate,
	to kernel.ReportDate,
) (GetCourierCashSummaryQuery, error) {
	summaryQuery := GetCourierCashSummaryQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		summaryQuery.setCourierID(courierID),
		summaryQuery.setPeriod(from, to),
	); err != nil {
		return GetCourierCashSummaryQuery{}, err
	}

	return summaryQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCourierCashSummaryQueryIsNotConstructed if validation fails.
func (q GetCourierCashSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierCashSummaryQueryIsNotConstructed)
}

// CourierID returns the courier whose cash position is requested.
func (q GetCourierCashSummaryQuery) CourierID() kernel.UUID {
	return q.courierID
}

// From returns the first day of the period.
func (q GetCourierCashSummaryQuery) From() kernel.ReportDate {
	return q.from
}

// To returns the last day of the period.
func (q GetCourierCashSummaryQuery) To() kernel.ReportDate {
	return q.to
}

func (q *GetCourierCashSummaryQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}

func (q *GetCourierCashSummaryQuery) setPeriod(from, to kernel.ReportDate) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}

	if to.Before(from) {
		return errs.NewValueIsInvalidError("period end is before period start")
	}

	q.from = from
	q.to = to
	return nil
}

// Cash event kinds appearing in a courier cash summary.
const (
	CashEventOrder     = "order"
	CashEventExpense   = "expense"
	CashEventShortfall = "shortfall"
)

// CourierCashEvent is one contributing row of a cash summary: an order the
// courier collected cash on (or fronted an expedition fee for), an expense,
// or a pending shortfall. Amount is the signed cash impact of the event.
type CourierCashEvent struct {
	Kind        string
	ReferenceID kernel.UUID
	Date        kernel.ReportDate
	Amount      kernel.Money
	Details     string
}

// GetCourierCashSummaryQueryResponse represents a courier's cash position
// over a period. AmountExpected is the cash the courier should still be
// holding; AmountConfirmed is the cash validated as handed over, net of
// unresolved shortfalls. All figures are zero when no events exist.
type GetCourierCashSummaryQueryResponse struct {
	CourierID              kernel.UUID
	From                   kernel.ReportDate
	To                     kernel.ReportDate
	TotalOrdersAmount      kernel.Money
	TotalRemittances       kernel.Money
	TotalExpenses          kernel.Money
	TotalPendingShortfalls kernel.Money
	AmountExpected         kernel.Money
	AmountConfirmed        kernel.Money
	Events                 []CourierCashEvent
}
