package queries

import (
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
	"deliverypay/internal/pkg/guard"
)

var ErrGetDailyBalancesQueryIsNotConstructed = errors.New(
	"GetDailyBalancesQuery must be created via NewGetDailyBalancesQuery constructor",
)

// GetDailyBalancesQuery retrieves the ledger rows of one shop over a period,
// inclusive of both boundary days. Used by the reporting surface to show a
// shop its daily economics and the derived remittance amounts.
//
// Example:
//
//	query, err := NewGetDailyBalancesQuery(shopID, from, to)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetDailyBalancesQueryHandler(db)
//
//	balances, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get daily balances: %w", err)
//	}
//
//	for _, balance := range balances {
//	    fmt.Printf("%s: remittance %s\n", balance.ReportDate, balance.RemittanceAmount)
//	}
type GetDailyBalancesQuery struct { //nolint:recvcheck //using for validation
	shopID kernel.UUID
	from   kernel.ReportDate
	to     kernel.ReportDate

	guard guard.ConstructorGuard
}

// NewGetDailyBalancesQuery creates a query for one shop's ledger over [from, to].
func NewGetDailyBalancesQuery(
	shopID kernel.UUID,
	from kernel.ReportDate,
	to kernel.ReportDate,
) (GetDailyBalancesQuery, error) {
	balancesQuery := GetDailyBalancesQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		balancesQuery.setShopID(shopID),
		balancesQuery.setPeriod(from, to),
	); err != nil {
		return GetDailyBalancesQuery{}, err
	}

	return balancesQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDailyBalancesQueryIsNotConstructed if validation fails.
func (q GetDailyBalancesQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyBalancesQueryIsNotConstructed)
}

// ShopID returns the shop whose ledger is requested.
func (q GetDailyBalancesQuery) ShopID() kernel.UUID {
	return q.shopID
}

// From returns the first day of the period.
func (q GetDailyBalancesQuery) From() kernel.ReportDate {
	return q.from
}

// To returns the last day of the period.
func (q GetDailyBalancesQuery) To() kernel.ReportDate {
	return q.to
}

func (q *GetDailyBalancesQuery) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}

	q.shopID = shopID
	return nil
}

func (q *GetDailyBalancesQuery) setPeriod(from, to kernel.ReportDate) error {
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

// GetDailyBalancesQueryResponse represents one (shop, day) ledger row in the
// read model. RemittanceAmount is the derived shop payout before debts.
type GetDailyBalancesQueryResponse struct {
	ReportDate       kernel.ReportDate
	OrdersSent       int
	OrdersDelivered  int
	RevenueArticles  kernel.Money
	DeliveryFees     kernel.Money
	PackagingFees    kernel.Money
	ExpeditionFees   kernel.Money
	RemittanceAmount kernel.Money
}
