package queries

import (
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/guard"
)

var ErrGetPayableRemittancesQueryIsNotConstructed = errors.New(
	"GetPayableRemittancesQuery must be created via NewGetPayableRemittancesQuery constructor",
)

// GetPayableRemittancesQuery lists the remittances of one settlement day that
// are actually worth paying out. The net amount is computed on read as gross
// minus the shop's CURRENT pending debts, so a debt recorded after
// consolidation immediately lowers the payable figure. Rows whose net amount
// is zero or negative stay pending in storage but are excluded from this
// listing.
//
// Example:
//
//	query, err := NewGetPayableRemittancesQuery(date)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetPayableRemittancesQueryHandler(db)
//
//	remittances, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get payable remittances: %w", err)
//	}
//
//	for _, remittance := range remittances {
//	    fmt.Printf("shop %s: pay %s\n", remittance.ShopID, remittance.NetAmount)
//	}
type GetPayableRemittancesQuery struct { //nolint:recvcheck //using for validation
	date kernel.ReportDate

	guard guard.ConstructorGuard
}

// NewGetPayableRemittancesQuery creates a query for one settlement day.
func NewGetPayableRemittancesQuery(date kernel.ReportDate) (GetPayableRemittancesQuery, error) {
	remittancesQuery := GetPayableRemittancesQuery{guard: guard.NewConstructorGuard()}

	if err := remittancesQuery.setDate(date); err != nil {
		return GetPayableRemittancesQuery{}, err
	}

	return remittancesQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPayableRemittancesQueryIsNotConstructed if validation fails.
func (q GetPayableRemittancesQuery) Validate() error {
	return q.guard.Validate(ErrGetPayableRemittancesQueryIsNotConstructed)
}

// Date returns the settlement day being listed.
func (q GetPayableRemittancesQuery) Date() kernel.ReportDate {
	return q.date
}

func (q *GetPayableRemittancesQuery) setDate(date kernel.ReportDate) error {
	if err := date.Validate(); err != nil {
		return err
	}

	q.date = date
	return nil
}

// GetPayableRemittancesQueryResponse represents one payable remittance in
// the read model. PendingDebts and NetAmount reflect the shop's debt state
// at read time, which may be newer than the consolidation snapshot; the
// debts that would be settled by paying now are listed in PendingDebtIDs.
type GetPayableRemittancesQueryResponse struct {
	ID             kernel.UUID
	ShopID         kernel.UUID
	ShopName       string
	RemittanceDate kernel.ReportDate
	GrossAmount    kernel.Money
	PendingDebts   kernel.Money
	NetAmount      kernel.Money
	PendingDebtIDs []kernel.UUID
}
