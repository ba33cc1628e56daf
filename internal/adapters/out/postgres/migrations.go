package postgres

import (
	"deliverypay/internal/adapters/out/postgres/balancerepo"
	"deliverypay/internal/adapters/out/postgres/cashrepo"
	"deliverypay/internal/adapters/out/postgres/courierrepo"
	"deliverypay/internal/adapters/out/postgres/debtrepo"
	"deliverypay/internal/adapters/out/postgres/orderrepo"
	"deliverypay/internal/adapters/out/postgres/remittancerepo"
	"deliverypay/internal/adapters/out/postgres/shoprepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persistence model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&shoprepo.ShopDTO{},
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.HistoryDTO{},
		&balancerepo.BalanceDTO{},
		&debtrepo.DebtDTO{},
		&remittancerepo.RemittanceDTO{},
		&cashrepo.CashTransactionDTO{},
		&cashrepo.ShortfallDTO{},
	)
}
