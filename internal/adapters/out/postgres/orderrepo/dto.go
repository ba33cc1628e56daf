// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order row owns its line items and its append-only
// history trail; items are replaced wholesale on update while history rows
// are only ever inserted.
package orderrepo

import (
	"time"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourierID       *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName    string          `gorm:"type:varchar(255);not null"`
	CustomerPhone   string          `gorm:"type:varchar(32)"`
	DeliveryAddress string          `gorm:"type:varchar(512);not null"`
	ArticleAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	DeliveryFee     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	ExpeditionFee   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	AmountReceived  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status          string          `gorm:"type:varchar(32);not null;index"`
	PaymentStatus   string          `gorm:"type:varchar(32);not null"`
	ReportDate      time.Time       `gorm:"type:date;not null;index"`
	Items           []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History         []HistoryDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item row.
type ItemDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Quantity int             `gorm:"type:int;not null"`
	Amount   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// HistoryDTO represents one row of an order's audit trail.
type HistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Action    string    `gorm:"type:varchar(32);not null"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null"`
	Details   string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order history.
func (HistoryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  orderID,
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Amount:   item.Amount().Decimal(),
		})
	}

	history := make([]HistoryDTO, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, HistoryDTO{
			ID:        entry.ID().Bytes(),
			OrderID:   orderID,
			Action:    string(entry.Action()),
			ActorID:   entry.ActorID().Bytes(),
			Details:   entry.Details(),
			CreatedAt: entry.CreatedAt(),
		})
	}

	details := aggregate.Details()
	return OrderDTO{
		ID:              orderID,
		ShopID:          aggregate.ShopID().Bytes(),
		CourierID:       courierID,
		CustomerName:    details.CustomerName,
		CustomerPhone:   details.CustomerPhone,
		DeliveryAddress: details.DeliveryAddress,
		ArticleAmount:   details.ArticleAmount.Decimal(),
		DeliveryFee:     details.DeliveryFee.Decimal(),
		ExpeditionFee:   details.ExpeditionFee.Decimal(),
		AmountReceived:  aggregate.AmountReceived().Decimal(),
		Status:          aggregate.Status().String(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		ReportDate:      details.ReportDate.Time(),
		Items:           items,
		History:         history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, historyDTO := range dto.History {
		entry, historyErr := historyToDomain(historyDTO)
		if historyErr != nil {
			return nil, historyErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(
		id,
		shopID,
		courierID,
		order.Details{
			CustomerName:    dto.CustomerName,
			CustomerPhone:   dto.CustomerPhone,
			DeliveryAddress: dto.DeliveryAddress,
			ArticleAmount:   kernel.NewMoney(dto.ArticleAmount),
			DeliveryFee:     kernel.NewMoney(dto.DeliveryFee),
			ExpeditionFee:   kernel.NewMoney(dto.ExpeditionFee),
			ReportDate:      kernel.ReportDateFromTime(dto.ReportDate),
		},
		kernel.NewMoney(dto.AmountReceived),
		status,
		paymentStatus,
		items,
		history,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(id, dto.Name, dto.Quantity, kernel.NewMoney(dto.Amount))
}

func historyToDomain(dto HistoryDTO) (order.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.RestoreHistoryEntry(
		id, order.HistoryAction(dto.Action), actorID, dto.Details, dto.CreatedAt), nil
}
