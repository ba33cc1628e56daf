package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its items and history from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	order, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its items and history.
// Returns errs.ObjectNotFoundError when no order exists for the given identity.
// Items keep their insertion order; history is sorted oldest first.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	response, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	response.Items, err = h.fetchItems(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	response.History, err = h.fetchHistory(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) fetchOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shop_id,
			courier_id,
			customer_name,
			customer_phone,
			delivery_address,
			article_amount,
			delivery_fee,
			expedition_fee,
			amount_received,
			status,
			payment_status,
			report_date
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var response GetOrderQueryResponse
	var id, shopID uuid.UUID
	var courierID *uuid.UUID
	var articleAmount, deliveryFee, expeditionFee, amountReceived decimal.Decimal
	var reportDate time.Time

	err := row.Scan(
		&id,
		&shopID,
		&courierID,
		&response.CustomerName,
		&response.CustomerPhone,
		&response.DeliveryAddress,
		&articleAmount,
		&deliveryFee,
		&expeditionFee,
		&amountReceived,
		&response.Status,
		&response.PaymentStatus,
		&reportDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err != nil {
		return nil, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	response.ShopID, err = kernel.UUIDFromBytes(shopID[:])
	if err != nil {
		return nil, err
	}

	if courierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*courierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		response.CourierID = &cID
	}

	response.ArticleAmount = kernel.NewMoney(articleAmount)
	response.DeliveryFee = kernel.NewMoney(deliveryFee)
	response.ExpeditionFee = kernel.NewMoney(expeditionFee)
	response.AmountReceived = kernel.NewMoney(amountReceived)
	response.ReportDate = kernel.ReportDateFromTime(reportDate)

	return &response, nil
}

func (h GetOrderQueryHandler) fetchItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryItem, error) {
	items := make([]GetOrderQueryItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity,
			amount
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryItem
		var id uuid.UUID
		var amount decimal.Decimal

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Quantity,
			&amount,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID
		item.Amount = kernel.NewMoney(amount)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetOrderQueryHandler) fetchHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryHistoryEntry, error) {
	history := make([]GetOrderQueryHistoryEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			action,
			actor_id,
			details,
			created_at
		FROM order_history
		WHERE order_id = ?
		ORDER BY created_at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderQueryHistoryEntry
		var id, actorID uuid.UUID

		err = rows.Scan(
			&id,
			&entry.Action,
			&actorID,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		entryActorID, actorErr := kernel.UUIDFromBytes(actorID[:])
		if actorErr != nil {
			return nil, actorErr
		}
		entry.ActorID = entryActorID
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
