package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire contracts for the JSON API. Monetary amounts travel as decimal
// strings to avoid float rounding on either side of the wire.

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

type OrderItemRequest struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

type CreateOrderRequest struct {
	ShopID          string             `json:"shop_id"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	DeliveryAddress string             `json:"delivery_address"`
	ArticleAmount   decimal.Decimal    `json:"article_amount"`
	DeliveryFee     decimal.Decimal    `json:"delivery_fee"`
	ExpeditionFee   decimal.Decimal    `json:"expedition_fee"`
	ReportDate      string             `json:"report_date"`
	Items           []OrderItemRequest `json:"items"`
	ActorID         string             `json:"actor_id"`
}

type UpdateOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	DeliveryAddress string             `json:"delivery_address"`
	ArticleAmount   decimal.Decimal    `json:"article_amount"`
	DeliveryFee     decimal.Decimal    `json:"delivery_fee"`
	ExpeditionFee   decimal.Decimal    `json:"expedition_fee"`
	ReportDate      string             `json:"report_date"`
	Items           []OrderItemRequest `json:"items"`
	ActorID         string             `json:"actor_id"`
}

type UpdateOrderStatusRequest struct {
	Status         string           `json:"status"`
	AmountReceived *decimal.Decimal `json:"amount_received,omitempty"`
	PaymentStatus  *string          `json:"payment_status,omitempty"`
	ActorID        string           `json:"actor_id"`
}

type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
	ActorID   string `json:"actor_id"`
}

type MarkRemittancePaidRequest struct {
	PaidBy string `json:"paid_by"`
}

type RecordCashTransactionRequest struct {
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	ReportDate string          `json:"report_date"`
}

type RecordShortfallRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	ReportDate string          `json:"report_date"`
}

type OrderItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

type OrderHistoryResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderResponse struct {
	ID              string                 `json:"id"`
	ShopID          string                 `json:"shop_id"`
	CourierID       *string                `json:"courier_id,omitempty"`
	CustomerName    string                 `json:"customer_name"`
	CustomerPhone   string                 `json:"customer_phone"`
	DeliveryAddress string                 `json:"delivery_address"`
	ArticleAmount   decimal.Decimal        `json:"article_amount"`
	DeliveryFee     decimal.Decimal        `json:"delivery_fee"`
	ExpeditionFee   decimal.Decimal        `json:"expedition_fee"`
	AmountReceived  decimal.Decimal        `json:"amount_received"`
	Status          string                 `json:"status"`
	PaymentStatus   string                 `json:"payment_status"`
	ReportDate      string                 `json:"report_date"`
	Items           []OrderItemResponse    `json:"items"`
	History         []OrderHistoryResponse `json:"history"`
}

type DailyBalanceResponse struct {
	ReportDate       string          `json:"report_date"`
	OrdersSent       int             `json:"orders_sent"`
	OrdersDelivered  int             `json:"orders_delivered"`
	RevenueArticles  decimal.Decimal `json:"revenue_articles"`
	DeliveryFees     decimal.Decimal `json:"delivery_fees"`
	PackagingFees    decimal.Decimal `json:"packaging_fees"`
	ExpeditionFees   decimal.Decimal `json:"expedition_fees"`
	RemittanceAmount decimal.Decimal `json:"remittance_amount"`
}

type PayableRemittanceResponse struct {
	ID             string          `json:"id"`
	ShopID         string          `json:"shop_id"`
	ShopName       string          `json:"shop_name"`
	RemittanceDate string          `json:"remittance_date"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	PendingDebts   decimal.Decimal `json:"pending_debts"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	PendingDebtIDs []string        `json:"pending_debt_ids"`
}

type CourierCashEventResponse struct {
	Kind        string          `json:"kind"`
	ReferenceID string          `json:"reference_id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Details     string          `json:"details"`
}

type CourierCashSummaryResponse struct {
	CourierID              string                     `json:"courier_id"`
	From                   string                     `json:"from"`
	To                     string                     `json:"to"`
	TotalOrdersAmount      decimal.Decimal            `json:"total_orders_amount"`
	TotalRemittances       decimal.Decimal            `json:"total_remittances"`
	TotalExpenses          decimal.Decimal            `json:"total_expenses"`
	TotalPendingShortfalls decimal.Decimal            `json:"total_pending_shortfalls"`
	AmountExpected         decimal.Decimal            `json:"amount_expected"`
	AmountConfirmed        decimal.Decimal            `json:"amount_confirmed"`
	Events                 []CourierCashEventResponse `json:"events"`
}
