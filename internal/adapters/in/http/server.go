package http

import (
	"errors"
	"net/http"

	"deliverypay/internal/core/application/usecases/commands"
	"deliverypay/internal/core/application/usecases/queries"
	"deliverypay/internal/core/domain/model/courier"
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/order"
	"deliverypay/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests by translating them into commands and
// queries. All domain validation lives in the command constructors; the
// server only parses the wire format and maps errors to status codes.
type Server struct {
	// Command handlers
	createOrderHandler            commands.CreateOrderCommandHandler
	updateOrderHandler            commands.UpdateOrderCommandHandler
	updateOrderStatusHandler      commands.UpdateOrderStatusCommandHandler
	removeOrderHandler            commands.RemoveOrderCommandHandler
	assignCourierHandler          commands.AssignCourierCommandHandler
	markRemittancePaidHandler     commands.MarkRemittancePaidCommandHandler
	recordCashTransactionHandler  commands.RecordCashTransactionCommandHandler
	confirmCashTransactionHandler commands.ConfirmCashTransactionCommandHandler
	recordShortfallHandler        commands.RecordShortfallCommandHandler
	settleShortfallHandler        commands.SettleShortfallCommandHandler

	// Query handlers
	getOrderHandler              queries.GetOrderQueryHandler
	getDailyBalancesHandler      queries.GetDailyBalancesQueryHandler
	getPayableRemittancesHandler queries.GetPayableRemittancesQueryHandler
	getCourierCashSummaryHandler queries.GetCourierCashSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	markRemittancePaidHandler commands.MarkRemittancePaidCommandHandler,
	recordCashTransactionHandler commands.RecordCashTransactionCommandHandler,
	confirmCashTransactionHandler commands.ConfirmCashTransactionCommandHandler,
	recordShortfallHandler commands.RecordShortfallCommandHandler,
	settleShortfallHandler commands.SettleShortfallCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getDailyBalancesHandler queries.GetDailyBalancesQueryHandler,
	getPayableRemittancesHandler queries.GetPayableRemittancesQueryHandler,
	getCourierCashSummaryHandler queries.GetCourierCashSummaryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		updateOrderHandler:            updateOrderHandler,
		updateOrderStatusHandler:      updateOrderStatusHandler,
		removeOrderHandler:            removeOrderHandler,
		assignCourierHandler:          assignCourierHandler,
		markRemittancePaidHandler:     markRemittancePaidHandler,
		recordCashTransactionHandler:  recordCashTransactionHandler,
		confirmCashTransactionHandler: confirmCashTransactionHandler,
		recordShortfallHandler:        recordShortfallHandler,
		settleShortfallHandler:        settleShortfallHandler,
		getOrderHandler:               getOrderHandler,
		getDailyBalancesHandler:       getDailyBalancesHandler,
		getPayableRemittancesHandler:  getPayableRemittancesHandler,
		getCourierCashSummaryHandler:  getCourierCashSummaryHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.RemoveOrder)
	api.PUT("/orders/:orderId/status", s.UpdateOrderStatus)
	api.PUT("/orders/:orderId/courier", s.AssignCourier)

	api.GET("/shops/:shopId/balances", s.GetDailyBalances)

	api.GET("/remittances/payable", s.GetPayableRemittances)
	api.POST("/remittances/:remittanceId/paid", s.MarkRemittancePaid)

	api.POST("/couriers/:courierId/cash-transactions", s.RecordCashTransaction)
	api.POST("/cash-transactions/:transactionId/confirm", s.ConfirmCashTransaction)
	api.POST("/couriers/:courierId/shortfalls", s.RecordShortfall)
	api.POST("/shortfalls/:shortfallId/settle", s.SettleShortfall)
	api.GET("/couriers/:courierId/cash-summary", s.GetCourierCashSummary)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shopID, err := kernel.UUIDFromString(req.ShopID)
	if err != nil {
		return badRequest(ctx, "Invalid shop id: "+err.Error())
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}
	reportDate, err := kernel.ReportDateFromString(req.ReportDate)
	if err != nil {
		return badRequest(ctx, "Invalid report date: "+err.Error())
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Amount:   kernel.NewMoney(item.Amount),
		})
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		shopID,
		req.CustomerName,
		req.CustomerPhone,
		req.DeliveryAddress,
		kernel.NewMoney(req.ArticleAmount),
		kernel.NewMoney(req.DeliveryFee),
		kernel.NewMoney(req.ExpeditionFee),
		reportDate,
		items,
		actorID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId - returns one order with
// its items and full audit trail.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(*result))
}

// UpdateOrder handles PUT /api/v1/orders/:orderId - edits order details.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}
	reportDate, err := kernel.ReportDateFromString(req.ReportDate)
	if err != nil {
		return badRequest(ctx, "Invalid report date: "+err.Error())
	}

	// An omitted items field keeps the order's current line items; an empty
	// array replaces them with none.
	var items []commands.ItemInput
	if req.Items != nil {
		items = make([]commands.ItemInput, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, commands.ItemInput{
				Name:     item.Name,
				Quantity: item.Quantity,
				Amount:   kernel.NewMoney(item.Amount),
			})
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID,
		req.CustomerName,
		req.CustomerPhone,
		req.DeliveryAddress,
		kernel.NewMoney(req.ArticleAmount),
		kernel.NewMoney(req.DeliveryFee),
		kernel.NewMoney(req.ExpeditionFee),
		reportDate,
		items,
		actorID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:orderId/status - moves an
// order through its lifecycle, optionally recording the cash received.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}
	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	var amountReceived *kernel.Money
	if req.AmountReceived != nil {
		amount := kernel.NewMoney(*req.AmountReceived)
		amountReceived = &amount
	}

	var paymentStatus *order.PaymentStatus
	if req.PaymentStatus != nil {
		parsed, parseErr := order.PaymentStatusFromString(*req.PaymentStatus)
		if parseErr != nil {
			return badRequest(ctx, "Invalid payment status: "+parseErr.Error())
		}
		paymentStatus = &parsed
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, amountReceived, paymentStatus, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RemoveOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignCourier handles PUT /api/v1/orders/:orderId/courier.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req AssignCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetDailyBalances handles GET /api/v1/shops/:shopId/balances?from=&to= -
// returns one ledger row per day of the period.
func (s *Server) GetDailyBalances(ctx echo.Context) error {
	shopID, err := kernel.UUIDFromString(ctx.Param("shopId"))
	if err != nil {
		return badRequest(ctx, "Invalid shop id: "+err.Error())
	}
	from, err := kernel.ReportDateFromString(ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from date: "+err.Error())
	}
	to, err := kernel.ReportDateFromString(ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to date: "+err.Error())
	}

	query, err := queries.NewGetDailyBalancesQuery(shopID, from, to)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	balances, err := s.getDailyBalancesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := make([]DailyBalanceResponse, len(balances))
	for i, balance := range balances {
		response[i] = DailyBalanceResponse{
			ReportDate:       balance.ReportDate.String(),
			OrdersSent:       balance.OrdersSent,
			OrdersDelivered:  balance.OrdersDelivered,
			RevenueArticles:  balance.RevenueArticles.Decimal(),
			DeliveryFees:     balance.DeliveryFees.Decimal(),
			PackagingFees:    balance.PackagingFees.Decimal(),
			ExpeditionFees:   balance.ExpeditionFees.Decimal(),
			RemittanceAmount: balance.RemittanceAmount.Decimal(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPayableRemittances handles GET /api/v1/remittances/payable?date= -
// lists pending remittances for a day with their net payable amounts.
func (s *Server) GetPayableRemittances(ctx echo.Context) error {
	date, err := kernel.ReportDateFromString(ctx.QueryParam("date"))
	if err != nil {
		return badRequest(ctx, "Invalid date: "+err.Error())
	}

	query, err := queries.NewGetPayableRemittancesQuery(date)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	remittances, err := s.getPayableRemittancesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := make([]PayableRemittanceResponse, len(remittances))
	for i, remittance := range remittances {
		debtIDs := make([]string, len(remittance.PendingDebtIDs))
		for j, debtID := range remittance.PendingDebtIDs {
			debtIDs[j] = debtID.String()
		}

		response[i] = PayableRemittanceResponse{
			ID:             remittance.ID.String(),
			ShopID:         remittance.ShopID.String(),
			ShopName:       remittance.ShopName,
			RemittanceDate: remittance.RemittanceDate.String(),
			GrossAmount:    remittance.GrossAmount.Decimal(),
			PendingDebts:   remittance.PendingDebts.Decimal(),
			NetAmount:      remittance.NetAmount.Decimal(),
			PendingDebtIDs: debtIDs,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkRemittancePaid handles POST /api/v1/remittances/:remittanceId/paid -
// settles a remittance and all pending debts of its shop.
func (s *Server) MarkRemittancePaid(ctx echo.Context) error {
	remittanceID, err := kernel.UUIDFromString(ctx.Param("remittanceId"))
	if err != nil {
		return badRequest(ctx, "Invalid remittance id: "+err.Error())
	}

	var req MarkRemittancePaidRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paidBy, err := kernel.UUIDFromString(req.PaidBy)
	if err != nil {
		return badRequest(ctx, "Invalid payer id: "+err.Error())
	}

	cmd, err := commands.NewMarkRemittancePaidCommand(remittanceID, paidBy)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err := s.markRemittancePaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordCashTransaction handles POST /api/v1/couriers/:courierId/cash-transactions.
func (s *Server) RecordCashTransaction(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	var req RecordCashTransactionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	txType, err := courier.CashTransactionTypeFromString(req.Type)
	if err != nil {
		return badRequest(ctx, "Invalid transaction type: "+err.Error())
	}
	reportDate, err := kernel.ReportDateFromString(req.ReportDate)
	if err != nil {
		return badRequest(ctx, "Invalid report date: "+err.Error())
	}

	transactionID := kernel.NewUUID()

	cmd, err := commands.NewRecordCashTransactionCommand(
		transactionID,
		courierID,
		txType,
		kernel.NewMoney(req.Amount),
		reportDate,
	)
	if err != nil {
		return badRequest(ctx, "Invalid transaction data: "+err.Error())
	}

	if err := s.recordCashTransactionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: transactionID.String()})
}

// ConfirmCashTransaction handles POST /api/v1/cash-transactions/:transactionId/confirm.
func (s *Server) ConfirmCashTransaction(ctx echo.Context) error {
	transactionID, err := kernel.UUIDFromString(ctx.Param("transactionId"))
	if err != nil {
		return badRequest(ctx, "Invalid transaction id: "+err.Error())
	}

	cmd, err := commands.NewConfirmCashTransactionCommand(transactionID)
	if err != nil {
		return badRequest(ctx, "Invalid transaction data: "+err.Error())
	}

	if err := s.confirmCashTransactionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordShortfall handles POST /api/v1/couriers/:courierId/shortfalls.
func (s *Server) RecordShortfall(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	var req RecordShortfallRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reportDate, err := kernel.ReportDateFromString(req.ReportDate)
	if err != nil {
		return badRequest(ctx, "Invalid report date: "+err.Error())
	}

	shortfallID := kernel.NewUUID()

	cmd, err := commands.NewRecordShortfallCommand(
		shortfallID,
		courierID,
		kernel.NewMoney(req.Amount),
		reportDate,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shortfall data: "+err.Error())
	}

	if err := s.recordShortfallHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shortfallID.String()})
}

// SettleShortfall handles POST /api/v1/shortfalls/:shortfallId/settle.
func (s *Server) SettleShortfall(ctx echo.Context) error {
	shortfallID, err := kernel.UUIDFromString(ctx.Param("shortfallId"))
	if err != nil {
		return badRequest(ctx, "Invalid shortfall id: "+err.Error())
	}

	cmd, err := commands.NewSettleShortfallCommand(shortfallID)
	if err != nil {
		return badRequest(ctx, "Invalid shortfall data: "+err.Error())
	}

	if err := s.settleShortfallHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetCourierCashSummary handles GET /api/v1/couriers/:courierId/cash-summary?from=&to=.
func (s *Server) GetCourierCashSummary(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}
	from, err := kernel.ReportDateFromString(ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from date: "+err.Error())
	}
	to, err := kernel.ReportDateFromString(ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to date: "+err.Error())
	}

	query, err := queries.NewGetCourierCashSummaryQuery(courierID, from, to)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	summary, err := s.getCourierCashSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	events := make([]CourierCashEventResponse, len(summary.Events))
	for i, event := range summary.Events {
		events[i] = CourierCashEventResponse{
			Kind:        event.Kind,
			ReferenceID: event.ReferenceID.String(),
			Date:        event.Date.String(),
			Amount:      event.Amount.Decimal(),
			Details:     event.Details,
		}
	}

	return ctx.JSON(http.StatusOK, CourierCashSummaryResponse{
		CourierID:              summary.CourierID.String(),
		From:                   summary.From.String(),
		To:                     summary.To.String(),
		TotalOrdersAmount:      summary.TotalOrdersAmount.Decimal(),
		TotalRemittances:       summary.TotalRemittances.Decimal(),
		TotalExpenses:          summary.TotalExpenses.Decimal(),
		TotalPendingShortfalls: summary.TotalPendingShortfalls.Decimal(),
		AmountExpected:         summary.AmountExpected.Decimal(),
		AmountConfirmed:        summary.AmountConfirmed.Decimal(),
		Events:                 events,
	})
}

func toOrderResponse(result queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItemResponse{
			ID:       item.ID.String(),
			Name:     item.Name,
			Quantity: item.Quantity,
			Amount:   item.Amount.Decimal(),
		}
	}

	history := make([]OrderHistoryResponse, len(result.History))
	for i, entry := range result.History {
		history[i] = OrderHistoryResponse{
			ID:        entry.ID.String(),
			Action:    entry.Action,
			ActorID:   entry.ActorID.String(),
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt,
		}
	}

	var courierID *string
	if result.CourierID != nil {
		id := result.CourierID.String()
		courierID = &id
	}

	return OrderResponse{
		ID:              result.ID.String(),
		ShopID:          result.ShopID.String(),
		CourierID:       courierID,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		DeliveryAddress: result.DeliveryAddress,
		ArticleAmount:   result.ArticleAmount.Decimal(),
		DeliveryFee:     result.DeliveryFee.Decimal(),
		ExpeditionFee:   result.ExpeditionFee.Decimal(),
		AmountReceived:  result.AmountReceived.Decimal(),
		Status:          result.Status,
		PaymentStatus:   result.PaymentStatus,
		ReportDate:      result.ReportDate.String(),
		Items:           items,
		History:         history,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// commandError maps handler failures to HTTP status codes. Anything a
// handler could not locate is a 404; invalid state transitions and
// validation failures are 409 and 400; everything else is a 500.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
