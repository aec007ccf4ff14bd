// Package http exposes the fulfillment pipeline over a JSON API. Handlers
// translate requests into commands and queries; every transition failure
// surfaces as a structured error with a machine-readable code.
package http

import (
	"net/http"
	"time"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/application/usecases/commands"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/application/usecases/queries"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/order"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/worker"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler         commands.PlaceOrderCommandHandler
	dispatchToTrainHandler    commands.DispatchToTrainCommandHandler
	acceptAtStoreHandler      commands.AcceptAtStoreCommandHandler
	assignTruckHandler        commands.AssignTruckCommandHandler
	markDeliveredHandler      commands.MarkDeliveredCommandHandler
	updateWorkingHoursHandler commands.UpdateWorkingHoursCommandHandler

	getCandidateTripsHandler  queries.GetCandidateTripsQueryHandler
	getEligibleWorkersHandler queries.GetEligibleWorkersQueryHandler
	getPendingOrdersHandler   queries.GetPendingOrdersQueryHandler
	getDriverOrdersHandler    queries.GetDriverOrdersQueryHandler
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	dispatchToTrainHandler commands.DispatchToTrainCommandHandler,
	acceptAtStoreHandler commands.AcceptAtStoreCommandHandler,
	assignTruckHandler commands.AssignTruckCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	updateWorkingHoursHandler commands.UpdateWorkingHoursCommandHandler,
	getCandidateTripsHandler queries.GetCandidateTripsQueryHandler,
	getEligibleWorkersHandler queries.GetEligibleWorkersQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getDriverOrdersHandler queries.GetDriverOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:         placeOrderHandler,
		dispatchToTrainHandler:    dispatchToTrainHandler,
		acceptAtStoreHandler:      acceptAtStoreHandler,
		assignTruckHandler:        assignTruckHandler,
		markDeliveredHandler:      markDeliveredHandler,
		updateWorkingHoursHandler: updateWorkingHoursHandler,
		getCandidateTripsHandler:  getCandidateTripsHandler,
		getEligibleWorkersHandler: getEligibleWorkersHandler,
		getPendingOrdersHandler:   getPendingOrdersHandler,
		getDriverOrdersHandler:    getDriverOrdersHandler,
	}
}

// RegisterRoutes wires the API onto the echo instance and installs the
// request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders/pending", s.GetPendingOrders)
	v1.POST("/orders/:orderID/dispatch", s.DispatchOrder)
	v1.POST("/orders/:orderID/accept", s.AcceptOrder)
	v1.POST("/orders/:orderID/assign-truck", s.AssignTruck)
	v1.POST("/orders/:orderID/deliver", s.DeliverOrder)
	v1.PATCH("/workers/:workerID/hours", s.UpdateWorkingHours)
	v1.GET("/trips", s.GetCandidateTrips)
	v1.GET("/workers", s.GetWorkers)
	v1.GET("/drivers/:driverID/orders", s.GetDriverOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return writeBadRequest(ctx, err)
	}

	customerID, err := kernel.NewID(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}
	storeID, err := kernel.NewID(req.StoreID)
	if err != nil {
		return writeError(ctx, err)
	}

	var subCityID kernel.ID
	if req.SubCityID != "" {
		subCityID, err = kernel.NewID(req.SubCityID)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		productID, itemErr := kernel.NewID(itemReq.ProductID)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}

		item, itemErr := order.NewItem(productID, itemReq.Quantity, itemReq.SpaceRate)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}

		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(customerID, storeID, subCityID, req.TotalPrice, items)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse{
		OrderID: result.OrderID,
		Status:  result.Status,
	})
}

// DispatchOrder handles POST /api/v1/orders/:orderID/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := kernel.NewID(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req dispatchRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return writeBadRequest(ctx, err)
	}

	tripID, err := kernel.NewID(req.TripID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDispatchToTrainCommand(orderID, tripID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.dispatchToTrainHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dispatchResponse{
		OrderID:           result.OrderID,
		Status:            result.Status,
		TripID:            result.TripID,
		CapacityUsed:      result.CapacityUsed,
		RemainingCapacity: result.RemainingCapacity,
	})
}

// AcceptOrder handles POST /api/v1/orders/:orderID/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.NewID(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req acceptRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return writeBadRequest(ctx, err)
	}

	storeID, err := kernel.NewID(req.StoreID)
	if err != nil {
		return writeError(ctx, err)
	}
	managerID, err := kernel.NewID(req.ManagerID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptAtStoreCommand(orderID, storeID, managerID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.acceptAtStoreHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		OrderID: result.OrderID,
		Status:  result.Status,
	})
}

// AssignTruck handles POST /api/v1/orders/:orderID/assign-truck.
func (s *Server) AssignTruck(ctx echo.Context) error {
	orderID, err := kernel.NewID(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req assignTruckRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return writeBadRequest(ctx, err)
	}

	truckID, err := kernel.NewID(req.TruckID)
	if err != nil {
		return writeError(ctx, err)
	}
	driverID, err := kernel.NewID(req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}
	assistantID, err := kernel.NewID(req.AssistantID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignTruckCommand(orderID, truckID, driverID, assistantID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.assignTruckHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignTruckResponse{
		OrderID:     result.OrderID,
		Status:      result.Status,
		TruckID:     result.TruckID,
		DriverID:    result.DriverID,
		AssistantID: result.AssistantID,
	})
}

// DeliverOrder handles POST /api/v1/orders/:orderID/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := kernel.NewID(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req deliverRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return writeBadRequest(ctx, err)
	}

	driverID, err := kernel.NewID(req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		OrderID: result.OrderID,
		Status:  result.Status,
	})
}

// UpdateWorkingHours handles PATCH /api/v1/workers/:workerID/hours.
func (s *Server) UpdateWorkingHours(ctx echo.Context) error {
	workerID, err := kernel.NewID(ctx.Param("workerID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateHoursRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateWorkingHoursCommand(workerID, req.Hours)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.updateWorkingHoursHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workerHoursResponse{
		WorkerID:    result.WorkerID,
		WorkedHours: result.WorkedHours,
		CanAssign:   result.CanAssign,
	})
}

// GetCandidateTrips handles GET /api/v1/trips?destination=…&from=….
// The from date defaults to today when omitted.
func (s *Server) GetCandidateTrips(ctx echo.Context) error {
	destination, err := kernel.NewID(ctx.QueryParam("destination"))
	if err != nil {
		return writeError(ctx, err)
	}

	from := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := ctx.QueryParam("from"); raw != "" {
		from, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return writeBadRequest(ctx, err)
		}
	}

	query, err := queries.NewGetCandidateTripsQuery(destination, from)
	if err != nil {
		return writeError(ctx, err)
	}

	trips, err := s.getCandidateTripsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		response = append(response, tripResponse{
			TripID:            t.TripID,
			DestinationStore:  t.DestinationStore,
			DepartureDate:     t.DepartureDate,
			DepartureTime:     t.DepartureTime,
			TotalCapacity:     t.TotalCapacity,
			AvailableCapacity: t.AvailableCapacity,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkers handles GET /api/v1/workers?store=…&role=….
// The optional role parameter narrows the roster; ineligible workers are
// always included with canAssign false.
func (s *Server) GetWorkers(ctx echo.Context) error {
	storeID, err := kernel.NewID(ctx.QueryParam("store"))
	if err != nil {
		return writeError(ctx, err)
	}

	role := worker.RoleUnknown
	if raw := ctx.QueryParam("role"); raw != "" {
		role, err = worker.RoleFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	query, err := queries.NewGetEligibleWorkersQuery(storeID, role)
	if err != nil {
		return writeError(ctx, err)
	}

	workers, err := s.getEligibleWorkersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]workerResponse, 0, len(workers))
	for _, w := range workers {
		response = append(response, workerResponse{
			WorkerID:    w.WorkerID,
			Name:        w.Name,
			Role:        w.Role,
			WorkedHours: w.WorkedHours,
			CanAssign:   w.CanAssign,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.getPendingOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingOrdersQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]pendingOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, pendingOrderResponse{
			OrderID:          o.OrderID,
			StoreID:          o.StoreID,
			OrderedAt:        o.OrderedAt,
			TotalPrice:       o.TotalPrice,
			RequiredCapacity: o.RequiredCapacity,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverOrders handles GET /api/v1/drivers/:driverID/orders.
func (s *Server) GetDriverOrders(ctx echo.Context) error {
	driverID, err := kernel.NewID(ctx.Param("driverID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDriverOrdersQuery(driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getDriverOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]driverOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, driverOrderResponse{
			OrderID:    o.OrderID,
			StoreID:    o.StoreID,
			TruckID:    o.TruckID,
			Status:     o.Status,
			OrderedAt:  o.OrderedAt,
			TotalPrice: o.TotalPrice,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}
