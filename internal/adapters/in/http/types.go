package http

import "time"

// Request bodies. Validation tags are enforced by the echo validator before
// a command is built; the command constructors re-check the same rules.

type placeOrderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	SpaceRate float64 `json:"spaceRate" validate:"gte=0"`
}

type placeOrderRequest struct {
	CustomerID string                  `json:"customerId" validate:"required"`
	StoreID    string                  `json:"storeId" validate:"required"`
	SubCityID  string                  `json:"subCityId"`
	TotalPrice float64                 `json:"totalPrice" validate:"gte=0"`
	Items      []placeOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type dispatchRequest struct {
	TripID string `json:"tripId" validate:"required"`
}

type acceptRequest struct {
	StoreID   string `json:"storeId" validate:"required"`
	ManagerID string `json:"managerId" validate:"required"`
}

type assignTruckRequest struct {
	TruckID     string `json:"truckId" validate:"required"`
	DriverID    string `json:"driverId" validate:"required"`
	AssistantID string `json:"assistantId" validate:"required"`
}

type deliverRequest struct {
	DriverID string `json:"driverId" validate:"required"`
}

type updateHoursRequest struct {
	Hours float64 `json:"hours" validate:"gte=0"`
}

// Response bodies.

type orderResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type dispatchResponse struct {
	OrderID           string  `json:"orderId"`
	Status            string  `json:"status"`
	TripID            string  `json:"tripId"`
	CapacityUsed      float64 `json:"capacityUsed"`
	RemainingCapacity float64 `json:"remainingCapacity"`
}

type assignTruckResponse struct {
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	TruckID     string `json:"truckId"`
	DriverID    string `json:"driverId"`
	AssistantID string `json:"assistantId"`
}

type workerHoursResponse struct {
	WorkerID    string  `json:"workerId"`
	WorkedHours float64 `json:"workedHours"`
	CanAssign   bool    `json:"canAssign"`
}

type tripResponse struct {
	TripID            string    `json:"tripId"`
	DestinationStore  string    `json:"destinationStore"`
	DepartureDate     time.Time `json:"departureDate"`
	DepartureTime     string    `json:"departureTime"`
	TotalCapacity     float64   `json:"totalCapacity"`
	AvailableCapacity float64   `json:"availableCapacity"`
}

type workerResponse struct {
	WorkerID    string  `json:"workerId"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	WorkedHours float64 `json:"workedHours"`
	CanAssign   bool    `json:"canAssign"`
}

type pendingOrderResponse struct {
	OrderID          string    `json:"orderId"`
	StoreID          string    `json:"storeId"`
	OrderedAt        time.Time `json:"orderedAt"`
	TotalPrice       float64   `json:"totalPrice"`
	RequiredCapacity float64   `json:"requiredCapacity"`
}

type driverOrderResponse struct {
	OrderID    string    `json:"orderId"`
	StoreID    string    `json:"storeId"`
	TruckID    string    `json:"truckId,omitempty"`
	Status     string    `json:"status"`
	OrderedAt  time.Time `json:"orderedAt"`
	TotalPrice float64   `json:"totalPrice"`
}

// errorResponse is the structured error body. Code is a stable machine
// string; the optional typed fields carry the details a client needs to
// react without parsing the message.
type errorResponse struct {
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	Actual    string   `json:"actualStatus,omitempty"`
	Expected  string   `json:"expectedStatus,omitempty"`
	Required  *float64 `json:"required,omitempty"`
	Available *float64 `json:"available,omitempty"`
}
