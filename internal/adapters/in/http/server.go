// Package http exposes the picking API over Echo. The server translates HTTP
// requests into commands and queries and maps domain errors onto status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"picking/internal/core/application/usecases/commands"
	"picking/internal/core/application/usecases/queries"
	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/core/domain/services"
	"picking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the picking HTTP API. It coordinates between HTTP
// handlers and application use cases.
type Server struct {
	createListHandler   commands.CreatePickingListCommandHandler
	assignHandler       commands.AssignListCommandHandler
	startHandler        commands.StartPickingCommandHandler
	confirmItemHandler  commands.ConfirmItemCommandHandler
	reportIssueHandler  commands.ReportIssueCommandHandler
	completeHandler     commands.CompletePickingCommandHandler
	cancelHandler       commands.CancelListCommandHandler
	getListHandler      queries.GetPickingListQueryHandler
	getByStatusHandler  queries.GetListsByStatusQueryHandler
	getProgressHandler  queries.GetProgressQueryHandler
	getNextItemHandler  queries.GetNextItemQueryHandler
	optimizer           services.RouteOptimizer
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createListHandler commands.CreatePickingListCommandHandler,
	assignHandler commands.AssignListCommandHandler,
	startHandler commands.StartPickingCommandHandler,
	confirmItemHandler commands.ConfirmItemCommandHandler,
	reportIssueHandler commands.ReportIssueCommandHandler,
	completeHandler commands.CompletePickingCommandHandler,
	cancelHandler commands.CancelListCommandHandler,
	getListHandler queries.GetPickingListQueryHandler,
	getByStatusHandler queries.GetListsByStatusQueryHandler,
	getProgressHandler queries.GetProgressQueryHandler,
	getNextItemHandler queries.GetNextItemQueryHandler,
	optimizer services.RouteOptimizer,
) *Server {
	return &Server{
		createListHandler:  createListHandler,
		assignHandler:      assignHandler,
		startHandler:       startHandler,
		confirmItemHandler: confirmItemHandler,
		reportIssueHandler: reportIssueHandler,
		completeHandler:    completeHandler,
		cancelHandler:      cancelHandler,
		getListHandler:     getListHandler,
		getByStatusHandler: getByStatusHandler,
		getProgressHandler: getProgressHandler,
		getNextItemHandler: getNextItemHandler,
		optimizer:          optimizer,
	}
}

// RegisterRoutes mounts the picking API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/picking-lists", s.CreatePickingList)
	v1.GET("/picking-lists", s.GetPickingLists)
	v1.GET("/picking-lists/:listId", s.GetPickingList)
	v1.POST("/picking-lists/:listId/assign", s.AssignList)
	v1.POST("/picking-lists/:listId/start", s.StartPicking)
	v1.POST("/picking-lists/:listId/complete", s.CompletePicking)
	v1.POST("/picking-lists/:listId/cancel", s.CancelList)
	v1.POST("/picking-lists/:listId/items/:itemId/confirm", s.ConfirmItem)
	v1.POST("/picking-lists/:listId/items/:itemId/issue", s.ReportIssue)
	v1.GET("/picking-lists/:listId/progress", s.GetProgress)
	v1.GET("/picking-lists/:listId/next-item", s.GetNextItem)
	v1.POST("/routes/optimize", s.OptimizeRoute)
}

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is one order line within a create request.
type OrderLineRequest struct {
	SKU         string `json:"sku"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// OrderRequest is one order within a create request.
type OrderRequest struct {
	OrderNumber string             `json:"orderNumber"`
	Lines       []OrderLineRequest `json:"lines"`
}

// CreatePickingListRequest is the body of POST /picking-lists.
type CreatePickingListRequest struct {
	Warehouse   string         `json:"warehouse"`
	PickingType string         `json:"pickingType"`
	Priority    int            `json:"priority"`
	Orders      []OrderRequest `json:"orders"`
	Zones       []string       `json:"zones"`
	AssignTo    string         `json:"assignTo"`
}

// CreatePickingListResponse is the body returned on successful creation.
type CreatePickingListResponse struct {
	ID string `json:"id"`
}

// WorkerRequest carries the acting worker for assign, start and complete.
type WorkerRequest struct {
	Worker string `json:"worker"`
}

// ConfirmItemRequest is the body of an item confirmation.
type ConfirmItemRequest struct {
	PickedQty   int    `json:"pickedQty"`
	BarcodeScan string `json:"barcodeScan"`
	ConfirmedBy string `json:"confirmedBy"`
}

// ReportIssueRequest is the body of an item issue report.
type ReportIssueRequest struct {
	IssueType  string `json:"issueType"`
	Note       string `json:"note"`
	ReportedBy string `json:"reportedBy"`
}

// PickingItemView is the JSON shape of one item on a picking list.
type PickingItemView struct {
	ID             string     `json:"id"`
	SKU            string     `json:"sku"`
	ProductName    string     `json:"productName"`
	OrderNumber    string     `json:"orderNumber"`
	LocationCode   string     `json:"locationCode"`
	Zone           string     `json:"zone"`
	SequenceNumber int        `json:"sequenceNumber"`
	RequiredQty    int        `json:"requiredQty"`
	PickedQty      int        `json:"pickedQty"`
	Status         string     `json:"status"`
	IssueType      string     `json:"issueType,omitempty"`
	IssueNote      string     `json:"issueNote,omitempty"`
	ConfirmedBy    string     `json:"confirmedBy,omitempty"`
	ConfirmedAt    *time.Time `json:"confirmedAt,omitempty"`
}

// PickingListView is the JSON shape of a full picking list.
type PickingListView struct {
	ID               string            `json:"id"`
	ListNumber       string            `json:"listNumber"`
	Warehouse        string            `json:"warehouse"`
	PickingType      string            `json:"pickingType"`
	Priority         int               `json:"priority"`
	Status           string            `json:"status"`
	AssignedTo       string            `json:"assignedTo,omitempty"`
	EstimatedMinutes float64           `json:"estimatedMinutes"`
	ActualMinutes    *int              `json:"actualMinutes,omitempty"`
	StartedAt        *time.Time        `json:"startedAt,omitempty"`
	CompletedAt      *time.Time        `json:"completedAt,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	Items            []PickingItemView `json:"items"`
}

// PickingListSummaryView is the JSON shape of one row on the status board.
type PickingListSummaryView struct {
	ID          string    `json:"id"`
	ListNumber  string    `json:"listNumber"`
	Warehouse   string    `json:"warehouse"`
	PickingType string    `json:"pickingType"`
	Priority    int       `json:"priority"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	ItemCount   int       `json:"itemCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProgressView is the JSON shape of a list's picking progress.
type ProgressView struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Remaining  int `json:"remaining"`
	Percentage int `json:"percentage"`
}

func toItemView(item queries.PickingItemResponse) PickingItemView {
	return PickingItemView{
		ID:             item.ID.String(),
		SKU:            item.SKU,
		ProductName:    item.ProductName,
		OrderNumber:    item.OrderNumber,
		LocationCode:   item.LocationCode,
		Zone:           item.Zone,
		SequenceNumber: item.SequenceNumber,
		RequiredQty:    item.RequiredQty,
		PickedQty:      item.PickedQty,
		Status:         item.Status,
		IssueType:      item.IssueType,
		IssueNote:      item.IssueNote,
		ConfirmedBy:    item.ConfirmedBy,
		ConfirmedAt:    item.ConfirmedAt,
	}
}

// CreatePickingList handles POST /api/v1/picking-lists.
// Single picking consolidates exactly one order; batch and wave picking
// require at least two.
func (s *Server) CreatePickingList(ctx echo.Context) error {
	var req CreatePickingListRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pickingType, err := pickinglist.PickingTypeFromString(req.PickingType)
	if err != nil {
		return writeError(ctx, err)
	}

	if pickingType == pickinglist.TypeSingle && len(req.Orders) != 1 {
		return badRequest(ctx, "Single picking consolidates exactly one order")
	}
	if (pickingType == pickinglist.TypeBatch || pickingType == pickinglist.TypeWave) && len(req.Orders) < 2 {
		return badRequest(ctx, "Batch and wave picking require at least two orders")
	}

	orders := make([]commands.OrderToPick, 0, len(req.Orders))
	for _, o := range req.Orders {
		lines := make([]commands.OrderLineToPick, 0, len(o.Lines))
		for _, l := range o.Lines {
			lines = append(lines, commands.OrderLineToPick{
				SKU:         l.SKU,
				ProductName: l.ProductName,
				Quantity:    l.Quantity,
			})
		}
		orders = append(orders, commands.OrderToPick{OrderNumber: o.OrderNumber, Lines: lines})
	}

	zones := make([]kernel.Zone, 0, len(req.Zones))
	for _, z := range req.Zones {
		if len(z) != 1 {
			return badRequest(ctx, "Zones must be single letters A..Z")
		}
		zones = append(zones, kernel.Zone(z[0]))
	}

	listID := kernel.NewUUID()
	cmd, err := commands.NewCreatePickingListCommand(
		listID, req.Warehouse, pickingType, pickinglist.Priority(req.Priority),
		orders, zones, req.AssignTo,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createListHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatePickingListResponse{ID: listID.String()})
}

// GetPickingLists handles GET /api/v1/picking-lists?warehouse=&status=.
func (s *Server) GetPickingLists(ctx echo.Context) error {
	query, err := queries.NewGetListsByStatusQuery(
		ctx.QueryParam("warehouse"), ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	lists, err := s.getByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PickingListSummaryView, 0, len(lists))
	for _, list := range lists {
		response = append(response, PickingListSummaryView{
			ID:          list.ID.String(),
			ListNumber:  list.ListNumber,
			Warehouse:   list.Warehouse,
			PickingType: list.PickingType,
			Priority:    list.Priority,
			Status:      list.Status,
			AssignedTo:  list.AssignedTo,
			ItemCount:   list.ItemCount,
			CreatedAt:   list.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPickingList handles GET /api/v1/picking-lists/:listId.
func (s *Server) GetPickingList(ctx echo.Context) error {
	listID, err := parseUUIDParam(ctx, "listId")
	if err != nil {
		return badRequest(ctx, "Invalid list id")
	}

	query, err := queries.NewGetPickingListQuery(listID)
	if err != nil {
		return writeError(ctx, err)
	}

	list, err := s.getListHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]PickingItemView, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, toItemView(item))
	}

	return ctx.JSON(http.StatusOK, PickingListView{
		ID:               list.ID.String(),
		ListNumber:       list.ListNumber,
		Warehouse:        list.Warehouse,
		PickingType:      list.PickingType,
		Priority:         list.Priority,
		Status:           list.Status,
		AssignedTo:       list.AssignedTo,
		EstimatedMinutes: list.EstimatedMinutes,
		ActualMinutes:    list.ActualMinutes,
		StartedAt:        list.StartedAt,
		CompletedAt:      list.CompletedAt,
		CreatedAt:        list.CreatedAt,
		Items:            items,
	})
}

// AssignList handles POST /api/v1/picking-lists/:listId/assign.
func (s *Server) AssignList(ctx echo.Context) error {
	listID, err := parseUUIDParam(ctx, "listId")
	if err != nil {
		return badRequest(ctx, "Invalid list id")
	}

	var req WorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignListCommand(listID, req.Worker)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartPicking handles POST /api/v1/picking-lists/:listId/start.
func (s *Server) StartPicking(ctx echo.Context) error {
	listID, err := parseUUIDParam(ctx, "listId")
	if err != nil {
		return badRequest(ctx, "Invalid list id")
	}

	var req WorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartPickingCommand(listID, req.Worker)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.startHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletePicking handles POST /api/v1/picking-lists/:listId/complete.
func (s *Server) CompletePicking(ctx echo.Context) error {
	listID, err := parseUUIDParam(ctx, "listId")
	if err != nil {
		return badRequest(ctx, "Invalid list id")
	}

	var req WorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompletePickingCommand(listID, req.Worker)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.completeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelList handles POST /api/v1/picking-lists/:listId/cancel.
func (s *Server) CancelList(ctx echo.Context) error {
	listID, err := parseUUIDParam(ctx, "listId")
	if err != nil {
		return badRequest(ctx, "Invalid list id")
	}

	cmd, err := commands.NewCancelListCommand(listID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmItem handles POST /api/v1/picking-lists/:listId/items/:itemId/confirm.
func (s *Server) ConfirmItem(ctx echo.Context) error {
	listID, err := parseUUIDParam(ctx, "listId")
	if err != nil {
		return badRequest(ctx, "Invalid list id")
	}
	itemID, err := parseUUIDParam(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var req ConfirmItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmItemCommand(listID, itemID, req.PickedQty, req.BarcodeScan, req.ConfirmedBy)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.confirmItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportIssue handles POST /api/v1/picking-lists/:listId/items/:itemId/issue.
func (s *Server) ReportIssue(ctx echo.Context) error {
	listID, err := parseUUIDParam(ctx, "listId")
	if err != nil {
		return badRequest(ctx, "Invalid list id")
	}
	itemID, err := parseUUIDParam(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var req ReportIssueRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	issueType, err := pickinglist.IssueTypeFromString(req.IssueType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReportIssueCommand(listID, itemID, issueType, req.Note, req.ReportedBy)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.reportIssueHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProgress handles GET /api/v1/picking-lists/:listId/progress.
func (s *Server) GetProgress(ctx echo.Context) error {
	listID, err := parseUUIDParam(ctx, "listId")
	if err != nil {
		return badRequest(ctx, "Invalid list id")
	}

	query, err := queries.NewGetProgressQuery(listID)
	if err != nil {
		return writeError(ctx, err)
	}

	progress, err := s.getProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProgressView{
		Total:      progress.Total,
		Completed:  progress.Completed,
		Remaining:  progress.Remaining,
		Percentage: progress.Percentage,
	})
}

// GetNextItem handles GET /api/v1/picking-lists/:listId/next-item.
// Returns 204 when every item on the list is resolved.
func (s *Server) GetNextItem(ctx echo.Context) error {
	listID, err := parseUUIDParam(ctx, "listId")
	if err != nil {
		return badRequest(ctx, "Invalid list id")
	}

	query, err := queries.NewGetNextItemQuery(listID)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.getNextItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	if item == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	view := toItemView(*item)
	return ctx.JSON(http.StatusOK, view)
}

// LocationRequest addresses a storage cell, optionally with floor-plan
// coordinates. X and Y must come together or not at all.
type LocationRequest struct {
	Zone  string   `json:"zone"`
	Aisle int      `json:"aisle"`
	Shelf int      `json:"shelf"`
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
}

// RouteItemRequest is one pick target in a route optimization request.
type RouteItemRequest struct {
	SKU         string          `json:"sku"`
	ProductName string          `json:"productName"`
	OrderNumber string          `json:"orderNumber"`
	Quantity    int             `json:"quantity"`
	Location    LocationRequest `json:"location"`
}

// OptimizeRouteRequest is the body of POST /routes/optimize.
type OptimizeRouteRequest struct {
	Algorithm       string             `json:"algorithm"`
	StartLocation   *LocationRequest   `json:"startLocation"`
	EndLocation     *LocationRequest   `json:"endLocation"`
	WalkingSpeedMps float64            `json:"walkingSpeedMps"`
	PickTimeSeconds float64            `json:"pickTimeSeconds"`
	Items           []RouteItemRequest `json:"items"`
}

// RouteItemResponse is one ordered stop in an optimized route.
type RouteItemResponse struct {
	SKU            string `json:"sku"`
	ProductName    string `json:"productName"`
	OrderNumber    string `json:"orderNumber"`
	Quantity       int    `json:"quantity"`
	LocationCode   string `json:"locationCode"`
	SequenceNumber int    `json:"sequenceNumber"`
}

// OptimizeRouteResponse is the body returned by POST /routes/optimize.
type OptimizeRouteResponse struct {
	Items            []RouteItemResponse `json:"items"`
	TotalDistance    float64             `json:"totalDistance"`
	EstimatedMinutes float64             `json:"estimatedMinutes"`
	Algorithm        string              `json:"algorithm"`
}

// OptimizeRoute handles POST /api/v1/routes/optimize. It runs the route
// optimizer on caller-supplied targets without touching any stored list,
// letting planners preview a route before creating it.
func (s *Server) OptimizeRoute(ctx echo.Context) error {
	var req OptimizeRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	targets := make([]services.PickTarget, 0, len(req.Items))
	for _, item := range req.Items {
		loc, err := toLocation(item.Location)
		if err != nil {
			return writeError(ctx, err)
		}
		targets = append(targets, services.PickTarget{
			SKU:         item.SKU,
			ProductName: item.ProductName,
			OrderNumber: item.OrderNumber,
			Quantity:    item.Quantity,
			Location:    loc,
		})
	}

	opts := services.RouteOptions{
		Algorithm:       services.Algorithm(req.Algorithm),
		WalkingSpeedMps: req.WalkingSpeedMps,
		PickTimeSeconds: req.PickTimeSeconds,
	}
	if req.StartLocation != nil {
		start, err := toLocation(*req.StartLocation)
		if err != nil {
			return writeError(ctx, err)
		}
		opts.StartLocation = &start
	}
	if req.EndLocation != nil {
		end, err := toLocation(*req.EndLocation)
		if err != nil {
			return writeError(ctx, err)
		}
		opts.EndLocation = &end
	}

	route, err := s.optimizer.Optimize(targets, opts)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]RouteItemResponse, 0, len(route.OrderedItems))
	for i, target := range route.OrderedItems {
		items = append(items, RouteItemResponse{
			SKU:            target.SKU,
			ProductName:    target.ProductName,
			OrderNumber:    target.OrderNumber,
			Quantity:       target.Quantity,
			LocationCode:   target.Location.Code(),
			SequenceNumber: i + 1,
		})
	}

	return ctx.JSON(http.StatusOK, OptimizeRouteResponse{
		Items:            items,
		TotalDistance:    route.TotalDistance,
		EstimatedMinutes: route.EstimatedMinutes,
		Algorithm:        string(route.Algorithm),
	})
}

// toLocation converts a location payload to a kernel location.
func toLocation(req LocationRequest) (kernel.Location, error) {
	if len(req.Zone) != 1 {
		return kernel.Location{}, errs.NewValueIsInvalidError("zone")
	}

	if req.X != nil && req.Y != nil {
		return kernel.NewLocationWithCoordinates(kernel.Zone(req.Zone[0]), req.Aisle, req.Shelf, *req.X, *req.Y)
	}
	return kernel.NewLocation(kernel.Zone(req.Zone[0]), req.Aisle, req.Shelf)
}

// parseUUIDParam parses a UUID path parameter.
func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// badRequest writes a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps a domain error onto an HTTP status code. Unrecognized errors
// become 500 without leaking internals.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrLocationUnresolved):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrExternalDependency):
		status = http.StatusBadGateway
	}

	message := "Internal server error"
	if status != http.StatusInternalServerError {
		message = err.Error()
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}
