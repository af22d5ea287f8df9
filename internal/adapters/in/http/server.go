package http

import (
	"context"
	"net/http"

	"logitrack/internal/core/application/usecases/commands"
	"logitrack/internal/core/application/usecases/queries"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/office"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type (
	CreateParcelHandler interface {
		Handle(ctx context.Context, cmd commands.CreateParcelCommand) (*parcel.Parcel, error)
	}
	UpdateParcelStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateParcelStatusCommand) (*parcel.Parcel, error)
	}
	CreateOfficeHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOfficeCommand) (*office.Office, error)
	}
	TrackParcelHandler interface {
		Handle(ctx context.Context, query queries.TrackParcelQuery) (queries.TrackParcelQueryResponse, error)
	}
	GetParcelHandler interface {
		Handle(ctx context.Context, query queries.GetParcelQuery) (queries.ParcelView, error)
	}
	ListParcelsHandler interface {
		Handle(ctx context.Context, query queries.ListParcelsQuery) ([]queries.ListParcelsQueryResponse, error)
	}
	GetParcelReceiptHandler interface {
		Handle(ctx context.Context, query queries.GetParcelReceiptQuery) (queries.GetParcelReceiptQueryResponse, error)
	}
	GetNotificationsHandler interface {
		Handle(ctx context.Context, query queries.GetNotificationsQuery) ([]queries.GetNotificationsQueryResponse, error)
	}
	GetOfficesHandler interface {
		Handle(ctx context.Context, query queries.GetOfficesQuery) ([]queries.GetOfficesQueryResponse, error)
	}
	CountParcelsByStatusHandler interface {
		Handle(
			ctx context.Context,
			query queries.CountParcelsByStatusQuery,
		) (queries.CountParcelsByStatusQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateParcel         CreateParcelHandler
	UpdateParcelStatus   UpdateParcelStatusHandler
	CreateOffice         CreateOfficeHandler
	TrackParcel          TrackParcelHandler
	GetParcel            GetParcelHandler
	ListParcels          ListParcelsHandler
	GetParcelReceipt     GetParcelReceiptHandler
	GetNotifications     GetNotificationsHandler
	GetOffices           GetOfficesHandler
	CountParcelsByStatus CountParcelsByStatusHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	offices  queries.OfficeLookup
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server. Offices resolves the office names
// shown next to office ids in parcel responses.
func NewServer(handlers Handlers, offices queries.OfficeLookup) *Server {
	return &Server{handlers: handlers, offices: offices}
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body servers.NewParcel
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipment, err := shipmentFromRequest(body)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateParcelCommand(shipment)
	if err != nil {
		return writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	p, err := s.handlers.CreateParcel.Handle(reqCtx, cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, parcelResponse(queries.NewParcelView(reqCtx, p, s.offices)))
}

// ListParcels handles GET /api/v1/parcels.
func (s *Server) ListParcels(ctx echo.Context, params servers.ListParcelsParams) error {
	query := queries.NewListParcelsQuery(deref(params.OfficeId), deref(params.Limit))

	list, err := s.handlers.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.ParcelSummary, len(list))
	for i, item := range list {
		response[i] = parcelSummaryResponse(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetParcel handles GET /api/v1/parcels/{parcelId}.
func (s *Server) GetParcel(ctx echo.Context, parcelID servers.ParcelId) error {
	id, err := kernel.UUIDFromBytes(parcelID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetParcelQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.handlers.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, parcelResponse(view))
}

// UpdateParcelStatus handles POST /api/v1/parcels/{parcelId}/status. The
// operator comes from the X-Operator-* headers.
func (s *Server) UpdateParcelStatus(ctx echo.Context, parcelID servers.ParcelId) error {
	var body servers.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	op, err := operatorFromRequest(ctx.Request())
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(parcelID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	target, err := parcel.StatusFromString(string(body.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(id, target, deref(body.Note), op)
	if err != nil {
		return writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	p, err := s.handlers.UpdateParcelStatus.Handle(reqCtx, cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelResponse(queries.NewParcelView(reqCtx, p, s.offices)))
}

// GetParcelReceipt handles GET /api/v1/parcels/{parcelId}/receipt.
func (s *Server) GetParcelReceipt(ctx echo.Context, parcelID servers.ParcelId) error {
	id, err := kernel.UUIDFromBytes(parcelID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetParcelReceiptQuery(id, ctx.Request().Header.Get(HeaderOperatorName))
	if err != nil {
		return writeError(ctx, err)
	}

	receipt, err := s.handlers.GetParcelReceipt.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, receiptResponse(receipt))
}

// TrackParcel handles GET /api/v1/tracking/{trackingId}.
func (s *Server) TrackParcel(ctx echo.Context, trackingID string) error {
	query, err := queries.NewTrackParcelQuery(trackingID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.handlers.TrackParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	timeline := make([]servers.Milestone, len(resp.Timeline))
	for i, m := range resp.Timeline {
		timeline[i] = servers.Milestone{
			Label:     m.Label,
			Status:    servers.Status(m.Status.String()),
			Completed: m.Completed,
			Current:   m.Current,
			Timestamp: m.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Tracking{
		Parcel:   parcelResponse(resp.Parcel),
		Timeline: timeline,
	})
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context, params servers.ListNotificationsParams) error {
	query := queries.NewGetNotificationsQuery(deref(params.TrackingId), deref(params.Limit))

	list, err := s.handlers.GetNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Notification, len(list))
	for i, n := range list {
		response[i] = servers.Notification{
			Id:         n.ID.Bytes(),
			ParcelId:   n.ParcelID.Bytes(),
			TrackingId: n.TrackingID,
			Recipient:  servers.NotificationRecipient(n.Recipient),
			Phone:      n.Phone,
			Message:    n.Message,
			Timestamp:  n.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListOffices handles GET /api/v1/offices.
func (s *Server) ListOffices(ctx echo.Context) error {
	list, err := s.handlers.GetOffices.Handle(ctx.Request().Context(), queries.NewGetOfficesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Office, len(list))
	for i, o := range list {
		response[i] = servers.Office{Id: o.ID, Name: o.Name, City: o.City, Code: o.Code}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOffice handles POST /api/v1/offices.
func (s *Server) CreateOffice(ctx echo.Context) error {
	var body servers.Office
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOfficeCommand(body.Id, body.Name, body.City, body.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.handlers.CreateOffice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Office{Id: o.ID(), Name: o.Name(), City: o.City(), Code: o.Code()})
}

// GetOfficeStats handles GET /api/v1/offices/{officeId}/stats.
func (s *Server) GetOfficeStats(ctx echo.Context, officeID string) error {
	counts, err := s.handlers.CountParcelsByStatus.Handle(
		ctx.Request().Context(),
		queries.NewCountParcelsByStatusQuery(officeID),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OfficeStats{
		OfficeId:  officeID,
		Total:     counts.Total,
		Booked:    counts.Count(parcel.Booked),
		InTransit: counts.Count(parcel.InTransit),
		Arrived:   counts.Count(parcel.Arrived),
		Delivered: counts.Count(parcel.Delivered),
	})
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
