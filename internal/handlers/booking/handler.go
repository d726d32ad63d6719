package booking

import (
	"context"
	"coworking/infras/otel"
	"coworking/internal/domains/booking/model"
	"coworking/internal/domains/booking/model/dto"
	"coworking/internal/domains/booking/service"
	resourceModel "coworking/internal/domains/resource/model"
	resourceService "coworking/internal/domains/resource/service"
	"coworking/shared"
	"coworking/shared/constant"
	"coworking/shared/datetime"
	sharedDto "coworking/shared/dto"
	"coworking/shared/failure"
	"coworking/shared/validator"
	"coworking/transport/http/response"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Booking
	resources resourceService.Resource
	otel      otel.Otel
}

func New(service service.Booking, resources resourceService.Resource, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		resources: resources,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/mine", handler.GetMyBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking books a resource for the authenticated user.
// @Summary Create a new booking
// @Description Book a resource inside business hours. Overlapping bookings are rejected.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings [post]
// @Security BasicAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	start, end, err := req.ToInterval(datetime.Today())
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	username, _ := shared.CurrentUser(ctx)

	booking, err := handler.service.Book(ctx, req.ResourceID, username, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + username)

	res := dto.BookingResponse{}
	res.FromModel(booking, handler.resource(ctx, booking.ResourceID))

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings lists every booking, sorted or filtered by resource.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param sort query string false "Sort key (date, user, resource)"
// @Param resource_id query int false "Filter by resource ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Router /v1/bookings [get]
// @Security BasicAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	query := sharedDto.QueryParams{}
	query.FromRequest(request, false)

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	var bookings []model.Booking

	switch query.SortBy {
	case constant.SortByDate:
		bookings = handler.service.SortedByDate(ctx)
	case constant.SortByUser:
		bookings = handler.service.SortedByUser(ctx)
	case constant.SortByResource:
		bookings = handler.service.SortedByResource(ctx)
	default:
		bookings = handler.service.All(ctx)
	}

	if value := request.URL.Query().Get(constant.RequestParamResourceID); value != "" {
		resourceID, err := shared.ParseID(value)
		if err != nil {
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		bookings = filterByResource(bookings, resourceID)
	}

	handler.respond(ctx, writer, bookings, query)
}

// GetMyBookings lists the authenticated user's bookings.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Router /v1/bookings/mine [get]
// @Security BasicAuth
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	username, _ := shared.CurrentUser(ctx)

	query := sharedDto.QueryParams{}
	query.FromRequest(request, false)

	handler.respond(ctx, writer, handler.service.ListByUser(ctx, username), query)
}

// GetBookingByID retrieves a booking owned by the caller, or any booking for an admin.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BasicAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	username, admin := shared.CurrentUser(ctx)
	if !admin && booking.Username != username {
		response.WithError(writer, failure.Forbidden(fmt.Sprintf("booking %d belongs to another user", id)))

		return
	}

	res := dto.BookingResponse{}
	res.FromModel(booking, handler.resource(ctx, booking.ResourceID))

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteBooking cancels a booking. Users may cancel their own bookings, admins any booking.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BasicAuth
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	username, admin := shared.CurrentUser(ctx)

	if err = handler.service.Cancel(ctx, id, username, admin); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking cancelled by user " + username)

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}

// respond writes one page of bookings. TotalData counts every booking before paging.
func (handler *Handler) respond(ctx context.Context, writer http.ResponseWriter, bookings []model.Booking, query sharedDto.QueryParams) {
	res := dto.GetBookingsResponse{}
	res.FromModels(sharedDto.Paginate(bookings, query), func(id int64) resourceModel.Resource {
		return handler.resource(ctx, id)
	})
	res.TotalData = len(bookings)

	response.WithJSON(writer, http.StatusOK, res)
}

// resource returns the zero Resource when it no longer exists.
func (handler *Handler) resource(ctx context.Context, id int64) resourceModel.Resource {
	resource, _ := handler.resources.Get(ctx, id)

	return resource
}

func filterByResource(bookings []model.Booking, resourceID int64) []model.Booking {
	result := make([]model.Booking, 0, len(bookings))

	for _, b := range bookings {
		if b.ResourceID == resourceID {
			result = append(result, b)
		}
	}

	return result
}
