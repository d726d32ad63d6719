package resource

import (
	"context"
	"coworking/infras/otel"
	bookingDto "coworking/internal/domains/booking/model/dto"
	bookingService "coworking/internal/domains/booking/service"
	"coworking/internal/domains/resource/model"
	"coworking/internal/domains/resource/model/dto"
	"coworking/internal/domains/resource/service"
	"coworking/shared"
	"coworking/shared/constant"
	"coworking/shared/datetime"
	"coworking/shared/failure"
	"coworking/shared/validator"
	"coworking/transport/http/response"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Resource
	bookings bookingService.Booking
	otel     otel.Otel
}

func New(service service.Resource, bookings bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		bookings: bookings,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/resources", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetResources)
		routerGroup.Post("/", handler.CreateResource)
		routerGroup.Get("/{id}", handler.GetResourceByID)
		routerGroup.Patch("/{id}", handler.UpdateResource)
		routerGroup.Delete("/{id}", handler.DeleteResource)
		routerGroup.Get("/{id}/slots", handler.GetSlots)
		routerGroup.Get("/{id}/availability", handler.GetAvailability)
	})
}

// GetResources lists every resource by id.
// @Summary Get all resources
// @Tags Resource
// @Produce json
// @Success 200 {object} response.Data[dto.GetResourcesResponse] "List of resources"
// @Router /v1/resources [get]
// @Security BasicAuth
func (handler *Handler) GetResources(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResources")
	defer scope.End()

	res := dto.GetResourcesResponse{}
	res.FromModels(handler.service.Sorted(ctx))

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateResource handles the creation of a new resource.
// @Summary Create a resource
// @Tags Resource
// @Accept json
// @Produce json
// @Param request body dto.CreateResourceRequest true "Create Resource Request"
// @Success 201 {object} response.Data[dto.ResourceResponse] "Created resource"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/resources [post]
// @Security BasicAuth
func (handler *Handler) CreateResource(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateResource")
	defer scope.End()

	req := dto.CreateResourceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	resource, err := handler.service.Add(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create resource")

		response.WithError(writer, err)

		return
	}

	username, _ := shared.CurrentUser(ctx)
	scope.AddEvent("Resource created successfully by user " + username)

	res := dto.ResourceResponse{}
	res.FromModel(resource)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetResourceByID retrieves a resource by its ID.
// @Summary Get a resource by ID
// @Tags Resource
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} response.Data[dto.ResourceResponse] "Resource details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/resources/{id} [get]
// @Security BasicAuth
func (handler *Handler) GetResourceByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResourceByID")
	defer scope.End()

	resource, err := handler.lookup(ctx, request)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	scope.AddEvent(fmt.Sprintf("Resource %d retrieved", resource.ID))

	res := dto.ResourceResponse{}
	res.FromModel(resource)

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateResource renames or retypes a resource.
// @Summary Update a resource
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path int true "Resource ID"
// @Param request body dto.UpdateResourceRequest true "Update Resource Request"
// @Success 200 {object} response.Data[dto.ResourceResponse] "Updated resource"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/resources/{id} [patch]
// @Security BasicAuth
func (handler *Handler) UpdateResource(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateResource")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.UpdateResourceRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	resource, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update resource")

		response.WithError(writer, err)

		return
	}

	res := dto.ResourceResponse{}
	res.FromModel(resource)

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteResource removes a resource that has no bookings.
// @Summary Delete a resource
// @Tags Resource
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} response.Message "Resource deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/resources/{id} [delete]
// @Security BasicAuth
func (handler *Handler) DeleteResource(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteResource")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	deleted, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete resource")

		response.WithError(writer, err)

		return
	}

	if !deleted {
		response.WithError(writer, failure.NotFound(fmt.Sprintf("resource %d not found", id)))

		return
	}

	response.WithMessage(writer, http.StatusOK, "Resource deleted successfully")
}

// GetSlots lists the free slots of a resource on a date.
// @Summary Available slots
// @Tags Resource
// @Produce json
// @Param id path int true "Resource ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[bookingDto.GetSlotsResponse] "Free slots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/resources/{id}/slots [get]
// @Security BasicAuth
func (handler *Handler) GetSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	resource, err := handler.lookup(ctx, request)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	value := request.URL.Query().Get(constant.RequestParamDate)
	if err = validator.ValidateVar(value, "required,date"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	date, _ := datetime.ParseDate(value)

	res := bookingDto.GetSlotsResponse{}
	res.FromModels(resource.ID, date, handler.bookings.AvailableSlots(ctx, resource.ID, date))

	response.WithJSON(writer, http.StatusOK, res)
}

// GetAvailability tells whether an interval on a resource is free.
// @Summary Interval availability
// @Tags Resource
// @Produce json
// @Param id path int true "Resource ID"
// @Param start query string true "Start (YYYY-MM-DD HH:MM)"
// @Param end query string true "End (YYYY-MM-DD HH:MM)"
// @Success 200 {object} response.Data[bookingDto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/resources/{id}/availability [get]
// @Security BasicAuth
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	resource, err := handler.lookup(ctx, request)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	query := request.URL.Query()
	startValue, endValue := query.Get(constant.RequestParamStart), query.Get(constant.RequestParamEnd)

	for _, value := range []string{startValue, endValue} {
		if err = validator.ValidateVar(value, "required,timestamp"); err != nil {
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}
	}

	start, _ := datetime.ParseDateTime(startValue)
	end, _ := datetime.ParseDateTime(endValue)

	if !end.After(start) {
		response.WithError(writer, failure.InvalidInterval())

		return
	}

	response.WithJSON(writer, http.StatusOK, bookingDto.AvailabilityResponse{
		ResourceID: resource.ID,
		StartTime:  datetime.FormatDateTime(start),
		EndTime:    datetime.FormatDateTime(end),
		Available:  handler.bookings.IsAvailable(ctx, resource.ID, start, end),
	})
}

func (handler *Handler) lookup(ctx context.Context, request *http.Request) (model.Resource, error) {
	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		return model.Resource{}, err
	}

	resource, ok := handler.service.Get(ctx, id)
	if !ok {
		return resource, failure.NotFound(fmt.Sprintf("resource %d not found", id)) //nolint:wrapcheck
	}

	return resource, nil
}
