package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/location-tracker/internal/pkg/httputil"
)

type LocationHandler struct {
	locationSvc LocationService
}

func NewLocationHandler(locationSvc LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

// Current godoc
//
//	@Summary	Current location
//	@Tags		location
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.CurrentLocationResponse
//	@Failure	503	{object}	httputil.ErrorResponse
//	@Router		/location/current [get]
func (h *LocationHandler) Current(c *gin.Context) {
	cur, err := h.locationSvc.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.CurrentLocationFromEntity(cur))
}

// History godoc
//
//	@Summary		Today's location history
//	@Description	Samples recorded since midnight, oldest first
//	@Tags			location
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page		query		int	false	"Page number"	default(1)
//	@Param			per_page	query		int	false	"Items per page"	default(20)
//	@Success		200			{object}	response.HistoryResponse
//	@Failure		400			{object}	httputil.ErrorResponse
//	@Router			/location/history [get]
func (h *LocationHandler) History(c *gin.Context) {
	var req request.HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	samples, info, err := h.locationSvc.History(c.Request.Context(), req.Page, req.PerPage)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.HistoryResponse{
		Samples:    response.SamplesFromEntities(samples),
		Pagination: response.PaginationFromInfo(info),
	})
}

// Summary godoc
//
//	@Summary		Movement summary
//	@Description	Distance, average speed and most active hour for today
//	@Tags			location
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.SummaryResponse
//	@Router			/location/summary [get]
func (h *LocationHandler) Summary(c *gin.Context) {
	summary, err := h.locationSvc.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.SummaryFromAnalytics(summary))
}

// GenerateTestData godoc
//
//	@Summary		Generate test data
//	@Description	Replace today's history with a synthetic random walk
//	@Tags			location
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	response.TestDataResponse
//	@Router			/testdata [post]
func (h *LocationHandler) GenerateTestData(c *gin.Context) {
	samples, err := h.locationSvc.GenerateTestData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.Created(c, response.TestDataResponse{
		Generated: len(samples),
		Samples:   response.SamplesFromEntities(samples),
	})
}
