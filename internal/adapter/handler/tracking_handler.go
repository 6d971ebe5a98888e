package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/location-tracker/internal/pkg/httputil"
)

type TrackingHandler struct {
	trackingSvc TrackingService
}

func NewTrackingHandler(trackingSvc TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingSvc: trackingSvc}
}

// Get godoc
//
//	@Summary	Tracking state
//	@Tags		tracking
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.TrackingResponse
//	@Router		/tracking [get]
func (h *TrackingHandler) Get(c *gin.Context) {
	state, err := h.trackingSvc.Tracking(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.TrackingFromState(state))
}

// Set godoc
//
//	@Summary	Start or stop tracking
//	@Tags		tracking
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		request.SetTrackingRequest	true	"Desired state"
//	@Success	200		{object}	response.TrackingResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Router		/tracking [put]
func (h *TrackingHandler) Set(c *gin.Context) {
	var req request.SetTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	state, err := h.trackingSvc.SetTracking(c.Request.Context(), *req.Tracking)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.TrackingFromState(state))
}
