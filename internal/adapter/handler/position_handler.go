package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/positioning"
	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/pkg/httputil"
)

var deviceErrors = map[string]error{
	"permission_denied":    domain.ErrPermissionDenied,
	"timeout":              domain.ErrPositionTimeout,
	"position_unavailable": domain.ErrPositionUnavailable,
}

type PositionHandler struct {
	feed PositionFeed
}

// NewPositionHandler accepts a nil feed when positions come from another
// source; pushes are then rejected.
func NewPositionHandler(feed PositionFeed) *PositionHandler {
	return &PositionHandler{feed: feed}
}

// Push godoc
//
//	@Summary		Report a device position
//	@Description	Deliver a fix, or a positioning error, from the user's device
//	@Tags			positions
//	@Accept			json
//	@Security		BearerAuth
//	@Param			request	body	request.PushPositionRequest	true	"Fix or error"
//	@Success		202
//	@Failure		400	{object}	httputil.ErrorResponse
//	@Failure		409	{object}	httputil.ErrorResponse	"Device positions are disabled"
//	@Router			/positions [post]
func (h *PositionHandler) Push(c *gin.Context) {
	if h.feed == nil {
		httputil.ErrorWithCode(c, http.StatusConflict, "FEED_DISABLED", "device positions are not accepted by this tracker")
		return
	}

	var req request.PushPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	if req.Error != "" {
		h.feed.Fail(deviceErrors[req.Error])
		c.Status(http.StatusAccepted)
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		httputil.ValidationError(c, errors.New("latitude and longitude are required"))
		return
	}

	fix := positioning.Fix{
		Lat:      *req.Latitude,
		Lng:      *req.Longitude,
		Accuracy: req.Accuracy,
	}
	if req.Timestamp != nil {
		fix.Timestamp = *req.Timestamp
	}

	if err := h.feed.Push(fix); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}
