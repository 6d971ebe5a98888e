package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/pkg/httputil"
)

type MapHandler struct {
	mapSvc MapService
}

func NewMapHandler(mapSvc MapService) *MapHandler {
	return &MapHandler{mapSvc: mapSvc}
}

// Providers godoc
//
//	@Summary		Map provider health
//	@Description	Status of each provider and the current selection
//	@Tags			map
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.ProvidersResponse
//	@Router			/providers [get]
func (h *MapHandler) Providers(c *gin.Context) {
	state, err := h.mapSvc.Providers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.ProvidersFromState(state))
}

// SelectProvider godoc
//
//	@Summary		Select map provider
//	@Description	The preferred provider still wins while it is available
//	@Tags			map
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.SelectProviderRequest	true	"Provider"
//	@Success		200		{object}	response.ProvidersResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Router			/providers/selected [put]
func (h *MapHandler) SelectProvider(c *gin.Context) {
	var req request.SelectProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	p, err := entity.ParseProvider(req.Provider)
	if err != nil {
		respondError(c, err)
		return
	}

	state, err := h.mapSvc.SelectProvider(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.ProvidersFromState(state))
}

// SetPath godoc
//
//	@Summary	Show or hide the history path
//	@Tags		map
//	@Accept		json
//	@Security	BearerAuth
//	@Param		request	body	request.SetPathRequest	true	"Visibility"
//	@Success	204
//	@Failure	400	{object}	httputil.ErrorResponse
//	@Router		/map/path [put]
func (h *MapHandler) SetPath(c *gin.Context) {
	var req request.SetPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	if err := h.mapSvc.SetPathVisible(c.Request.Context(), *req.Visible); err != nil {
		respondError(c, err)
		return
	}

	httputil.NoContent(c)
}

// Map godoc
//
//	@Summary		Active map scene
//	@Description	Markers, polylines and view of the active provider
//	@Tags			map
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.MapResponse
//	@Router			/map [get]
func (h *MapHandler) Map(c *gin.Context) {
	view, err := h.mapSvc.Map(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.MapFromView(view))
}
