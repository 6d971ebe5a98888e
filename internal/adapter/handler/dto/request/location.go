package request

import "time"

type HistoryRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// PushPositionRequest carries either a fix or a device error. Latitude and
// longitude are required unless Error is set.
type PushPositionRequest struct {
	Latitude  *float64   `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64   `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Accuracy  float64    `json:"accuracy" binding:"omitempty,min=0"`
	Timestamp *time.Time `json:"timestamp"`
	Error     string     `json:"error" binding:"omitempty,oneof=permission_denied timeout position_unavailable"`
}
