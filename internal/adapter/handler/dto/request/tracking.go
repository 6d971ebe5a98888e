package request

type SetTrackingRequest struct {
	Tracking *bool `json:"tracking" binding:"required"`
}

type SelectProviderRequest struct {
	Provider string `json:"provider" binding:"required,oneof=kakao google"`
}

type SetPathRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}
