package mapsdk

// Signal is the presence and load-failed pair of one provider SDK.
type Signal interface {
	Present() bool
	Failed() bool
}

// SDK pairs a presence signal with the scene a provider draws on.
type SDK struct {
	signal Signal
	*Scene
}

func NewSDK(signal Signal, scene *Scene) *SDK {
	return &SDK{signal: signal, Scene: scene}
}

func (s *SDK) Present() bool { return s.signal.Present() }
func (s *SDK) Failed() bool  { return s.signal.Failed() }
