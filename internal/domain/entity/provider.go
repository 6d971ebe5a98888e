package entity

import (
	"fmt"

	"github.com/marcos-nsantos/location-tracker/internal/domain"
)

type Provider string

const (
	ProviderKakao  Provider = "kakao"
	ProviderGoogle Provider = "google"

	// PreferredProvider wins whenever it is available.
	PreferredProvider = ProviderGoogle
)

// Providers lists the closed set of map providers in a stable order.
var Providers = []Provider{ProviderKakao, ProviderGoogle}

func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderKakao, ProviderGoogle:
		return Provider(s), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidProvider, s)
	}
}

// Other returns the alternative provider.
func (p Provider) Other() Provider {
	if p == ProviderKakao {
		return ProviderGoogle
	}
	return ProviderKakao
}

func (p Provider) String() string {
	return string(p)
}

type ProviderStatus string

const (
	StatusChecking  ProviderStatus = "checking"
	StatusLoading   ProviderStatus = "loading"
	StatusAvailable ProviderStatus = "available"
	StatusError     ProviderStatus = "error"
)

func (s ProviderStatus) String() string {
	return string(s)
}
