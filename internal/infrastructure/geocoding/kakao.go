package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

const DefaultKakaoBaseURL = "https://dapi.kakao.com"

// Kakao resolves addresses with the Kakao Local coord2address API.
type Kakao struct {
	baseURL    string
	restKey    string
	httpClient *http.Client
}

func NewKakao(baseURL, restKey string, httpClient *http.Client) *Kakao {
	if baseURL == "" {
		baseURL = DefaultKakaoBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Kakao{baseURL: baseURL, restKey: restKey, httpClient: httpClient}
}

type coord2AddressResponse struct {
	Documents []struct {
		Address *struct {
			AddressName string `json:"address_name"`
		} `json:"address"`
		RoadAddress *struct {
			AddressName string `json:"address_name"`
		} `json:"road_address"`
	} `json:"documents"`
}

func (k *Kakao) ReverseGeocode(ctx context.Context, coord valueobject.Coordinate) (string, error) {
	params := url.Values{}
	params.Set("x", strconv.FormatFloat(coord.Lng, 'f', -1, 64))
	params.Set("y", strconv.FormatFloat(coord.Lat, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.baseURL+"/v2/local/geo/coord2address.json?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building kakao request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+k.restKey)

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling kakao coord2address: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("kakao coord2address: HTTP %d: %s", resp.StatusCode, body)
	}

	var out coord2AddressResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding kakao response: %w", err)
	}

	for _, doc := range out.Documents {
		if doc.Address != nil && doc.Address.AddressName != "" {
			return doc.Address.AddressName, nil
		}
		if doc.RoadAddress != nil && doc.RoadAddress.AddressName != "" {
			return doc.RoadAddress.AddressName, nil
		}
	}
	return "", domain.ErrGeocodeNotFound
}
