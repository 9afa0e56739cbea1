package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/skycast/backend/internal/apperror"
	"github.com/skycast/backend/internal/domain"
)

const (
	// defaultRadarHost is used when the manifest omits its tile host.
	defaultRadarHost = "https://tilecache.rainviewer.com"

	// radarTileSuffix is the RainViewer tiled radar path format:
	// [RADAR_PATH]/256/{z}/{x}/{y}/1/1_1.png
	radarTileSuffix = "/256/{z}/{x}/{y}/1/1_1.png"

	// radarMaxZoom is the free-tier zoom ceiling; fixed, not provider data.
	radarMaxZoom = 10
)

// RadarService fetches the precipitation radar frame manifest from RainViewer
type RadarService struct {
	baseURL    string
	httpClient *http.Client
}

// NewRadarService creates a new radar service
func NewRadarService(baseURL string) *RadarService {
	return &RadarService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// radarManifest represents the RainViewer weather-maps manifest
type radarManifest struct {
	Host      string  `json:"host"`
	Generated float64 `json:"generated"`
	Radar     struct {
		Past []struct {
			Time float64 `json:"time"`
			Path string  `json:"path"`
		} `json:"past"`
	} `json:"radar"`
}

// Latest fetches the frame manifest and composes a tile URL template from the
// last entry of the past-frames sequence, which the provider orders oldest to
// newest. An empty sequence or a frame without a path is an upstream failure.
func (s *RadarService) Latest(ctx context.Context) (domain.RadarSnapshot, error) {
	endpoint := fmt.Sprintf("%s/public/weather-maps.json", s.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.RadarSnapshot{}, apperror.NewInternal(fmt.Errorf("radar: failed to create request: %w", err))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		appErr := apperror.NewUpstream("Upstream radar API error", 0, "")
		appErr.Internal = fmt.Errorf("radar: request failed: %w", err)
		return domain.RadarSnapshot{}, appErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		appErr := apperror.NewUpstream("Upstream radar API error", resp.StatusCode, "")
		appErr.Internal = fmt.Errorf("radar: failed to read response body: %w", err)
		return domain.RadarSnapshot{}, appErr
	}

	if resp.StatusCode != http.StatusOK {
		return domain.RadarSnapshot{}, apperror.NewUpstream("Upstream radar API error", resp.StatusCode, string(body))
	}

	var manifest radarManifest
	if err := json.Unmarshal(body, &manifest); err != nil {
		appErr := apperror.NewUpstream("Upstream radar API error", resp.StatusCode, string(body))
		appErr.Internal = fmt.Errorf("radar: failed to decode manifest: %w", err)
		return domain.RadarSnapshot{}, appErr
	}

	past := manifest.Radar.Past
	if len(past) == 0 || past[len(past)-1].Path == "" {
		return domain.RadarSnapshot{}, apperror.NewUpstream("Radar frames unavailable", resp.StatusCode, string(body))
	}

	host := manifest.Host
	if host == "" {
		host = defaultRadarHost
	}

	latest := past[len(past)-1]

	return domain.RadarSnapshot{
		TileURLTemplate: host + latest.Path + radarTileSuffix,
		Generated:       manifest.Generated,
		MaxZoom:         radarMaxZoom,
	}, nil
}
