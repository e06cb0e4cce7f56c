package elevation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"flight-route-service/internal/adapters/cache"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
)

const feetPerMeter = 3.28084

// OpenTopoProvider implements ElevationProvider against the
// OpenTopography global DEM API.
//
// It coordinates:
//   - Persistent elevation caching (Redis)
//   - Per-point external API calls with retry/backoff
//   - Per-point degradation: an unresolvable point yields a nil
//     elevation rather than failing the profile
//
// The provider is safe for concurrent use.
type OpenTopoProvider struct {
	session *http.Client
	baseURL string
	demType string
	cache   *cache.RedisElevationCache
}

func NewOpenTopoProvider(elevationCache *cache.RedisElevationCache) *OpenTopoProvider {
	return &OpenTopoProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://portal.opentopography.org/API/globaldem",
		demType: "SRTMGL1",
		cache:   elevationCache,
	}
}

// ElevationProfile resolves one sample per input point, in input order.
func (o *OpenTopoProvider) ElevationProfile(ctx context.Context, points []domain.Coordinates) (_ []domain.ElevationSample, err error) {
	defer obs.Time(ctx, "opentopo.ElevationProfile")(&err)

	out := make([]domain.ElevationSample, 0, len(points))
	for _, p := range points {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		elev, err := o.elevationAt(ctx, p)
		if err != nil {
			log.Printf("elevation lookup failed lat=%.4f lon=%.4f err=%v", p.Lat, p.Lon, err)
			out = append(out, domain.ElevationSample{Coordinates: p})
			continue
		}

		out = append(out, domain.ElevationSample{Coordinates: p, ElevationFt: &elev})
	}

	return out, nil
}

func (o *OpenTopoProvider) elevationAt(ctx context.Context, p domain.Coordinates) (float64, error) {
	if o.cache != nil {
		v, hit, err := o.cache.Get(ctx, p)
		if err != nil {
			log.Printf("elevation cache read failed: %v", err)
		} else if hit {
			return v, nil
		}
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		q := req.URL.Query()
		q.Set("demtype", o.demType)
		q.Set("south", fmt.Sprintf("%f", p.Lat))
		q.Set("north", fmt.Sprintf("%f", p.Lat))
		q.Set("west", fmt.Sprintf("%f", p.Lon))
		q.Set("east", fmt.Sprintf("%f", p.Lon))
		q.Set("outputFormat", "JSON")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded struct {
		Data [][]float64 `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("decode elevation response: %w", err)
	}

	if len(decoded.Data) == 0 || len(decoded.Data[0]) < 3 {
		return 0, fmt.Errorf("no elevation data for %.4f,%.4f", p.Lat, p.Lon)
	}

	// The DEM reports meters; the planning engine works in feet.
	elevFt := decoded.Data[0][2] * feetPerMeter

	if o.cache != nil {
		if err := o.cache.Put(ctx, p, elevFt); err != nil {
			log.Printf("elevation cache write failed: %v", err)
		}
	}

	return elevFt, nil
}
