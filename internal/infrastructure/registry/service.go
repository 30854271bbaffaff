package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"

	"github.com/auctionward/auctiond/internal/core/ports"
	"github.com/auctionward/auctiond/pkg/circuitbreaker"
	"github.com/auctionward/auctiond/pkg/httputil"
)

const requestsPerSecond = 100

type service struct {
	apiURL  string
	cb      *gobreaker.CircuitBreaker
	limiter ratelimit.Limiter
}

// NewService returns an HTTP client for the asset registry as a
// ports.AssetRegistry interface.
func NewService(apiURL string) (ports.AssetRegistry, error) {
	svc := &service{
		apiURL:  apiURL,
		cb:      circuitbreaker.NewCircuitBreaker("registry"),
		limiter: ratelimit.New(requestsPerSecond),
	}

	if err := svc.healthCheck(); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	return svc, nil
}

func (s *service) OwnerOf(_ context.Context, assetID string) (string, error) {
	url := fmt.Sprintf("%s/assets/%s/owner", s.apiURL, assetID)

	s.limiter.Take()
	res, err := s.cb.Execute(func() (interface{}, error) {
		status, resp, err := httputil.NewHTTPRequest("GET", url, "", nil)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf(resp)
		}
		return resp, nil
	})
	if err != nil {
		return "", err
	}

	var payload struct {
		Owner string `json:"owner"`
	}
	if err := json.Unmarshal([]byte(res.(string)), &payload); err != nil {
		return "", fmt.Errorf("invalid owner response: %w", err)
	}
	return payload.Owner, nil
}

func (s *service) Transfer(_ context.Context, assetID, from, to string) error {
	url := fmt.Sprintf("%s/assets/%s/transfer", s.apiURL, assetID)
	body, _ := json.Marshal(map[string]string{
		"from": from,
		"to":   to,
	})
	headers := map[string]string{
		"Content-Type": "application/json",
	}

	s.limiter.Take()
	_, err := s.cb.Execute(func() (interface{}, error) {
		status, resp, err := httputil.NewHTTPRequest("POST", url, string(body), headers)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf(resp)
		}
		return nil, nil
	})
	return err
}

func (s *service) healthCheck() error {
	url := fmt.Sprintf("%s/ping", s.apiURL)
	status, resp, err := httputil.NewHTTPRequest("GET", url, "", nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf(resp)
	}
	return nil
}
