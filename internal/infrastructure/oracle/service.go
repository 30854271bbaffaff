package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/auctionward/auctiond/internal/core/ports"
	"github.com/auctionward/auctiond/pkg/circuitbreaker"
	"github.com/auctionward/auctiond/pkg/httputil"
)

type service struct {
	apiURL string
	cb     *gobreaker.CircuitBreaker
}

// NewService returns an HTTP client for the randomness provider as a
// ports.RandomnessOracle interface. Fulfillments come back asynchronously
// through the engine's callback endpoint.
func NewService(apiURL string) (ports.RandomnessOracle, error) {
	svc := &service{
		apiURL: apiURL,
		cb:     circuitbreaker.NewCircuitBreaker("oracle"),
	}

	if err := svc.healthCheck(); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	return svc, nil
}

type disabledService struct{}

// NewDisabledService returns an oracle that refuses every request. Used when
// no randomness provider is configured, so that auctions created with the
// randomness flag fail their resolution request instead of hanging.
func NewDisabledService() ports.RandomnessOracle {
	return disabledService{}
}

func (disabledService) Request(_ context.Context, _ string) error {
	return fmt.Errorf("no randomness provider configured")
}

func (s *service) Request(_ context.Context, requestID string) error {
	url := fmt.Sprintf("%s/requests", s.apiURL)
	body, _ := json.Marshal(map[string]string{
		"request_id": requestID,
	})
	headers := map[string]string{
		"Content-Type": "application/json",
	}

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
