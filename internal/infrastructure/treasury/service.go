package treasury

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

// NewService returns an HTTP client for the payment rail as a ports.Treasury
// interface.
func NewService(apiURL string) (ports.Treasury, error) {
	svc := &service{
		apiURL: apiURL,
		cb:     circuitbreaker.NewCircuitBreaker("treasury"),
	}

	if err := svc.healthCheck(); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	return svc, nil
}

func (s *service) Collect(_ context.Context, from string, amount uint64) error {
	body, _ := json.Marshal(map[string]interface{}{
		"from":   from,
		"amount": amount,
	})
	return s.post(fmt.Sprintf("%s/collect", s.apiURL), string(body))
}

func (s *service) Payout(_ context.Context, to string, amount uint64) error {
	body, _ := json.Marshal(map[string]interface{}{
		"to":     to,
		"amount": amount,
	})
	return s.post(fmt.Sprintf("%s/payout", s.apiURL), string(body))
}

func (s *service) post(url, body string) error {
	headers := map[string]string{
		"Content-Type": "application/json",
	}

	_, err := s.cb.Execute(func() (interface{}, error) {
		status, resp, err := httputil.NewHTTPRequest("POST", url, body, headers)
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
