package webhookpubsub

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/golang-jwt/jwt"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"

	"github.com/auctionward/auctiond/internal/core/ports"
)

const requestTimeout = 15 * time.Second

type webhookService struct {
	store      *webhookStore
	httpClient *client
	cb         *gobreaker.CircuitBreaker

	topics map[string]struct{}
}

// NewWebhookPubSubService returns a ports.PubSubService that invokes
// registered webhook endpoints with a POST request for every published
// message. Webhooks survive restarts through a dedicated on-disk store.
func NewWebhookPubSubService(
	baseDbDir string, logger badger.Logger, topics []string,
) (ports.PubSubService, error) {
	store, err := newWebhookStore(baseDbDir, logger)
	if err != nil {
		return nil, err
	}

	knownTopics := make(map[string]struct{})
	for _, topic := range topics {
		knownTopics[topic] = struct{}{}
	}
	knownTopics[TopicAll] = struct{}{}

	return &webhookService{
		store:      store,
		httpClient: newHTTPClient(requestTimeout),
		cb:         newCircuitBreaker(),
		topics:     knownTopics,
	}, nil
}

func (ws *webhookService) Subscribe(topic, endpoint, secret string) (string, error) {
	if _, ok := ws.topics[topic]; !ok {
		return "", ErrInvalidTopic
	}

	hook, err := NewWebhook(topic, endpoint, secret)
	if err != nil {
		return "", err
	}

	if err := ws.store.addWebhook(hook); err != nil {
		return "", err
	}
	return hook.ID, nil
}

func (ws *webhookService) Unsubscribe(id string) error {
	return ws.store.removeWebhook(id)
}

func (ws *webhookService) ListSubscriptionsForTopic(topic string) []ports.Subscription {
	hooks, err := ws.store.getWebhooksForTopic(topic)
	if err != nil {
		log.WithError(err).Warn("pubsub: failed to list webhooks")
		return nil
	}

	subs := make([]ports.Subscription, 0, len(hooks))
	for _, h := range hooks {
		subs = append(subs, ports.Subscription{
			ID:       h.ID,
			Topic:    h.Topic,
			Endpoint: h.Endpoint,
		})
	}
	return subs
}

// Publish makes a POST request to every webhook endpoint registered for the
// given topic. It adopts a circuit breaker approach in order to maximize the
// chances that every webhook gets invoked without errors.
func (ws *webhookService) Publish(topic, message string) error {
	hooks, err := ws.store.getWebhooksForTopic(topic)
	if err != nil {
		return err
	}

	eg := &errgroup.Group{}
	for i := range hooks {
		hook := hooks[i]
		eg.Go(func() error { return ws.doRequest(&hook, message) })
	}
	return eg.Wait()
}

func (ws *webhookService) Close() {
	ws.store.close()
}

func (ws *webhookService) doRequest(hook *Webhook, payload string) error {
	_, err := ws.cb.Execute(func() (interface{}, error) {
		headers := map[string]string{
			"Content-Type": "application/json",
		}
		if hook.IsSecured() {
			token := jwt.New(jwt.SigningMethodHS256)
			secret := []byte(hook.Secret)
			tokenString, _ := token.SignedString(secret)
			headers["Authorization"] = fmt.Sprintf("Bearer %s", tokenString)
		}

		status, resp, err := ws.httpClient.post(hook.Endpoint, payload, headers)
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

func newCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "pubsub",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests > 20 && failureRatio >= 0.7
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				log.Warn("webhook endpoints seem down, stop allowing requests")
			}
			if from == gobreaker.StateOpen && to == gobreaker.StateHalfOpen {
				log.Info("checking webhook endpoints status")
			}
			if from == gobreaker.StateHalfOpen && to == gobreaker.StateClosed {
				log.Info("webhook endpoints seem ok, restart allowing requests")
			}
		},
	})
}
