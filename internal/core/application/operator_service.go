package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/auctionward/auctiond/internal/core/domain"
	"github.com/auctionward/auctiond/internal/core/ports"
)

// OperatorService covers the privileged administrative surface: fee
// configuration and webhook management.
type OperatorService interface {
	ChangeFee(ctx context.Context, caller string, percentageFee uint64) error
	ChangeFeeRecipient(ctx context.Context, caller, feeRecipient string) error
	GetFeeConfig(ctx context.Context) (*FeeInfo, error)
	SubscribeWebhook(topic, endpoint, secret string) (string, error)
	UnsubscribeWebhook(id string) error
	ListWebhooks(topic string) []ports.Subscription
}

type operatorService struct {
	repoManager ports.RepoManager
	pubsub      ports.PubSubService
}

func NewOperatorService(
	repoManager ports.RepoManager, pubsub ports.PubSubService,
) OperatorService {
	return &operatorService{
		repoManager: repoManager,
		pubsub:      pubsub,
	}
}

func (s *operatorService) ChangeFee(
	ctx context.Context, caller string, percentageFee uint64,
) error {
	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.FeeRepository().UpdateFeeConfig(
				ctx, func(c *domain.FeeConfig) (*domain.FeeConfig, error) {
					if err := c.ChangeFee(caller, percentageFee); err != nil {
						return nil, err
					}
					return c, nil
				},
			)
		},
	); err != nil {
		return err
	}

	log.Infof("platform fee changed to %d basis points", percentageFee)
	return nil
}

func (s *operatorService) ChangeFeeRecipient(
	ctx context.Context, caller, feeRecipient string,
) error {
	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.FeeRepository().UpdateFeeConfig(
				ctx, func(c *domain.FeeConfig) (*domain.FeeConfig, error) {
					if err := c.ChangeFeeRecipient(caller, feeRecipient); err != nil {
						return nil, err
					}
					return c, nil
				},
			)
		},
	); err != nil {
		return err
	}

	log.Infof("platform fee recipient changed to %s", feeRecipient)
	return nil
}

func (s *operatorService) GetFeeConfig(ctx context.Context) (*FeeInfo, error) {
	feeConfig, err := s.repoManager.FeeRepository().GetFeeConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &FeeInfo{
		PercentageFee: feeConfig.PercentageFee,
		FeeRecipient:  feeConfig.FeeRecipient,
	}, nil
}

func (s *operatorService) SubscribeWebhook(
	topic, endpoint, secret string,
) (string, error) {
	return s.pubsub.Subscribe(topic, endpoint, secret)
}

func (s *operatorService) UnsubscribeWebhook(id string) error {
	return s.pubsub.Unsubscribe(id)
}

func (s *operatorService) ListWebhooks(topic string) []ports.Subscription {
	return s.pubsub.ListSubscriptionsForTopic(topic)
}
