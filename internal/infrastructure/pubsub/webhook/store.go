package webhookpubsub

import (
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"
)

// PubSubStoreDir is the subdirectory holding the webhook store.
const PubSubStoreDir = "pubsub"

// webhookStore persists registered webhooks keyed by their id.
type webhookStore struct {
	store *badgerhold.Store
}

func newWebhookStore(baseDbDir string, logger badger.Logger) (*webhookStore, error) {
	opts := badger.DefaultOptions(fmt.Sprintf("%s/%s", baseDbDir, PubSubStoreDir))
	opts.Logger = logger

	store, err := badgerhold.Open(badgerhold.Options{
		Encoder: badgerhold.DefaultEncode,
		Decoder: badgerhold.DefaultDecode,
		Options: opts,
	})
	if err != nil {
		return nil, fmt.Errorf("opening pubsub db: %w", err)
	}

	return &webhookStore{store}, nil
}

func (s *webhookStore) addWebhook(hook *Webhook) error {
	err := s.store.Insert(hook.ID, *hook)
	if err == badgerhold.ErrKeyExists {
		return nil
	}
	return err
}

func (s *webhookStore) getWebhook(hookID string) (*Webhook, error) {
	var hook Webhook
	if err := s.store.Get(hookID, &hook); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &hook, nil
}

func (s *webhookStore) removeWebhook(hookID string) error {
	err := s.store.Delete(hookID, Webhook{})
	if err == badgerhold.ErrNotFound {
		return nil
	}
	return err
}

func (s *webhookStore) getWebhooksForTopic(topic string) ([]Webhook, error) {
	query := badgerhold.Where("Topic").Eq(topic)
	if topic != TopicAll {
		query = query.Or(badgerhold.Where("Topic").Eq(TopicAll))
	}

	var hooks []Webhook
	if err := s.store.Find(&hooks, query); err != nil {
		return nil, err
	}
	return hooks, nil
}

func (s *webhookStore) close() {
	s.store.Close()
}
