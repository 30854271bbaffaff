package ports

// Subscription describes a single registered notification endpoint.
type Subscription struct {
	ID       string
	Topic    string
	Endpoint string
}

// PubSubService is the outbound notification surface of the engine. Publish
// failures never block or fail the operation that triggered them.
type PubSubService interface {
	// Subscribe registers an endpoint for a topic and returns the
	// subscription id. An empty secret gets one generated server-side.
	Subscribe(topic, endpoint, secret string) (string, error)
	// Unsubscribe removes a subscription by id.
	Unsubscribe(id string) error
	// ListSubscriptionsForTopic returns the registered endpoints for a topic.
	ListSubscriptionsForTopic(topic string) []Subscription
	// Publish fans the message out to every endpoint subscribed to the topic.
	Publish(topic, message string) error
	// Close releases the underlying subscription store.
	Close()
}
