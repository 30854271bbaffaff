package webhookpubsub

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/thanhpk/randstr"
)

// TopicAll subscribes an endpoint to every topic published by the engine.
const TopicAll = "*"

const secretLength = 32

type Webhook struct {
	ID       string `json:"id"`
	Topic    string `json:"topic"`
	Endpoint string `json:"endpoint"`
	Secret   string `json:"secret"`
}

// NewWebhook returns a webhook with a random id. An empty secret gets one
// generated so that every invocation can be signed.
func NewWebhook(topic, endpoint, secret string) (*Webhook, error) {
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("webhook endpoint must be a valid URI")
	}
	if len(secret) <= 0 {
		secret = randstr.Hex(secretLength)
	}
	id := uuid.New().String()
	return &Webhook{id, topic, endpoint, secret}, nil
}

func NewWebhookFromBytes(buf []byte) (*Webhook, error) {
	h := &Webhook{}
	if err := json.Unmarshal(buf, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Webhook) IsSecured() bool {
	return len(h.Secret) > 0
}

func (h *Webhook) Serialize() []byte {
	b, _ := json.Marshal(*h)
	return b
}
