package buttonpanel

import (
	"github.com/sirupsen/logrus"
)

const (
	DefaultTopicNamespace = "GEMMA"
)

type Publisher interface {
	Publish(msg Message) error
	Close() error
}

type Message struct {
	Topic   string
	Payload []byte
}

// StatePublisher announces button state changes on "<namespace>/<label>"
// with a "1" or "0" payload.
type StatePublisher struct {
	log       logrus.FieldLogger
	namespace string
	publisher Publisher
}

func NewStatePublisher(namespace string, publisher Publisher) *StatePublisher {
	if namespace == "" {
		namespace = DefaultTopicNamespace
	}
	return &StatePublisher{
		log:       appLogger.WithField("comp", "state-publisher"),
		namespace: namespace,
		publisher: publisher,
	}
}

func (sp *StatePublisher) Topic(label string) string {
	return sp.namespace + "/" + label
}

// PublishState sends the state of the labelled button. Errors are logged
// and otherwise dropped.
func (sp *StatePublisher) PublishState(label string, on bool) {
	payload := []byte{'0'}
	status := "OFF"
	if on {
		payload[0] = '1'
		status = "ON"
	}
	sp.log.Infof("%s: %s", label, status)

	msg := Message{
		Topic:   sp.Topic(label),
		Payload: payload,
	}
	if err := sp.publisher.Publish(msg); err != nil {
		sp.log.WithField("topic", msg.Topic).Debugf("Dropped state message: %v", err)
	}
}

// NopPublisher discards every message. It stands in when no broker is
// reachable.
type NopPublisher struct{}

func (NopPublisher) Publish(msg Message) error {
	appLogger.WithField("comp", "nop-publisher").Debugf("Discarding message for %s", msg.Topic)
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
