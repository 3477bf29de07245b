package buttonpanel

import (
	"net/url"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMQTTBrokerAddr = "tcp://localhost:1883"
	DefaultMQTTClientID   = "buttonpanel"

	mqttConnectTimeout = time.Second * 10
	mqttQuiesce        = 250 // milliseconds
	mqttQoSAtMostOnce  = 0
)

var (
	MQTTConnectTimeoutErr = errors.Errorf("MQTT Connect timeout after %s", mqttConnectTimeout)
)

type mqttClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

type MQTTPublisher struct {
	log  logrus.FieldLogger
	mqtt mqttClient
}

func NewMQTTPublisher(conf MQTTConfig) (*MQTTPublisher, error) {
	logger := appLogger.WithField("comp", "mqtt-publisher")

	options, err := clientOptionsFromConfig(conf)
	if err != nil {
		return nil, err
	}
	client := mqtt.NewClient(options)
	connectToken := client.Connect()
	logger.WithField("broker", conf.BrokerAddr).Debug("Connecting to MQTT broker")
	complete := connectToken.WaitTimeout(mqttConnectTimeout)
	if !complete {
		return nil, MQTTConnectTimeoutErr
	}
	connectErr := connectToken.Error()
	if connectErr != nil {
		return nil, errors.Wrapf(connectErr, "could not connect to %s", conf.BrokerAddr)
	}
	logger.Debug("Connected to MQTT broker")

	return newMQTTPublisher(logger, client), nil
}

func newMQTTPublisher(log logrus.FieldLogger, client mqttClient) *MQTTPublisher {
	return &MQTTPublisher{
		log:  log,
		mqtt: client,
	}
}

// Publish hands msg to the client at QoS 0 and returns without waiting for
// the outcome. A failure already known at hand-off is only logged.
func (mp *MQTTPublisher) Publish(msg Message) error {
	token := mp.mqtt.Publish(msg.Topic, mqttQoSAtMostOnce, false, msg.Payload)
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			mp.log.Debug(errors.Wrapf(err, "could not publish message to %s", msg.Topic))
		}
	default:
	}
	return nil
}

func (mp *MQTTPublisher) Close() error {
	mp.log.Debug("Disconnecting from MQTT broker")
	mp.mqtt.Disconnect(mqttQuiesce)
	return nil
}

// Validate checks the broker settings without connecting.
func (conf MQTTConfig) Validate() error {
	_, err := clientOptionsFromConfig(conf)
	return err
}

func clientOptionsFromConfig(conf MQTTConfig) (*mqtt.ClientOptions, error) {
	if conf.BrokerAddr == "" {
		conf.BrokerAddr = DefaultMQTTBrokerAddr
	}
	if conf.ClientID == "" {
		conf.ClientID = DefaultMQTTClientID
	}

	opts := mqtt.NewClientOptions().
		SetAutoReconnect(false).
		SetClientID(conf.ClientID)

	opts.SetUsername(conf.Username)
	opts.SetPassword(conf.Password)

	u, parseErr := url.Parse(conf.BrokerAddr)
	if parseErr != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("BrokerAddr %q must be in the form tcp://127.0.0.1:1883", conf.BrokerAddr)
	}

	opts.AddBroker(conf.BrokerAddr)

	return opts, nil
}
