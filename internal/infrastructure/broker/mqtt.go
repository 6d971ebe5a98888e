package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/publisher"
)

type Config struct {
	Broker      string
	Port        int
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         byte
	Retain      bool
}

// pahoClient is the part of MQTT.Client the publisher uses.
type pahoClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) MQTT.Token
	Disconnect(quiesce uint)
}

// MQTTPublisher announces tracker events on an MQTT broker.
type MQTTPublisher struct {
	client pahoClient
	cfg    Config
	logger *zap.Logger
}

// Connect dials the broker and returns a publisher bound to it.
func Connect(ctx context.Context, cfg Config, logger *zap.Logger) (*MQTTPublisher, error) {
	logger = logger.Named("mqtt")

	opts := MQTT.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.Broker, cfg.Port))
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetMaxReconnectInterval(time.Minute)
	opts.SetOnConnectHandler(func(MQTT.Client) {
		logger.Info("mqtt connection established", zap.String("broker", cfg.Broker))
	})
	opts.SetConnectionLostHandler(func(_ MQTT.Client, err error) {
		logger.Warn("mqtt connection lost", zap.Error(err))
	})

	client := MQTT.NewClient(opts)
	if err := wait(ctx, client.Connect()); err != nil {
		return nil, fmt.Errorf("connecting to mqtt broker: %w", err)
	}

	logger.Info("mqtt client connected",
		zap.String("broker", cfg.Broker),
		zap.Int("port", cfg.Port),
	)
	return newMQTTPublisher(client, cfg, logger), nil
}

func newMQTTPublisher(client pahoClient, cfg Config, logger *zap.Logger) *MQTTPublisher {
	if cfg.TopicPrefix == "" {
		cfg.TopicPrefix = "location-tracker"
	}
	return &MQTTPublisher{client: client, cfg: cfg, logger: logger}
}

func (p *MQTTPublisher) Topic(t publisher.Topic) string {
	return p.cfg.TopicPrefix + "/" + string(t)
}

func (p *MQTTPublisher) Publish(ctx context.Context, event publisher.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling %s event: %w", event.Topic, err)
	}

	topic := p.Topic(event.Topic)
	if err := wait(ctx, p.client.Publish(topic, p.cfg.QoS, p.cfg.Retain, data)); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}

	p.logger.Debug("mqtt message published",
		zap.String("topic", topic),
		zap.Int("size", len(data)),
	)
	return nil
}

func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
	p.logger.Info("mqtt client disconnected")
}

func wait(ctx context.Context, token MQTT.Token) error {
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}

type noopPublisher struct{}

// Noop returns a publisher that drops every event.
func Noop() publisher.Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, publisher.Event) error { return nil }
func (noopPublisher) Close()                                         {}
