package mqttfeed

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"maternal-care-api/internal/platform/logger"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type Config struct {
	Broker   string // tcp://host:1883
	ClientID string
	Username string
	Password string
}

// Subscriber mantiene la conexión al broker y enruta mensajes al Feed.
type Subscriber struct {
	client mqtt.Client
	log    logger.Logger
	topics []string
}

// Connect abre la conexión (con auto-reconnect).
func Connect(cfg Config, log logger.Logger) (*Subscriber, error) {
	if strings.TrimSpace(cfg.Broker) == "" {
		return nil, errors.New("mqtt broker required")
	}
	if log == nil {
		log = logger.NewNop()
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	clientID := strings.TrimSpace(cfg.ClientID)
	if clientID == "" {
		clientID = "maternal-care-api"
	}
	opts.SetClientID(clientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectTimeout(10 * time.Second)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warn("mqtt connection lost", map[string]any{"error": err})
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect mqtt broker: %w", token.Error())
	}

	log.Info("mqtt connected", map[string]any{"broker": cfg.Broker, "client_id": clientID})
	return &Subscriber{client: client, log: log}, nil
}

// Subscribe registra el feed en su topic con QoS 1.
func (s *Subscriber) Subscribe(feed *Feed) error {
	topic := feed.Topic()
	token := s.client.Subscribe(topic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		// Feed.Handle ya loguea el motivo; el mensaje se descarta.
		_ = feed.Handle(msg.Topic(), msg.Payload())
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", topic, token.Error())
	}
	s.topics = append(s.topics, topic)
	s.log.Info("mqtt subscribed", map[string]any{"topic": topic})
	return nil
}

// Close desuscribe y desconecta.
func (s *Subscriber) Close() {
	if len(s.topics) > 0 {
		if token := s.client.Unsubscribe(s.topics...); token.Wait() && token.Error() != nil {
			s.log.Warn("mqtt unsubscribe failed", map[string]any{"error": token.Error()})
		}
	}
	s.client.Disconnect(250)
}
