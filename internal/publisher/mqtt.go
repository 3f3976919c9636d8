package publisher

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/astrolab/starcurve/internal/config"
	"github.com/astrolab/starcurve/internal/lightcurve"
)

// Publisher sends light-curve summary readings to an MQTT broker
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
}

// New creates a new publisher and connects to the configured broker
func New(cfg config.MQTTConfig) (*Publisher, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("MQTT publishing is not enabled in config")
	}
	if cfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required when enabled")
	}

	// Set default topic prefix if not specified
	topicPrefix := cfg.TopicPrefix
	if topicPrefix == "" {
		topicPrefix = "lightcurve"
	}

	// Configure MQTT client options
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.Broker))
	opts.SetClientID("starcurve")
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	// Create and connect client
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
	}

	return &Publisher{
		client:      client,
		topicPrefix: topicPrefix,
	}, nil
}

// summaryPayload is the JSON message published per file
type summaryPayload struct {
	File      string  `json:"file"`
	Points    int     `json:"points"`
	TimeStart float64 `json:"time_start"`
	TimeEnd   float64 `json:"time_end"`
	Column    string  `json:"column"`
	Count     int     `json:"count"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Mean      float64 `json:"mean"`
	At        string  `json:"at"`
}

// PublishSummary publishes one retained message per measurement column
// of a light-curve summary.
func (p *Publisher) PublishSummary(s lightcurve.Summary) error {
	base := filepath.Base(s.Name)
	at := time.Now().UTC().Format(time.RFC3339)

	for _, col := range s.Columns {
		payload := summaryPayload{
			File:      base,
			Points:    s.Points,
			TimeStart: s.TimeStart,
			TimeEnd:   s.TimeEnd,
			Column:    col.Name,
			Count:     col.Count,
			Min:       col.Min,
			Max:       col.Max,
			Mean:      col.Mean,
			At:        at,
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding payload: %w", err)
		}

		topic := fmt.Sprintf("%s/%s/%s", p.topicPrefix, base, col.Name)
		if token := p.client.Publish(topic, 0, true, body); token.Wait() && token.Error() != nil {
			return fmt.Errorf("publishing to %s: %w", topic, token.Error())
		}
	}

	return nil
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
