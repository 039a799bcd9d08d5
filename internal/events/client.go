// Package events publishes per-turn telemetry to NATS. The service runs
// fine without it; callers hold a nil *Client when NATS is not configured.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	SubjectRegistered   = "campus.meritbot.registered"
	SubjectTurnResolved = "campus.meritbot.turn.resolved"
	SubjectTurnClarify  = "campus.meritbot.turn.clarify"
)

// TurnEvent describes one conversational turn for downstream analytics.
type TurnEvent struct {
	SessionID  string `json:"session_id"`
	University string `json:"university,omitempty"`
	Campus     string `json:"campus,omitempty"`
	Department string `json:"department,omitempty"`
	Program    string `json:"program,omitempty"`
	Year       int    `json:"year,omitempty"`
	Awaiting   string `json:"awaiting,omitempty"`
}

type Client struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewClient(url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

func (c *Client) Close() {
	c.conn.Close()
}
