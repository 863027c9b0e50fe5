package redisstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"maternal-care-api/internal/ports/notify"

	"github.com/go-redis/redis/v8"
)

const DefaultStream = "sos-alerts"

// StreamClient es lo mínimo que usa el publisher (*redis.Client lo cumple).
type StreamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// Publisher escribe cada alerta SOS en un Redis Stream (XADD) para que
// otros servicios (SMS, guardia, dashboard) la consuman.
type Publisher struct {
	client StreamClient
	stream string
	maxLen int64
}

func New(client StreamClient, stream string, maxLen int64) *Publisher {
	stream = strings.TrimSpace(stream)
	if stream == "" {
		stream = DefaultStream
	}
	return &Publisher{client: client, stream: stream, maxLen: maxLen}
}

// NewClient arma un *redis.Client y verifica la conexión.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("redis addr required")
	}
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return c, nil
}

func (p *Publisher) Notify(ctx context.Context, a notify.Alert) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("redisstream: marshal alert: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"alert_id":   a.ID,
			"patient_id": a.PatientID,
			"type":       a.Type,
			"tier":       a.Tier,
			"data":       string(payload),
			"timestamp":  a.RaisedAt.Unix(),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("redisstream: xadd %s: %w", p.stream, err)
	}
	return nil
}
