package webhook

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"maternal-care-api/internal/platform/httpclient"
	"maternal-care-api/internal/ports/notify"
)

// EventHeader identifica el tipo de evento para el receptor.
const EventHeader = "X-Event-Type"

// Notifier hace POST del payload de la alerta a una URL configurada.
type Notifier struct {
	client *httpclient.Client
	url    string
}

func New(url string, client *httpclient.Client) (*Notifier, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("webhook url required")
	}
	if client == nil {
		client = httpclient.New(5*time.Second).WithRetry(2, 500*time.Millisecond)
	}
	return &Notifier{client: client, url: url}, nil
}

func (n *Notifier) Notify(ctx context.Context, a notify.Alert) error {
	return n.client.DoJSON(ctx, http.MethodPost, n.url, map[string]string{
		EventHeader: "sos.alert",
	}, a, nil)
}
