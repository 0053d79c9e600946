// Package stream delivers low-stock push events over the authenticated
// websocket. Its contract is narrow on purpose: every event received, in
// arrival order, exactly once. Deduplication against the snapshot belongs to
// the assembler, reconnection to whoever owns the transport policy.
package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"ufcdash/internal/apierror"
	"ufcdash/internal/model"
)

// EventLowStock is the only event type the feed currently carries.
const EventLowStock = "lowStock"

// envelope frames every message on the wire.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Subscription is a scoped resource: between Subscribe and Close it is
// Connected and Events delivers; after Close or a transport error it is
// Disconnected, Events is closed, and the socket has been released on every
// exit path.
type Subscription struct {
	conn   *websocket.Conn
	events chan model.LowStockAlert
	done   chan struct{}
	once   sync.Once

	mu  sync.Mutex
	err error
}

// Subscribe performs the authenticated handshake and starts delivering
// events. The context cancels the subscription the same way Close does, so
// navigating away tears the connection down deterministically.
func Subscribe(ctx context.Context, rawURL, token string) (*Subscription, error) {
	const op = "stream.Subscribe"

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, apierror.Channel(op, "invalid stream URL", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), header)
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return nil, apierror.Auth(op, "credential rejected by the live feed", err)
		}
		return nil, apierror.Channel(op, "failed to connect to real-time updates", err)
	}
	log.Info().Str("url", u.String()).Msg("live feed connected")

	s := &Subscription{
		conn:   conn,
		events: make(chan model.LowStockAlert),
		done:   make(chan struct{}),
	}
	go s.readLoop()
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.done:
		}
	}()
	return s, nil
}

// Events yields alerts in arrival order. The channel is closed on teardown or
// transport error; check Err afterwards to tell the two apart.
func (s *Subscription) Events() <-chan model.LowStockAlert { return s.events }

// Err returns the transport error that ended the subscription, nil after a
// deliberate Close.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close releases the connection. Idempotent; safe on every exit path.
func (s *Subscription) Close() {
	s.once.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

func (s *Subscription) readLoop() {
	defer func() {
		s.Close()
		close(s.events)
	}()

	for {
		var env envelope
		if err := s.conn.ReadJSON(&env); err != nil {
			select {
			case <-s.done:
				// deliberate teardown, not a degradation
			default:
				s.mu.Lock()
				s.err = apierror.Channel("stream.Read", "real-time updates lost", err)
				s.mu.Unlock()
				// one notice per Connected→Disconnected transition, never
				// one per retry — reconnection is the caller's business.
				log.Warn().Err(err).Msg("live feed disconnected, continuing with snapshot data only")
			}
			return
		}

		if env.Event != EventLowStock {
			continue
		}
		var alert model.LowStockAlert
		if err := json.Unmarshal(env.Data, &alert); err != nil {
			log.Error().Err(err).Msg("dropping malformed low-stock event")
			continue
		}

		select {
		case s.events <- alert:
		case <-s.done:
			return
		}
	}
}
