package realtime

import (
	"context"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	writeTimeout     = 10 * time.Second
	pingInterval     = 25 * time.Second
	pingTimeout      = 5 * time.Second
	closeReasonLeave = "bye"
)

// Client pumps one subscription into one websocket connection.
type Client struct {
	hub  *Hub
	sub  *Subscription
	conn *websocket.Conn

	ctx    context.Context
	cancel context.CancelFunc
}

// Attach subscribes userID and starts writing its events to conn.
func (h *Hub) Attach(userID int64, conn *websocket.Conn) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		hub:    h,
		sub:    h.Subscribe(userID),
		conn:   conn,
		ctx:    ctx,
		cancel: cancel,
	}

	go c.writeLoop()
	go c.keepAliveLoop()

	return c
}

// Send writes one event directly, bypassing the subscription.
func (c *Client) Send(ev Event) error {
	ctx, cancel := context.WithTimeout(c.ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, c.conn, ev)
}

// Close unsubscribes and closes the connection.
func (c *Client) Close() {
	c.cancel()
	c.hub.Unsubscribe(c.sub)
	_ = c.conn.Close(websocket.StatusNormalClosure, closeReasonLeave)
}

func (c *Client) writeLoop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case ev, ok := <-c.sub.C:
			if !ok {
				return
			}
			_ = c.Send(ev)
		}
	}
}

func (c *Client) keepAliveLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(c.ctx, pingTimeout)
			_ = c.conn.Ping(pingCtx)
			cancel()
		}
	}
}
