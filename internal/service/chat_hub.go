package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"faculty_hub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	onlineTTL      = 2 * time.Minute
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage is the frame format of the live chat channel.
type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type Client struct {
	Hub     *ChatHub
	Conn    *websocket.Conn
	Send    chan []byte
	UserID  uint
	Limiter *rate.Limiter
}

// ChatHub tracks live websocket connections and mirrors online presence into
// redis (TTL keys refreshed by a heartbeat). Message persistence lives in
// ChatService; the hub only delivers.
type ChatHub struct {
	mu         sync.RWMutex
	clients    map[uint]*Client
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	Redis      *redis.Client
	ctx        context.Context
}

func NewChatHub(rdb *redis.Client) *ChatHub {
	return &ChatHub{
		clients:    make(map[uint]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		Redis:      rdb,
		ctx:        context.Background(),
	}
}

func onlineKey(userID uint) string {
	return fmt.Sprintf("user:online:%d", userID)
}

func (h *ChatHub) Run() {
	heartbeat := time.NewTicker(time.Minute)
	defer heartbeat.Stop()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[client.UserID]; ok {
				close(old.Send)
			}
			h.clients[client.UserID] = client
			h.mu.Unlock()
			h.Redis.Set(h.ctx, onlineKey(client.UserID), "true", onlineTTL)

		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.UserID]; ok && current == client {
				delete(h.clients, client.UserID)
				close(client.Send)
			}
			h.mu.Unlock()
			h.Redis.Del(h.ctx, onlineKey(client.UserID))

		case <-heartbeat.C:
			h.refreshOnlineStatus()

		case <-h.done:
			return
		}
	}
}

// Stop closes every connection and clears presence keys.
func (h *ChatHub) Stop() {
	close(h.done)

	h.mu.Lock()
	defer h.mu.Unlock()
	pipe := h.Redis.Pipeline()
	for userID, client := range h.clients {
		close(client.Send)
		client.Conn.Close()
		pipe.Del(h.ctx, onlineKey(userID))
		delete(h.clients, userID)
	}
	pipe.Exec(h.ctx)
}

func (h *ChatHub) refreshOnlineStatus() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.clients) == 0 {
		return
	}

	pipe := h.Redis.Pipeline()
	for userID := range h.clients {
		pipe.Expire(h.ctx, onlineKey(userID), onlineTTL)
	}
	if _, err := pipe.Exec(h.ctx); err != nil {
		logger.Log.Error("Failed to refresh online status", zap.Error(err))
	}
}

// IsOnline consults the redis presence key, not just local connections.
func (h *ChatHub) IsOnline(userID uint) bool {
	ok, err := h.Redis.Exists(h.ctx, onlineKey(userID)).Result()
	return err == nil && ok == 1
}

// SendToUser delivers a frame to a locally connected user. A full send
// buffer drops the connection rather than blocking the caller.
func (h *ChatHub) SendToUser(userID uint, msg WSMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	client, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case client.Send <- payload:
	default:
		h.unregister <- client
	}
}

// HandleWS upgrades an authenticated request and starts the pumps.
func (h *ChatHub) HandleWS(c *gin.Context, userID uint) error {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return err
	}

	client := &Client{
		Hub:     h,
		Conn:    conn,
		Send:    make(chan []byte, 64),
		UserID:  userID,
		Limiter: rate.NewLimiter(30, 50),
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
	return nil
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Error("WebSocket unexpected close", zap.Error(err), zap.Uint("userId", c.UserID))
			}
			break
		}

		if !c.Limiter.Allow() {
			continue
		}

		var wsMsg WSMessage
		if err := json.Unmarshal(message, &wsMsg); err != nil {
			continue
		}

		// Typing indicators are transient: forwarded to the peer, never stored.
		if wsMsg.Type == "TYPING" {
			data, ok := wsMsg.Data.(map[string]interface{})
			if !ok {
				continue
			}
			peer, ok := data["peerId"].(float64)
			if !ok || uint(peer) == c.UserID {
				continue
			}
			data["userId"] = c.UserID
			c.Hub.SendToUser(uint(peer), WSMessage{Type: "TYPING", Data: data})
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
