package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/pokerodds/equity"
	"github.com/lox/pokerodds/poker"
	"golang.org/x/sync/errgroup"
)

// Connection represents a WebSocket connection to a client
type Connection struct {
	id        string
	conn      *websocket.Conn
	send      chan *Message
	server    *Server
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	requests  errgroup.Group
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, server *Server) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	id := server.ids.Next()

	c := &Connection{
		id:     id,
		conn:   conn,
		send:   make(chan *Message, 256),
		server: server,
		logger: server.logger.WithPrefix("conn").With("conn", id),
		ctx:    ctx,
		cancel: cancel,
	}
	c.requests.SetLimit(server.limits.MaxInFlight)
	return c
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection, cancelling any request still running
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// SendMessage queues a message for the client
func (c *Connection) SendMessage(msg *Message) error {
	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close() // Ignore close errors
		return ErrConnectionClosed
	}
}

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var (
	ErrConnectionClosed = websocket.ErrCloseSent
)

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() {
		_ = c.Close() // Ignore close errors during cleanup
		_ = c.requests.Wait()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}

		// Long enumerations must not hold up pong handling
		started := c.requests.TryGo(func() error {
			c.handleMessage(&msg)
			return nil
		})
		if !started {
			c.rejectBusy(&msg)
		}
	}
}

// rejectBusy answers a request that arrived while the connection already
// had its limit of requests running.
func (c *Connection) rejectBusy(msg *Message) {
	if msg.RequestID == "" {
		msg.RequestID = c.server.ids.Next()
	}
	c.logger.Debug("Rejected request", "type", msg.Type, "request", msg.RequestID)
	c.sendError(msg.RequestID, "too_many_requests",
		fmt.Sprintf("At most %d requests may run at once per connection", c.server.limits.MaxInFlight))
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := c.server.clock.NewTicker(pingPeriod, "conn", "ping")
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // Ignore close errors during cleanup
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// handleMessage processes incoming messages from the client
func (c *Connection) handleMessage(msg *Message) {
	if msg.RequestID == "" {
		msg.RequestID = c.server.ids.Next()
	}
	c.logger.Debug("Received message", "type", msg.Type, "request", msg.RequestID)

	switch msg.Type {
	case MessageTypeOdds:
		var data OddsRequest
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, "invalid_message", "Failed to parse odds request: "+err.Error())
			return
		}
		c.handleOdds(msg.RequestID, data)

	case MessageTypeBestHand:
		var data BestHandRequest
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, "invalid_message", "Failed to parse best hand request: "+err.Error())
			return
		}
		c.handleBestHand(msg.RequestID, data)

	case MessageTypePercentages:
		var data PercentagesRequest
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, "invalid_message", "Failed to parse percentages request: "+err.Error())
			return
		}
		c.handlePercentages(msg.RequestID, data)

	default:
		c.sendError(msg.RequestID, "unknown_message_type", "Unknown message type: "+msg.Type.String())
	}
}

func (c *Connection) handleOdds(requestID string, req OddsRequest) {
	limits := c.server.limits
	if len(req.Holes) > limits.MaxHoles {
		c.sendError(requestID, "too_many_holes",
			fmt.Sprintf("At most %d holes may be compared, got %d", limits.MaxHoles, len(req.Holes)))
		return
	}
	if req.SampleSize < 0 || req.SampleSize > limits.MaxSampleSize {
		c.sendError(requestID, "invalid_sample_size",
			fmt.Sprintf("Sample size must be between 1 and %d", limits.MaxSampleSize))
		return
	}
	method, err := equity.ParseMethod(req.Method)
	if err != nil {
		c.sendError(requestID, "invalid_method", err.Error())
		return
	}

	var opts []equity.Option
	if req.SampleSize > 0 {
		opts = append(opts, equity.WithSampleSize(req.SampleSize))
	}
	if req.Threshold > 0 {
		opts = append(opts, equity.WithThreshold(req.Threshold))
	}
	calc := c.server.calculator(opts...)

	if method == equity.MethodHybrid {
		if method, err = calc.Method(req.Holes, req.Board); err != nil {
			c.sendEquityError(requestID, err)
			return
		}
	}

	start := c.server.clock.Now()
	results, err := calc.Run(c.ctx, method, req.Holes, req.Board)
	if err != nil {
		c.sendEquityError(requestID, err)
		return
	}
	elapsed := c.server.clock.Since(start)
	c.logger.Debug("Odds calculated", "method", method, "holes", len(req.Holes), "elapsed", elapsed)

	c.reply(requestID, MessageTypeOddsResult, OddsResultData{
		Method:    method,
		Results:   results,
		ElapsedMs: elapsed.Milliseconds(),
	})
}

func (c *Connection) handleBestHand(requestID string, req BestHandRequest) {
	if err := poker.AssertUnique(req.Cards); err != nil {
		c.sendError(requestID, "invalid_cards", err.Error())
		return
	}
	hand, ok := poker.BestHand(req.Cards)
	if !ok {
		c.sendError(requestID, "invalid_cards", "At least one card is required")
		return
	}

	kickers := hand.Kickers
	if kickers == nil {
		kickers = []poker.Card{}
	}
	c.reply(requestID, MessageTypeBestHandResult, BestHandResultData{
		Category:    hand.Category,
		Name:        hand.Category.String(),
		Description: hand.Describe(),
		Cards:       hand.Cards,
		Kickers:     kickers,
	})
}

func (c *Connection) handlePercentages(requestID string, req PercentagesRequest) {
	start := c.server.clock.Now()
	dist, err := c.server.calculator().Percentages(c.ctx, req.Hole, req.Board)
	if err != nil {
		c.sendEquityError(requestID, err)
		return
	}

	c.reply(requestID, MessageTypePercentagesResult, PercentagesResultData{
		Percentages: dist,
		ElapsedMs:   c.server.clock.Since(start).Milliseconds(),
	})
}

func (c *Connection) reply(requestID string, messageType MessageType, data any) {
	msg, err := NewMessage(messageType, data, c.server.clock.Now())
	if err != nil {
		c.logger.Error("Failed to create message", "type", messageType, "error", err)
		return
	}
	msg.RequestID = requestID
	if err := c.SendMessage(msg); err != nil {
		c.logger.Debug("Dropped reply", "type", messageType, "error", err)
	}
}

// sendEquityError maps engine errors onto protocol error codes
func (c *Connection) sendEquityError(requestID string, err error) {
	switch {
	case errors.Is(err, context.Canceled):
		c.logger.Debug("Request cancelled", "request", requestID)
	case errors.Is(err, equity.ErrNoHoles),
		errors.Is(err, equity.ErrBoardTooLarge),
		errors.Is(err, equity.ErrDeckExhausted),
		errors.Is(err, equity.ErrInvalidSampleSize):
		c.sendError(requestID, "invalid_request", err.Error())
	default:
		c.sendError(requestID, "invalid_cards", err.Error())
	}
}

// sendError sends an error message to the client
func (c *Connection) sendError(requestID, code, message string) {
	c.reply(requestID, MessageTypeError, ErrorData{
		Code:    code,
		Message: message,
	})
}
