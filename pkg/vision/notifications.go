package vision

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/propsheet/brochure/internal/logging"
)

// ProgressEvent is one progress update pushed by the analysis service
// while a submitted batch is being processed.
type ProgressEvent struct {
	Stage string `json:"stage"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
}

// ProgressHandler receives progress events.
type ProgressHandler func(ProgressEvent)

// Notifications listens for analysis progress events over a websocket
// connection.
type Notifications struct {
	url  string
	conn *websocket.Conn
	done chan struct{}
	exit chan struct{}
	hdl  ProgressHandler
}

// Notifications creates a progress listener for this client's service.
func (c *Client) Notifications() *Notifications {
	url := strings.Replace(c.base, "http", "ws", 1) + epProgress
	return NewNotifications(url)
}

// NewNotifications creates a progress listener for the given
// websocket URL.
func NewNotifications(url string) *Notifications {
	return &Notifications{
		url:  url,
		done: make(chan struct{}),
		exit: make(chan struct{}),
	}
}

// Connect opens the websocket connection and starts listening.
func (n *Notifications) Connect() error {
	logging.Debug("Connect to progress notifications at %q", n.url)

	conn, _, err := websocket.DefaultDialer.Dial(n.url, nil)
	if err != nil {
		return err
	}

	n.conn = conn
	n.done = make(chan struct{})
	n.exit = make(chan struct{})

	go n.loop()
	go n.read()

	return nil
}

// Disconnect closes the connection.
func (n *Notifications) Disconnect() {
	close(n.exit)
}

// OnProgress sets the handler for incoming events.
// Must be called before Connect.
func (n *Notifications) OnProgress(f ProgressHandler) {
	n.hdl = f
}

func (n *Notifications) onDisconnected() {
	logging.Debug("Progress notifications disconnected")
	if n.conn != nil {
		n.conn.Close()
		n.conn = nil
	}
}

func (n *Notifications) loop() {
	defer n.onDisconnected()

	for {
		select {
		case <-n.done:
			return
		case <-n.exit:
			// close the connection by sending a close message
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			err := n.conn.WriteMessage(websocket.CloseMessage, msg)
			if err != nil {
				logging.Warning("Failed to send close message: %v", err)
				return
			}
			// wait for the server to close the connection (or timeout)
			select {
			case <-n.done:
			case <-time.After(time.Second):
			}
			return
		}
	}
}

func (n *Notifications) read() {
	defer close(n.done)
	for {
		_, msg, err := n.conn.ReadMessage()
		if err != nil {
			// server closed the connection
			return
		}
		n.onMessage(msg)
	}
}

func (n *Notifications) onMessage(msg []byte) {
	if n.hdl == nil {
		return
	}

	var evt ProgressEvent
	err := json.Unmarshal(msg, &evt)
	if err != nil {
		logging.Warning("Ignoring malformed progress event: %v", err)
		return
	}

	n.hdl(evt)
}
