package vision

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestNotificationsReceive(t *testing.T) {
	assert := assert.New(t)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		events := []ProgressEvent{
			{Stage: "analyzing", Done: 3, Total: 9},
			{Stage: "analyzing", Done: 6, Total: 9},
		}
		for _, e := range events {
			err = conn.WriteJSON(e)
			if err != nil {
				return
			}
		}

		// hold the connection open until the client sends its close
		// message
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	url := strings.Replace(srv.URL, "http", "ws", 1)
	n := NewNotifications(url)

	// the handler is registered before Connect; events that arrive
	// right after the connection opens must not be lost
	got := make(chan ProgressEvent, 2)
	n.OnProgress(func(e ProgressEvent) {
		got <- e
	})

	err := n.Connect()
	assert.Nil(err)
	defer n.Disconnect()

	for _, expected := range []int{3, 6} {
		select {
		case e := <-got:
			assert.Equal("analyzing", e.Stage)
			assert.Equal(expected, e.Done)
			assert.Equal(9, e.Total)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for progress event")
		}
	}
}
