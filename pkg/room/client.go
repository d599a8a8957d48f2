package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// ID identifies the client to the table. Reconnecting with the same ID
	// resumes the same player.
	ID string

	// TableName is the table the client is connected to
	TableName string

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	table *Table
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, id, tableName string) *Client {
	return &Client{
		Conn:      conn,
		ID:        id,
		TableName: tableName,
		send:      make(chan interface{}, 256),
		Close:     make(chan string),
	}
}

// Send sends a message to the web client. It returns false if the client's
// buffer is full and the message was dropped.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outbound messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client and table
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.ID, c.TableName)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.table == nil {
		logrus.WithField("msg", msg).Warn("received message, but table not found")
		return
	}

	c.table.ReceivedMessage(c, msg)
}
