package room

import "holdem-server/pkg/game"

// PayloadIn is a message from a client
type PayloadIn struct {
	// Context is echoed back so the client can correlate responses
	Context string      `json:"context"`
	Action  game.Action `json:"action"`
}

// Response is a message to a client
type Response struct {
	Key     string      `json:"key"`
	Context string      `json:"context,omitempty"`
	Value   string      `json:"value,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK returns an acknowledgement response
func OK(ctx string) *Response {
	return &Response{
		Key:     "ok",
		Context: ctx,
	}
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

func newGameResponse(view *game.ClientView) *Response {
	return &Response{
		Key:  "game",
		Data: view,
	}
}
