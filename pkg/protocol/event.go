package protocol

import (
	"encoding/json"
	"fmt"
)

// Event is a raw platform event forwarded by the client.
type Event struct {
	Name   string         `json:"name"`
	Target string         `json:"target"`
	Data   map[string]any `json:"data,omitempty"`
}

// EncodeEvent encodes an event into an event frame.
func EncodeEvent(ev Event) (*Frame, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("protocol: encode event: %w", err)
	}
	return NewFrame(FrameEvent, payload), nil
}

// DecodeEvent decodes an event frame payload.
func DecodeEvent(payload []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return Event{}, fmt.Errorf("protocol: decode event: %w", err)
	}
	return ev, nil
}

// ControlType identifies a control message.
type ControlType uint8

const (
	ControlPing  ControlType = 0x01
	ControlPong  ControlType = 0x02
	ControlClose ControlType = 0x03
)

// Control is a control message.
type Control struct {
	Type      ControlType `json:"type"`
	Timestamp uint64      `json:"ts,omitempty"`
	Reason    string      `json:"reason,omitempty"`
}

// EncodeControl encodes a control message into a control frame.
func EncodeControl(c Control) (*Frame, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("protocol: encode control: %w", err)
	}
	return NewFrame(FrameControl, payload), nil
}

// DecodeControl decodes a control frame payload.
func DecodeControl(payload []byte) (Control, error) {
	var c Control
	if err := json.Unmarshal(payload, &c); err != nil {
		return Control{}, fmt.Errorf("protocol: decode control: %w", err)
	}
	return c, nil
}
