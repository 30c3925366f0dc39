package protocol

import (
	"encoding/json"
	"fmt"
)

// OpCode identifies a surface operation.
type OpCode uint8

const (
	OpMount       OpCode = 0x01 // Replace root content with markup
	OpSetText     OpCode = 0x02 // Overwrite an element's text content
	OpInsertRule  OpCode = 0x03 // Append a stylesheet rule
	OpDeleteRules OpCode = 0x04 // Remove rules scoped to a node id
	OpListen      OpCode = 0x05 // Register a platform listener
	OpUnlisten    OpCode = 0x06 // Remove a platform listener
)

// String returns the string representation of the OpCode.
func (op OpCode) String() string {
	switch op {
	case OpMount:
		return "Mount"
	case OpSetText:
		return "SetText"
	case OpInsertRule:
		return "InsertRule"
	case OpDeleteRules:
		return "DeleteRules"
	case OpListen:
		return "Listen"
	case OpUnlisten:
		return "Unlisten"
	default:
		return "Unknown"
	}
}

// Op is a single surface operation.
//
// Field use per op code:
//
//	Mount        Value = markup
//	SetText      ID = element, Value = text
//	InsertRule   Value = rule text
//	DeleteRules  ID = node id
//	Listen       ID = element, Name = event name
//	Unlisten     ID = element, Name = event name
type Op struct {
	Op    OpCode `json:"op"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// EncodeOps encodes a batch of operations into an ops frame.
func EncodeOps(ops []Op) (*Frame, error) {
	payload, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("protocol: encode ops: %w", err)
	}
	return NewFrame(FrameOps, payload), nil
}

// DecodeOps decodes an ops frame payload.
func DecodeOps(payload []byte) ([]Op, error) {
	var ops []Op
	if err := json.Unmarshal(payload, &ops); err != nil {
		return nil, fmt.Errorf("protocol: decode ops: %w", err)
	}
	return ops, nil
}
