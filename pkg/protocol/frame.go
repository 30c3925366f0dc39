package protocol

import "errors"

// Frame constants.
const (
	// FrameHeaderSize is the size of the frame header in bytes.
	FrameHeaderSize = 4

	// MaxPayloadSize is the maximum payload size (2^16 - 1 bytes).
	MaxPayloadSize = 65535
)

// FrameType identifies the type of frame.
type FrameType uint8

const (
	FrameOps     FrameType = 0x01 // Runtime → client surface operations
	FrameEvent   FrameType = 0x02 // Client → runtime platform event
	FrameControl FrameType = 0x03 // Control messages (ping, pong, close)
)

// String returns the string representation of the frame type.
func (ft FrameType) String() string {
	switch ft {
	case FrameOps:
		return "Ops"
	case FrameEvent:
		return "Event"
	case FrameControl:
		return "Control"
	default:
		return "Unknown"
	}
}

// Frame errors.
var (
	ErrFrameTooLarge    = errors.New("protocol: frame payload too large")
	ErrFrameTooShort    = errors.New("protocol: frame shorter than header")
	ErrInvalidFrameType = errors.New("protocol: invalid frame type")
	ErrLengthMismatch   = errors.New("protocol: payload length mismatch")
)

// Frame is a protocol frame with header and payload.
//
// Wire format (4 bytes header + variable payload):
//
//	byte 0: frame type
//	byte 1: flags (reserved, zero)
//	bytes 2-3: payload length, big-endian
type Frame struct {
	Type    FrameType
	Flags   uint8
	Payload []byte
}

// NewFrame creates a frame of the given type.
func NewFrame(ft FrameType, payload []byte) *Frame {
	return &Frame{Type: ft, Payload: payload}
}

// Encode encodes the frame to bytes including the header.
func (f *Frame) Encode() ([]byte, error) {
	length := len(f.Payload)
	if length > MaxPayloadSize {
		return nil, ErrFrameTooLarge
	}
	buf := make([]byte, FrameHeaderSize+length)
	buf[0] = byte(f.Type)
	buf[1] = f.Flags
	buf[2] = byte(length >> 8)
	buf[3] = byte(length)
	copy(buf[FrameHeaderSize:], f.Payload)
	return buf, nil
}

// DecodeFrame parses a frame from raw bytes.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) < FrameHeaderSize {
		return nil, ErrFrameTooShort
	}
	ft := FrameType(data[0])
	switch ft {
	case FrameOps, FrameEvent, FrameControl:
	default:
		return nil, ErrInvalidFrameType
	}
	length := int(data[2])<<8 | int(data[3])
	if len(data)-FrameHeaderSize != length {
		return nil, ErrLengthMismatch
	}
	return &Frame{
		Type:    ft,
		Flags:   data[1],
		Payload: data[FrameHeaderSize:],
	}, nil
}
