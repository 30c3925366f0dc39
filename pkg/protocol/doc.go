// Package protocol defines the wire format between a runtime process and a
// remote display surface: a fixed binary frame header carrying a typed JSON
// payload. Runtime→client frames carry batches of surface operations;
// client→runtime frames carry raw platform events and control messages.
package protocol
