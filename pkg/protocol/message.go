// Package protocol defines the WebSocket message types exchanged between
// the bracelet engine and the browser viewer.
package protocol

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageType identifies the type of WebSocket message
type MessageType string

const (
	// Server → Viewer messages
	TypeWelcome MessageType = "welcome" // Sent once on connect
	TypeScene   MessageType = "scene"   // Per-frame scene snapshot

	// Bidirectional
	TypePing MessageType = "ping" // Health check
	TypePong MessageType = "pong" // Health check response
)

// Message is the base wrapper for all WebSocket messages
type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp int64           `json:"ts,omitempty"` // Unix milliseconds
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	var rawData json.RawMessage
	if data != nil {
		var err error
		rawData, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message data: %w", err)
		}
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
		Data:      rawData,
	}, nil
}

// ParseData unmarshals the message data into the provided struct
func (m *Message) ParseData(v interface{}) error {
	if m.Data == nil {
		return nil
	}
	return json.Unmarshal(m.Data, v)
}

// Bytes returns the JSON-encoded message
func (m *Message) Bytes() ([]byte, error) {
	return json.Marshal(m)
}

// ParseMessage parses a JSON message from bytes
func ParseMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return &msg, nil
}

// Vec3 is a compact position/rotation triple, [x, y, z].
type Vec3 [3]float64

// WelcomeData is sent once when a viewer connects.
type WelcomeData struct {
	TickHz         int     `json:"tick_hz"`
	BeadCount      int     `json:"bead_count"`
	BraceletRadius float64 `json:"bracelet_radius"`
	BeadRadius     float64 `json:"bead_radius"`
	LettersPerBead int     `json:"letters_per_bead"`
	PoolCap        int     `json:"pool_cap"`
}

// SceneData is the per-frame snapshot the viewer renders from.
type SceneData struct {
	Tick         uint64             `json:"tick"`
	Now          float64            `json:"now"` // Scene clock, seconds
	RingRotation float64            `json:"ring_rotation"`
	Motion       MotionData         `json:"motion"`
	Hand         HandData           `json:"hand"`
	Beads        []BeadSnapshot     `json:"beads"`
	Floating     []FloatingSnapshot `json:"floating,omitempty"`
}

// MotionData mirrors the mapper output for the frame.
type MotionData struct {
	Speed     float64 `json:"speed"`
	Scattered bool    `json:"scattered"`
	Intensity float64 `json:"intensity"`
}

// HandData is the sanitized gesture input for the frame.
type HandData struct {
	Distance float64 `json:"distance"`
	Present  bool    `json:"present"`
}

// BeadSnapshot is one bead's render transform plus its shell letters.
type BeadSnapshot struct {
	Index   int              `json:"index"`
	Pos     Vec3             `json:"pos"`  // World position, ring rotation applied
	Body    Vec3             `json:"body"` // Body rotation euler angles
	Letters []LetterSnapshot `json:"letters"`
}

// LetterSnapshot is one shell letter's transform, bead-local.
type LetterSnapshot struct {
	Char string `json:"char"`
	Pos  Vec3   `json:"pos"`
	Rot  Vec3   `json:"rot"`
}

// FloatingSnapshot is one background letter's transform.
type FloatingSnapshot struct {
	ID    string  `json:"id"`
	Char  string  `json:"char"`
	Pos   Vec3    `json:"pos"`
	Rot   Vec3    `json:"rot"`
	Scale float64 `json:"scale"`
}

// PingData contains ping information
type PingData struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"ts"`
}

// PongData contains pong response
type PongData struct {
	ID        string `json:"id"`
	PingTS    int64  `json:"ping_ts"`
	PongTS    int64  `json:"pong_ts"`
	LatencyMs int64  `json:"latency_ms"`
}
