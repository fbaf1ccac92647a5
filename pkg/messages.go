package pkg

import (
	"encoding/json"
	"fmt"

	"github.com/qnkhuat/hotseat/pkg/engine"
)

type MessageType int

const (
	TypeMessageSnapshot MessageType = iota
	TypeMessageTransport
	TypeMessageClosed
)

func (m MessageType) String() string {
	switch m {
	case TypeMessageSnapshot:
		return "TypeMessageSnapshot"
	case TypeMessageTransport:
		return "TypeMessageTransport"
	case TypeMessageClosed:
		return "TypeMessageClosed"
	default:
		return "Unknown MessageType"
	}
}

type MessageInterface interface {
	Type() MessageType
}

// MessageTransport is the envelope every message travels in. Data holds the
// encoded message named by MsgType.
type MessageTransport struct {
	MsgType MessageType     `json:"msgType"`
	Data    json.RawMessage `json:"data"`
}

func (m MessageTransport) Type() MessageType {
	return TypeMessageTransport
}

// MessageSnapshot carries the whole session view after an interaction
type MessageSnapshot struct {
	Session  string          `json:"session"`
	Players  [2]Player       `json:"players"`
	Snapshot engine.Snapshot `json:"snapshot"`
}

func (m MessageSnapshot) Type() MessageType {
	return TypeMessageSnapshot
}

// MessageClosed tells spectators the session has ended
type MessageClosed struct {
	Session string `json:"session"`
}

func (m MessageClosed) Type() MessageType {
	return TypeMessageClosed
}

func Encode(m interface{}) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", m, err)
	}
	return data, nil
}

func Decode(data []byte, m interface{}) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("decode %T: %w", m, err)
	}
	return nil
}

// Wrap encodes m inside a transport envelope
func Wrap(m MessageInterface) ([]byte, error) {
	data, err := Encode(m)
	if err != nil {
		return nil, err
	}
	return Encode(MessageTransport{MsgType: m.Type(), Data: data})
}

// Unwrap decodes an envelope and the message inside it
func Unwrap(b []byte) (MessageInterface, error) {
	var transport MessageTransport
	if err := Decode(b, &transport); err != nil {
		return nil, err
	}
	switch transport.MsgType {
	case TypeMessageSnapshot:
		var m MessageSnapshot
		if err := Decode(transport.Data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case TypeMessageClosed:
		var m MessageClosed
		if err := Decode(transport.Data, &m); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown message type %s", transport.MsgType)
	}
}
