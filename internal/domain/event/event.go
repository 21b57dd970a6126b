package event

import (
	"encoding/json"
	"fmt"
)

// Event is published after a generation run. EventType names the stream it
// goes to and EventValue is the payload stored with it.
type Event interface {
	EventType() string
	EventValue() ([]byte, error)
}

func encode(e Event) ([]byte, error) {
	return json.Marshal(e)
}

// Decode reads a payload written by EventValue back into an event of type T.
func Decode[T Event](payload []byte) (T, error) {
	var e T
	if err := json.Unmarshal(payload, &e); err != nil {
		return e, fmt.Errorf("failed to decode event payload: %w", err)
	}
	return e, nil
}
