package control

import (
	"encoding/json"
	"testing"
)

// TestMessage_DecodeTouchFrame verifies the client wire format parses.
func TestMessage_DecodeTouchFrame(t *testing.T) {
	raw := `{"t":"touch","phase":"start","touches":[{"id":7,"x":100.5,"y":99}]}`
	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if msg.T != "touch" || msg.Phase != "start" {
		t.Fatalf("unexpected message %+v", msg)
	}
	if len(msg.Touches) != 1 || msg.Touches[0].ID != 7 || msg.Touches[0].X != 100.5 {
		t.Fatalf("unexpected touches %+v", msg.Touches)
	}
}

// TestMessage_EnabledDistinguishesAbsentFromFalse verifies the pointer field.
func TestMessage_EnabledDistinguishesAbsentFromFalse(t *testing.T) {
	var absent Message
	if err := json.Unmarshal([]byte(`{"t":"inputEnabled"}`), &absent); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if absent.Enabled != nil {
		t.Fatalf("expected nil Enabled when absent")
	}

	var off Message
	if err := json.Unmarshal([]byte(`{"t":"inputEnabled","enabled":false}`), &off); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if off.Enabled == nil || *off.Enabled {
		t.Fatalf("expected explicit false, got %+v", off.Enabled)
	}
}

// TestMessage_LayoutOmittedWhenNil verifies outbound payloads stay compact.
func TestMessage_LayoutOmittedWhenNil(t *testing.T) {
	data, err := json.Marshal(Message{T: "disabled"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"t":"disabled"}` {
		t.Fatalf("unexpected encoding %s", data)
	}
}
