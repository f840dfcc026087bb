// Package control handles the overlay websocket protocol and input translation.
package control

// Touch is one contact sample sent by the overlay client.
type Touch struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// RectPayload is a rectangle on the wire.
type RectPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// PlacementPayload anchors a circular control to the bottom-right corner.
type PlacementPayload struct {
	Right    float64 `json:"right"`
	Bottom   float64 `json:"bottom"`
	Diameter float64 `json:"diameter"`
}

// LayoutPayload carries placement directives for the overlay controls.
type LayoutPayload struct {
	Trackpad  RectPayload      `json:"trackpad"`
	Primary   PlacementPayload `json:"primary"`
	Secondary PlacementPayload `json:"secondary"`
}

// EventPayload is a synthesized pointer event on the wire.
type EventPayload struct {
	Type    string  `json:"type"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Button  int     `json:"button"`
	Buttons int     `json:"buttons"`
}

// Message is a control websocket payload.
type Message struct {
	T           string         `json:"t"`
	Phase       string         `json:"phase,omitempty"`
	Touches     []Touch        `json:"touches,omitempty"`
	Button      string         `json:"button,omitempty"`
	W           float64        `json:"w,omitempty"`
	H           float64        `json:"h,omitempty"`
	TouchPoints int            `json:"touchPoints,omitempty"`
	Enabled     *bool          `json:"enabled,omitempty"`
	Version     string         `json:"version,omitempty"`
	Layout      *LayoutPayload `json:"layout,omitempty"`
	Event       *EventPayload  `json:"event,omitempty"`
}
