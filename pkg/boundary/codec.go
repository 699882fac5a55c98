package boundary

import (
	"encoding/json"
	"fmt"

	"github.com/minsurf/minsurf/pkg/geom"
)

// Wire discriminants emitted by Encode. Legacy payloads carry no kind
// field; Decode falls back to structural sniffing for those.
const (
	KindAnchor   = "anchor"
	KindOnCircle = "on_circle"
)

// anchorWire is the anchor wire format. All fields are required;
// pointers distinguish absent fields from zero values.
type anchorWire struct {
	Kind     string    `json:"kind,omitempty"`
	Position []float64 `json:"position"`
	Index    *int      `json:"index"`
	XLocked  *bool     `json:"x_locked"`
	YLocked  *bool     `json:"y_locked"`
	ZLocked  *bool     `json:"z_locked"`
}

// onCircleWire is the on-circle wire format. The derived frame is
// never transmitted; it is rebuilt from these fields on decode.
type onCircleWire struct {
	Kind     string    `json:"kind,omitempty"`
	Position []float64 `json:"position"`
	Index    *int      `json:"index"`
	Center   []float64 `json:"center"`
	Radius   *float64  `json:"radius"`
	Normal   []float64 `json:"normal"`
}

func wireVec(p geom.Point) []float64 {
	return []float64{p.X, p.Y, p.Z}
}

func decodeVec(v []float64, field string) (geom.Point, error) {
	if v == nil {
		return geom.Point{}, fmt.Errorf("%w: %q", ErrMissingField, field)
	}
	if len(v) != 3 {
		return geom.Point{}, fmt.Errorf("%w: %q has %d", ErrBadVector, field, len(v))
	}
	return geom.Pt(v[0], v[1], v[2]), nil
}

// Encode serializes a condition to its JSON wire format. Vector fields
// are emitted as plain numeric arrays. Free conditions are implicit
// and have no wire representation.
func Encode(c Condition) ([]byte, error) {
	switch c := c.(type) {
	case Anchor:
		return json.Marshal(anchorWire{
			Kind:     KindAnchor,
			Position: wireVec(c.Target),
			Index:    &c.Index,
			XLocked:  &c.LockX,
			YLocked:  &c.LockY,
			ZLocked:  &c.LockZ,
		})
	case *OnCircle:
		return json.Marshal(onCircleWire{
			Kind:     KindOnCircle,
			Position: wireVec(c.Position),
			Index:    &c.Index,
			Center:   wireVec(c.Center),
			Radius:   &c.Radius,
			Normal:   wireVec(c.Normal),
		})
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotSerializable, c)
	}
}

// Decode deserializes a single condition. Payloads with an explicit
// "kind" field are dispatched on it; legacy payloads are sniffed
// structurally, selecting the on-circle variant when a "center" field
// is present and the anchor variant otherwise.
func Decode(data []byte) (Condition, error) {
	var probe struct {
		Kind   string          `json:"kind"`
		Center json.RawMessage `json:"center"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("boundary: decode condition: %w", err)
	}

	switch {
	case probe.Kind == KindAnchor:
		return decodeAnchor(data)
	case probe.Kind == KindOnCircle:
		return decodeOnCircle(data)
	case probe.Kind != "":
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, probe.Kind)
	case probe.Center != nil:
		return decodeOnCircle(data)
	default:
		return decodeAnchor(data)
	}
}

func decodeAnchor(data []byte) (Condition, error) {
	var w anchorWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("boundary: decode anchor: %w", err)
	}

	target, err := decodeVec(w.Position, "position")
	if err != nil {
		return nil, err
	}
	if w.Index == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, "index")
	}
	// All three lock flags are required; absence is never taken to
	// mean locked.
	if w.XLocked == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, "x_locked")
	}
	if w.YLocked == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, "y_locked")
	}
	if w.ZLocked == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, "z_locked")
	}

	return Anchor{
		Target: target,
		Index:  *w.Index,
		LockX:  *w.XLocked,
		LockY:  *w.YLocked,
		LockZ:  *w.ZLocked,
	}, nil
}

func decodeOnCircle(data []byte) (Condition, error) {
	var w onCircleWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("boundary: decode on-circle condition: %w", err)
	}

	position, err := decodeVec(w.Position, "position")
	if err != nil {
		return nil, err
	}
	if w.Index == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, "index")
	}
	center, err := decodeVec(w.Center, "center")
	if err != nil {
		return nil, err
	}
	if w.Radius == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, "radius")
	}
	normal, err := decodeVec(w.Normal, "normal")
	if err != nil {
		return nil, err
	}

	return NewOnCircle(position, *w.Index, center, *w.Radius, normal)
}

// EncodeList serializes a flat condition list as a native JSON array.
func EncodeList(conditions []Condition) ([]byte, error) {
	raw := make([]json.RawMessage, 0, len(conditions))
	for i, c := range conditions {
		data, err := Encode(c)
		if err != nil {
			return nil, fmt.Errorf("boundary: condition %d: %w", i, err)
		}
		raw = append(raw, data)
	}
	return json.Marshal(raw)
}

// DecodeList deserializes a flat condition list. Both native JSON
// arrays of condition objects and the legacy transport, where every
// element is itself a JSON-encoded string, are accepted.
func DecodeList(data []byte) ([]Condition, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("boundary: decode condition list: %w", err)
	}

	conditions := make([]Condition, 0, len(raw))
	for i, msg := range raw {
		payload := []byte(msg)
		var nested string
		if json.Unmarshal(msg, &nested) == nil {
			payload = []byte(nested)
		}

		c, err := Decode(payload)
		if err != nil {
			return nil, fmt.Errorf("boundary: condition %d: %w", i, err)
		}
		conditions = append(conditions, c)
	}
	return conditions, nil
}
