// AngelaMos | 2026
// types.go

package storage

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Colors is an ordered list of color codes stored as a JSON array.
type Colors []string

type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// PlatformList is a set of platform identifiers stored as a JSON array.
type PlatformList []Platform

// Stats is a platform specific key-value blob. A nil map is stored as NULL.
type Stats map[string]any

type Engagement struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
}

func (e Engagement) Total() int64 {
	return e.Likes + e.Comments + e.Shares
}

func (c Colors) Value() (driver.Value, error) {
	if c == nil {
		c = Colors{}
	}
	return jsonValue(c)
}

func (c *Colors) Scan(src any) error {
	return scanJSON(src, c)
}

func (f Fonts) Value() (driver.Value, error) {
	return jsonValue(f)
}

func (f *Fonts) Scan(src any) error {
	return scanJSON(src, f)
}

func (p PlatformList) Value() (driver.Value, error) {
	if p == nil {
		p = PlatformList{}
	}
	return jsonValue(p)
}

func (p *PlatformList) Scan(src any) error {
	return scanJSON(src, p)
}

func (s Stats) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return jsonValue(map[string]any(s))
}

func (s *Stats) Scan(src any) error {
	if src == nil {
		*s = nil
		return nil
	}
	return scanJSON(src, (*map[string]any)(s))
}

func (e Engagement) Value() (driver.Value, error) {
	return jsonValue(e)
}

func (e *Engagement) Scan(src any) error {
	return scanJSON(src, e)
}

func (s Stats) clone() Stats {
	if s == nil {
		return nil
	}
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = cloneJSONValue(v)
	}
	return out
}

func cloneJSONValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = cloneJSONValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = cloneJSONValue(inner)
		}
		return out
	default:
		return v
	}
}

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json column: %w", err)
	}
	return string(b), nil
}

func scanJSON(src, dest any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan json column: unsupported type %T", src)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("scan json column: %w", err)
	}
	return nil
}
