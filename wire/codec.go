// Package wire decodes shapes from serialized payloads, runs the separating
// axis test and encodes the result. A missing collision is encoded as null;
// malformed payloads fail with a *DecodeError and are never reported as
// "no collision".
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/soypat/sat"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format accepted by the boundary.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("wire: unknown format %q", s)
}

// DecodeError is returned when a payload can not be decoded.
type DecodeError struct {
	Format Format
	// Arg names the payload that failed to decode, i.e. "a" or "b".
	Arg string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("wire: decoding %s as %s: %s", e.Arg, e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var errEmpty = errors.New("empty payload")

// Codec converts between payloads and sat values.
type Codec struct {
	format Format
	tester *sat.Tester
	cache  *cache
}

// NewCodec returns a Codec decoding payloads in format f and testing them with t.
// A nil t selects a tester with the default configuration and validation enabled.
func NewCodec(f Format, t *sat.Tester) (*Codec, error) {
	f, err := ParseFormat(string(f))
	if err != nil {
		return nil, err
	}
	if t == nil {
		t = validatingTester()
	}
	return &Codec{format: f, tester: t}, nil
}

var defaultCodec = &Codec{format: JSON, tester: validatingTester()}

func validatingTester() *sat.Tester {
	cfg := sat.DefaultConfig()
	cfg.Validate = true
	t, err := sat.NewTester(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// TestPolyPoly decodes two JSON polygons, tests them and returns the JSON
// encoded response, or null if they do not collide.
func TestPolyPoly(a, b []byte) ([]byte, error) {
	return defaultCodec.TestPolyPoly(a, b)
}

// DecodePolygon decodes a JSON polygon.
func DecodePolygon(data []byte) (sat.Polygon, error) {
	return defaultCodec.DecodePolygon(data)
}

// EncodeResponse encodes r as JSON. A nil r encodes as null.
func EncodeResponse(r *sat.Response) ([]byte, error) {
	return json.Marshal(r)
}

// WithCache returns a copy of c that remembers up to capacity encoded
// responses of TestPolyPoly, keyed by the raw payloads. A capacity below 1
// is treated as 1. Failed calls are not cached.
func (c *Codec) WithCache(capacity int) *Codec {
	cc := *c
	cc.cache = newCache(capacity)
	return &cc
}

// Format returns the payload format of c.
func (c *Codec) Format() Format { return c.format }

// DecodePolygon decodes a single polygon payload.
func (c *Codec) DecodePolygon(data []byte) (p sat.Polygon, err error) {
	defer recoverPanic(&err)
	err = c.decode("polygon", data, &p)
	return p, err
}

// TestPolyPoly decodes polygons a and b, tests them and encodes the
// response as JSON regardless of the input format.
func (c *Codec) TestPolyPoly(a, b []byte) (out []byte, err error) {
	if c.cache != nil {
		if cached, ok := c.cache.get(a, b); ok {
			return cached, nil
		}
		defer func() {
			if err == nil && out != nil {
				c.cache.put(a, b, out)
			}
		}()
	}
	defer recoverPanic(&err)
	var pa, pb sat.Polygon
	if err = c.decode("a", a, &pa); err != nil {
		return nil, err
	}
	if err = c.decode("b", b, &pb); err != nil {
		return nil, err
	}
	r, ok, err := c.tester.Test(pa, pb)
	if err != nil {
		return nil, err
	}
	if !ok {
		return EncodeResponse(nil)
	}
	return EncodeResponse(&r)
}

func (c *Codec) decode(arg string, data []byte, v interface{}) error {
	var err error
	switch {
	case len(bytes.TrimSpace(data)) == 0:
		err = errEmpty
	case c.format == YAML:
		err = yaml.Unmarshal(data, v)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(v)
		if err == nil {
			var extra json.RawMessage
			if dec.Decode(&extra) != io.EOF {
				err = errors.New("trailing data after value")
			}
		}
	}
	if err != nil {
		return &DecodeError{Format: c.format, Arg: arg, Err: err}
	}
	return nil
}
