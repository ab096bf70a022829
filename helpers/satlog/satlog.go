// Package satlog provides zap loggers and a zap backed sat.Tracer.
package satlog

import (
	"fmt"

	"github.com/soypat/sat"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a JSON logger writing to stderr at the named level
// ("debug", "info", "warn", "error").
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("satlog: %w", err)
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

// Tracer returns a sat.Tracer logging every axis and response at debug level.
// A nil logger yields a tracer that discards everything.
func Tracer(l *zap.Logger) sat.Tracer {
	if l == nil {
		l = zap.NewNop()
	}
	return &tracer{log: l}
}

type tracer struct {
	log *zap.Logger
}

func (t *tracer) TraceAxis(i int, axis sat.Vec, res sat.AxisResult, separated bool) {
	ce := t.log.Check(zap.DebugLevel, "sat axis")
	if ce == nil {
		return
	}
	ce.Write(
		zap.Int("index", i),
		Vec("axis", axis),
		zap.Bool("separated", separated),
		zap.Float64("overlap", res.Overlap),
		zap.Bool("a_in_b", res.AInB),
		zap.Bool("b_in_a", res.BInA),
	)
}

func (t *tracer) TraceResponse(r sat.Response, ok bool) {
	ce := t.log.Check(zap.DebugLevel, "sat response")
	if ce == nil {
		return
	}
	if !ok {
		ce.Write(zap.Bool("collision", false))
		return
	}
	ce.Write(
		zap.Bool("collision", true),
		zap.Float64("overlap", r.Overlap),
		Vec("overlap_n", r.OverlapN),
		Vec("overlap_v", r.OverlapV),
		zap.Bool("a_in_b", r.AInB),
		zap.Bool("b_in_a", r.BInA),
	)
}

// Vec returns a zap field encoding v as an {x, y} object.
func Vec(key string, v sat.Vec) zap.Field {
	return zap.Object(key, vecMarshaler(v))
}

type vecMarshaler sat.Vec

func (v vecMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", v.X)
	enc.AddFloat64("y", v.Y)
	return nil
}
