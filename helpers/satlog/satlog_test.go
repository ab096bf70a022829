package satlog_test

import (
	"testing"

	"github.com/soypat/sat"
	"github.com/soypat/sat/helpers/satlog"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTester(t *testing.T, level zapcore.Level) (*sat.Tester, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	tester, err := sat.NewTester(sat.DefaultConfig(), sat.WithTracer(satlog.Tracer(zap.New(core))))
	require.NoError(t, err)
	return tester, logs
}

func TestTracerLogsEveryAxis(t *testing.T) {
	tester, logs := newTester(t, zapcore.DebugLevel)
	a := sat.Box{Width: 20, Height: 20}.ToPolygon()
	b := sat.Box{Position: sat.V(10, 5), Width: 20, Height: 20}.ToPolygon()
	r, ok, err := tester.Test(a, b)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, 8, logs.FilterMessage("sat axis").Len())
	resp := logs.FilterMessage("sat response").All()
	require.Len(t, resp, 1)
	fields := resp[0].ContextMap()
	require.Equal(t, true, fields["collision"])
	require.Equal(t, r.Overlap, fields["overlap"])
	require.Equal(t, map[string]interface{}{"x": r.OverlapN.X, "y": r.OverlapN.Y}, fields["overlap_n"])
}

func TestTracerSeparated(t *testing.T) {
	tester, logs := newTester(t, zapcore.DebugLevel)
	a := sat.Box{Width: 1, Height: 1}.ToPolygon()
	b := a.Translate(sat.V(5, 0))
	_, ok, err := tester.Test(a, b)
	require.NoError(t, err)
	require.False(t, ok)

	separated := 0
	for _, e := range logs.FilterMessage("sat axis").All() {
		if e.ContextMap()["separated"] == true {
			separated++
		}
	}
	require.Equal(t, 4, separated)
	require.Equal(t, 1, logs.FilterField(zap.Bool("collision", false)).Len())
}

func TestTracerLevel(t *testing.T) {
	tester, logs := newTester(t, zapcore.InfoLevel)
	_, ok, err := tester.Test(sat.Box{Width: 1, Height: 1}.ToPolygon(), sat.Box{Width: 2, Height: 2}.ToPolygon())
	require.NoError(t, err)
	require.True(t, ok)
	require.Zero(t, logs.Len())
}

func TestNew(t *testing.T) {
	l, err := satlog.New("debug")
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))
	_, err = satlog.New("loud")
	require.Error(t, err)
	// A nil logger is allowed.
	satlog.Tracer(nil).TraceResponse(sat.Response{}, false)
}
