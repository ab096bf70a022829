// Command sat tests two convex polygons for collision and prints the
// response as JSON, or null when they do not collide.
//
//	sat -a square.json -b triangle.json
//	sat -batch pairs.yaml -config sat.yaml -j 4
//	sat -scene polygons.json
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/soypat/sat"
	"github.com/soypat/sat/helpers/satindex"
	"github.com/soypat/sat/helpers/satlog"
	"github.com/soypat/sat/helpers/satplot"
	"github.com/soypat/sat/wire"
	"go.uber.org/zap"
)

func main() {
	var (
		fileA     = flag.String("a", "", "polygon A file (.json, .yaml)")
		fileB     = flag.String("b", "", "polygon B file (.json, .yaml)")
		batch     = flag.String("batch", "", "file with a list of {a, b} polygon pairs")
		scene     = flag.String("scene", "", "file with a list of polygons. Prints every colliding pair")
		format    = flag.String("format", "", "payload format (json, yaml). Inferred from file extension when empty")
		cfgFile   = flag.String("config", "", "YAML tester configuration")
		logLevel  = flag.String("log", "info", "log level")
		trace     = flag.Bool("trace", false, "log every axis result at debug level")
		plotFile  = flag.String("plot", "", "write a plot of A, B and the MTV to this file (.png, .svg)")
		batchJobs = flag.Int("j", 0, "maximum pairs tested concurrently in batch mode (0 is unlimited)")
	)
	flag.Parse()

	level := *logLevel
	if *trace {
		level = "debug"
	}
	log, err := satlog.New(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()
	log = log.With(zap.String("run_id", uuid.NewString()))
	wire.InitPanicHandler(log)

	if err := run(log, options{
		fileA: *fileA, fileB: *fileB, batch: *batch, scene: *scene, format: *format,
		cfgFile: *cfgFile, trace: *trace, plotFile: *plotFile, jobs: *batchJobs,
	}); err != nil {
		log.Error("sat failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

type options struct {
	fileA, fileB, batch string
	scene               string
	format, cfgFile     string
	trace               bool
	plotFile            string
	jobs                int
}

func run(log *zap.Logger, o options) error {
	cfg := sat.DefaultConfig()
	cfg.Validate = true
	if o.cfgFile != "" {
		fp, err := os.Open(o.cfgFile)
		if err != nil {
			return err
		}
		cfg, err = wire.LoadConfigOver(fp, cfg)
		fp.Close()
		if err != nil {
			return err
		}
	}
	var opts []sat.Option
	if o.trace {
		opts = append(opts, sat.WithTracer(satlog.Tracer(log)))
	}
	tester, err := sat.NewTester(cfg, opts...)
	if err != nil {
		return err
	}

	switch {
	case o.batch != "":
		return runBatch(log, tester, o)
	case o.scene != "":
		return runScene(log, tester, o)
	}
	if o.fileA == "" || o.fileB == "" {
		return fmt.Errorf("both -a and -b are required")
	}
	codec, err := wire.NewCodec(formatOf(o.format, o.fileA), tester)
	if err != nil {
		return err
	}
	dataA, err := os.ReadFile(o.fileA)
	if err != nil {
		return err
	}
	dataB, err := os.ReadFile(o.fileB)
	if err != nil {
		return err
	}
	out, err := codec.TestPolyPoly(dataA, dataB)
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if o.plotFile == "" {
		return nil
	}
	a, err := codec.DecodePolygon(dataA)
	if err != nil {
		return err
	}
	b, err := codec.DecodePolygon(dataB)
	if err != nil {
		return err
	}
	var r *sat.Response
	if err := json.Unmarshal(out, &r); err != nil {
		return err
	}
	return writePlot(log, o.plotFile, a, b, r)
}

func runBatch(log *zap.Logger, tester *sat.Tester, o options) error {
	codec, err := wire.NewCodec(formatOf(o.format, o.batch), tester)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(o.batch)
	if err != nil {
		return err
	}
	pairs, err := codec.DecodePairs(data)
	if err != nil {
		return err
	}
	results, err := codec.TestBatch(context.Background(), pairs, o.jobs)
	if err != nil {
		return err
	}
	hits := 0
	for _, r := range results {
		if r != nil {
			hits++
		}
	}
	log.Info("batch tested", zap.Int("pairs", len(pairs)), zap.Int("collisions", hits))
	out, err := wire.EncodeResponses(results)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runScene(log *zap.Logger, tester *sat.Tester, o options) error {
	codec, err := wire.NewCodec(formatOf(o.format, o.scene), tester)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(o.scene)
	if err != nil {
		return err
	}
	polys, err := codec.DecodePolygons(data)
	if err != nil {
		return err
	}
	hits, err := codec.TestScene(polys)
	if err != nil {
		return err
	}
	log.Info("scene tested", zap.Int("polygons", len(polys)), zap.Int("collisions", len(hits)))
	if hits == nil {
		hits = []satindex.PairHit{}
	}
	out, err := json.Marshal(hits)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func writePlot(log *zap.Logger, name string, a, b sat.Polygon, r *sat.Response) error {
	var buf bytes.Buffer
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		ext = "png"
	}
	if err := satplot.Write(&buf, ext, a, b, r); err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return err
	}
	log.Info("plot written", zap.String("file", name))
	return nil
}

func formatOf(flagValue, filename string) wire.Format {
	if flagValue != "" {
		return wire.Format(flagValue)
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return wire.YAML
	}
	return wire.JSON
}
