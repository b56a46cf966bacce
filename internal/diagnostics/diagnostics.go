// Package diagnostics provides optional, strictly non-influencing logging
// around a generate run: diagnostic output only, never allowed to alter
// results. Every method on *Diagnostics is safe to call with a nil
// receiver, so passing no diagnostics through terrain.Options costs
// nothing and changes nothing.
package diagnostics

import (
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures where diagnostic output goes. An empty Options logs
// to stderr.
type Options struct {
	// LogFile, if set, routes output through a rotating lumberjack writer
	// instead of stderr.
	LogFile string
}

// Diagnostics wraps a zap logger tagged with a per-run UUID so multiple
// concurrent generate calls can be told apart in shared log output.
type Diagnostics struct {
	logger *zap.Logger
	runID  string
}

// New builds a Diagnostics from Options.
func New(opts Options) *Diagnostics {
	var ws zapcore.WriteSyncer
	if opts.LogFile != "" {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		})
	} else {
		ws = zapcore.AddSync(os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), ws, zapcore.InfoLevel)
	return &Diagnostics{logger: zap.New(core), runID: uuid.NewString()}
}

// Stage starts timing a pipeline stage and returns a function to call on
// exit, which logs the stage name and elapsed time; the timing is
// diagnostic only.
func (d *Diagnostics) Stage(name string) func() {
	if d == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		d.logger.Info("stage complete",
			zap.String("run_id", d.runID),
			zap.String("stage", name),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

// Sizes logs the atlas dimensions in human-readable form.
func (d *Diagnostics) Sizes(pixelCount, atlasBytes int) {
	if d == nil {
		return
	}
	d.logger.Info("atlas sizes",
		zap.String("run_id", d.runID),
		zap.String("pixels", humanize.Comma(int64(pixelCount))),
		zap.String("bytes", humanize.Bytes(uint64(atlasBytes))),
	)
}

// Close flushes any buffered log output.
func (d *Diagnostics) Close() error {
	if d == nil {
		return nil
	}
	return d.logger.Sync()
}
