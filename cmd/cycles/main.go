package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/midbel/cycles"
	"github.com/midbel/cycles/internal/config"
	"github.com/midbel/cycles/internal/dataset"
	"github.com/midbel/cycles/internal/logger"
	"github.com/midbel/cycles/internal/raster"
	"github.com/midbel/cycles/internal/render"
	"github.com/midbel/cycles/internal/server"
)

func main() {
	var (
		file   = flag.String("config", "", "configuration file")
		width  = flag.Float64("width", 0, "chart width")
		height = flag.Float64("height", 0, "chart height")
		focus  = flag.Int64("focus", 0, "start (unix ms) of the focused cycle")
		format = flag.String("format", "svg", "output format (svg, png, jpg, pdf, eps)")
		kind   = flag.String("kind", "", "chart kind (duration, point)")
		result = flag.String("file", "", "output file")
		dir    = flag.String("dir", "", "output directory when rendering many files")
		serve  = flag.Bool("serve", false, "serve the chart of the first file over http")
		addr   = flag.String("addr", "", "listening address")
	)
	flag.Parse()

	cfg, err := config.Load(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.Mode)
	log := logger.With("cycles")

	if *height > 0 {
		cfg.Chart.Height = *height
	}
	if *kind != "" {
		cfg.Chart.Kind = *kind
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if flag.NArg() == 0 {
		log.Fatal("no input files given")
	}

	f := initialFocus(isSet(flag.CommandLine, "focus"), *focus)
	out := output(*format, cfg.Chart, *width, &f)

	switch {
	case *serve:
		err = runServer(cfg, flag.Arg(0), log)
	case flag.NArg() == 1 && *dir == "":
		err = renderOne(flag.Arg(0), *result, out)
	default:
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		jobs := render.Jobs(*dir, *format, flag.Args()...)
		err = render.Batch(ctx, jobs, runtime.NumCPU(), out, log)
	}
	if err != nil {
		log.WithError(err).Fatal("cycles failed")
	}
}

func output(format string, cfg config.Chart, width float64, focus *cycles.Focus) render.OutputFunc {
	if format == "svg" || format == "" {
		return func(w io.Writer, cs cycles.Cycles) error {
			return render.SVG(w, cfg, cs, width, focus)
		}
	}
	return func(w io.Writer, cs cycles.Cycles) error {
		return raster.Write(w, format, cfg, cs, width, focus)
	}
}

// isSet reports whether the flag name was given on the command line.
func isSet(set *flag.FlagSet, name string) bool {
	var found bool
	set.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func initialFocus(set bool, ms int64) cycles.Focus {
	var f cycles.Focus
	if set {
		f.Update(time.UnixMilli(ms).UTC())
	}
	return f
}

func renderOne(input, file string, out render.OutputFunc) (err error) {
	cs, err := dataset.Load(input)
	if err != nil {
		return err
	}
	if file == "" {
		return out(os.Stdout, cs)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return out(f, cs)
}

func runServer(cfg config.Config, input string, log *logrus.Entry) error {
	cs, err := dataset.Load(input)
	if err != nil {
		return err
	}
	srv := http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(cfg.Chart, cs, log.WithField("input", input)).Router(),
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	go func() {
		<-ctx.Done()
		sctx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		srv.Shutdown(sctx)
	}()

	log.WithFields(logrus.Fields{
		"addr":   cfg.Addr,
		"cycles": len(cs),
	}).Info("serving chart")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
