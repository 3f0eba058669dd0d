package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/cycles"
	"github.com/midbel/cycles/internal/dataset"
)

// OutputFunc writes the chart of a set of cycles.
type OutputFunc func(io.Writer, cycles.Cycles) error

type Job struct {
	Input  string
	Output string
}

// Jobs gives one job per input, its output written in dir with the extension
// ext.
func Jobs(dir, ext string, inputs ...string) []Job {
	var list []Job
	for _, in := range inputs {
		name := filepath.Base(in)
		name = strings.TrimSuffix(name, filepath.Ext(name))
		list = append(list, Job{
			Input:  in,
			Output: filepath.Join(dir, name+"."+ext),
		})
	}
	return list
}

// Batch runs the jobs with at most limit of them at the same time. It stops at
// the first failure.
func Batch(ctx context.Context, jobs []Job, limit int, out OutputFunc, log *logrus.Entry) error {
	grp, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		grp.SetLimit(limit)
	}
	for _, j := range jobs {
		j := j
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return run(j, out, log.WithField("input", j.Input))
		})
	}
	return grp.Wait()
}

func run(j Job, out OutputFunc, log *logrus.Entry) error {
	cs, err := dataset.Load(j.Input)
	if err != nil {
		return err
	}
	w, err := os.Create(j.Output)
	if err != nil {
		return err
	}
	if err := out(w, cs); err != nil {
		w.Close()
		return fmt.Errorf("%s: %w", j.Input, err)
	}
	if err := w.Close(); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"output": j.Output,
		"cycles": len(cs),
	}).Info("chart rendered")
	return nil
}
