// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bench

import (
	"context"
	"io"
	"log/slog"

	"github.com/db47h/hwfft/fft"
	"github.com/db47h/hwfft/fixed"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// MaxWait is the number of clock cycles Run waits for done or for output
// enable before giving up.
//
const MaxWait = 16

// ErrTimeout is returned when the device does not respond within MaxWait
// clock cycles.
//
var ErrTimeout = errors.New("timeout")

// Driver runs the host protocol on a Device.
//
type Driver struct {
	Dev Device
	Log *slog.Logger // optional
}

func (d *Driver) tick(in fft.Inputs) fft.Outputs {
	o := d.Dev.Tick(in)
	if d.Log != nil {
		d.Log.Debug("tick",
			slog.Bool("ld", in.Load), slog.Bool("rd", in.Read), slog.Int("din", int(in.Sample)),
			slog.String("phase", o.Phase.String()), slog.Bool("oe", o.OutputEnable), slog.Int("dout", int(o.Result)))
	}
	return o
}

// Reset holds reset high for one clock cycle.
//
func (d *Driver) Reset() {
	d.tick(fft.Inputs{Reset: true})
}

// Load sends one packed sample: the load line is held high for one cycle,
// then low for one cycle.
//
func (d *Driver) Load(sample uint8) error {
	o := d.tick(fft.Inputs{Enable: true, Load: true, Sample: sample})
	d.tick(fft.Inputs{Enable: true})
	if !o.LoadPulse {
		return errors.New("load request not detected")
	}
	return nil
}

// Wait waits for the done flag.
//
func (d *Driver) Wait() error {
	for i := 0; i < MaxWait; i++ {
		if d.tick(fft.Inputs{Enable: true}).Done {
			return nil
		}
	}
	return errors.Wrap(ErrTimeout, "waiting for done")
}

// Read pulses the read line and returns the value on the output bus while
// output enable is high.
//
func (d *Driver) Read() (uint8, error) {
	o := d.tick(fft.Inputs{Enable: true, Read: true})
	for i := 0; !o.OutputEnable; i++ {
		if i == MaxWait {
			return 0, errors.Wrap(ErrTimeout, "waiting for output enable")
		}
		o = d.tick(fft.Inputs{Enable: true})
	}
	d.tick(fft.Inputs{Enable: true})
	return o.Result, nil
}

// Run resets the device, loads samples, waits for done and reads the four
// results.
//
func (d *Driver) Run(ctx context.Context, samples [fft.N]uint8) (out [fft.N]uint8, err error) {
	d.Reset()
	for i, s := range samples {
		if err = ctx.Err(); err != nil {
			return out, err
		}
		if err = d.Load(s); err != nil {
			return out, errors.Wrapf(err, "sample %d", i)
		}
	}
	if err = d.Wait(); err != nil {
		return out, err
	}
	for i := range out {
		if err = ctx.Err(); err != nil {
			return out, err
		}
		if out[i], err = d.Read(); err != nil {
			return out, errors.Wrapf(err, "result %d", i)
		}
	}
	return out, nil
}

// Run runs the protocol once on dev.
//
func Run(ctx context.Context, dev Device, samples [fft.N]uint8) ([fft.N]uint8, error) {
	d := Driver{Dev: dev}
	return d.Run(ctx, samples)
}

// RunAll runs each vector on a fresh device returned by newDevice, using up
// to workers goroutines (unlimited if workers <= 0). Devices implementing
// io.Closer are closed after use. The first error cancels the remaining
// runs.
//
func RunAll(ctx context.Context, newDevice func() (Device, error), vectors [][fft.N]uint8, workers int, log *slog.Logger) ([][fft.N]uint8, error) {
	out := make([][fft.N]uint8, len(vectors))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range vectors {
		i := i
		g.Go(func() error {
			dev, err := newDevice()
			if err != nil {
				return err
			}
			if c, ok := dev.(io.Closer); ok {
				defer c.Close()
			}
			d := Driver{Dev: dev}
			if log != nil {
				d.Log = log.With(slog.Int("vector", i))
			}
			out[i], err = d.Run(ctx, vectors[i])
			return errors.Wrapf(err, "vector %d", i)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// PackSamples encodes host samples for an input shift.
//
func PackSamples(shift uint, in [fft.N]fixed.Complex) (p [fft.N]uint8) {
	for i := range in {
		p[i] = fixed.PackInput(in[i], shift)
	}
	return p
}
