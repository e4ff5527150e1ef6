//go:build linux

package evdev

import (
	"context"
	"fmt"

	goevdev "github.com/gvalkov/golang-evdev"

	"github.com/phanxgames/tactile"
)

var logger = tactile.Logger().Child("[evdev]")

// Device reads frames from an opened input device node.
type Device struct {
	dev *goevdev.InputDevice
	dec *Decoder
}

// Open opens the device at path, e.g. /dev/input/event5, and decodes it with
// dec.
func Open(path string, dec *Decoder) (*Device, error) {
	dev, err := goevdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}
	logger.Infof("opened %s (%s)", path, dev.Name)
	return &Device{dev: dev, dec: dec}, nil
}

// Name returns the device name reported by the kernel.
func (d *Device) Name() string { return d.dev.Name }

// Run reads events until ctx is cancelled or the device fails, sending a
// copy of every completed frame to frames. Close the device to unblock a
// pending read after cancelling ctx.
func (d *Device) Run(ctx context.Context, frames chan<- []tactile.TouchPoint) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		events, err := d.dev.Read()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read %s: %w", d.dev.Fn, err)
		}
		for i := range events {
			ev := &events[i]
			if ev.Type == goevdev.EV_SYN && ev.Code == goevdev.SYN_DROPPED {
				logger.Debugf("events dropped on %s, resetting contacts", d.dev.Fn)
				d.dec.Reset()
				continue
			}
			frame, ok := d.dec.Feed(ev)
			if !ok {
				continue
			}
			out := make([]tactile.TouchPoint, len(frame))
			copy(out, frame)
			select {
			case frames <- out:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Close closes the device node.
func (d *Device) Close() error {
	return d.dev.File.Close()
}
