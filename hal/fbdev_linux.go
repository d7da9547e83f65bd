//go:build linux && cgo && !tinygo

package hal

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	fb "github.com/gonutz/framebuffer"
)

// RunFramebuffer drives the app on the Linux kernel framebuffer, with the
// logical surface centered on the panel. No pointer is available on this
// backend.
func RunFramebuffer(ctx context.Context, newApp func(HAL) func() error) error {
	dev, err := fb.Open("/dev/fb0")
	if err != nil {
		return fmt.Errorf("open framebuffer: %w", err)
	}
	defer dev.Close()

	h := New().(*hostHAL)
	step := newApp(h)

	bounds := dev.Bounds()
	if bounds.Dx() < DisplayWidth || bounds.Dy() < DisplayHeight {
		return fmt.Errorf("framebuffer %dx%d smaller than %dx%d",
			bounds.Dx(), bounds.Dy(), DisplayWidth, DisplayHeight)
	}
	org := image.Pt(
		bounds.Min.X+(bounds.Dx()-DisplayWidth)/2,
		bounds.Min.Y+(bounds.Dy()-DisplayHeight)/2,
	)
	target := image.Rectangle{Min: org, Max: org.Add(image.Pt(DisplayWidth, DisplayHeight))}

	draw.Draw(dev, bounds, image.NewUniform(color.Black), image.Point{}, draw.Src)

	frame := image.NewRGBA(image.Rect(0, 0, DisplayWidth, DisplayHeight))

	t := time.NewTicker(time.Second / 60)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			h.disp.snapshot(frame.Pix)
			draw.Draw(dev, target, frame, image.Point{}, draw.Src)
		}
	}
}
