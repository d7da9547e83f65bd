//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"watchface/app"
	"watchface/hal"
)

func main() {
	var headless hal.HeadlessConfig
	var fbdev bool
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&fbdev, "fbdev", false, "Render to the Linux framebuffer instead of a window.")
	flag.Parse()

	var err error
	switch {
	case headless.Enabled:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, app.New, headless)
	case fbdev:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunFramebuffer(ctx, app.New)
	default:
		err = hal.RunWindow(app.New)
	}

	if err != nil && err != context.Canceled {
		fmt.Println(err)
		os.Exit(1)
	}
}
