// Command raycast-demo plays the arena in first-person view with
// facing-relative movement and a top-down minimap
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/SrWilson89/doom/app"
	"github.com/SrWilson89/doom/config"
)

func main() {
	base := config.Default()
	base.Movement = config.MovementFacing

	cfg, err := config.Load("raycast-demo", os.Args[1:], base)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "raycast-demo: %v\n", err)
		os.Exit(2)
	}

	if logFile := app.SetupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := app.Run(cfg, app.ViewRaycast); err != nil {
		fmt.Fprintf(os.Stderr, "raycast-demo: %v\n", err)
		os.Exit(1)
	}
}
