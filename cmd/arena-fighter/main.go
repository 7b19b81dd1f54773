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
	cfg, err := config.Load("arena-fighter", os.Args[1:], config.Default())
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "arena-fighter: %v\n", err)
		os.Exit(2)
	}

	if logFile := app.SetupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := app.Run(cfg, app.ViewTopDown); err != nil {
		fmt.Fprintf(os.Stderr, "arena-fighter: %v\n", err)
		os.Exit(1)
	}
}
