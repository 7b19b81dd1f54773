package app

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// crashGuard restores the terminal before a panic takes the process down
type crashGuard struct {
	screen tcell.Screen
}

// handle is the unified panic handler that resets the terminal and prints the stack trace
func (c crashGuard) handle(r any) {
	if r == nil {
		return
	}
	c.screen.Fini()

	fmt.Fprintf(os.Stderr, "\n\x1b[31mARENA CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// Go runs fn in eg with panic recovery
// Use this instead of eg.Go so a crashed goroutine still cleans up the terminal
func (c crashGuard) Go(eg *errgroup.Group, fn func() error) {
	eg.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				c.handle(r)
			}
		}()
		return fn()
	})
}
