// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gallery/internal/display"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run an interactive slideshow",
	Long: `Play shows a random painting and then reads one command per line:

  n, next          show another random painting
  a, auto          start or stop auto-rotation (every 10s by default)
  c, collect       fetch new paintings from the Met collection API
  s, save [path]   export the collection (default my-art-collection.json)
  l, list          list the collection
  h, help          show this help
  q, quit          exit

Auto-rotation keeps running while a collection cycle is in progress.`,
	RunE: runPlay,
}

func init() {
	addAcquisitionFlags(playCmd)
	playCmd.Flags().Duration("interval", 0, "auto-rotation period (default 10s)")
	playCmd.Flags().Bool("auto", false, "start with auto-rotation on")
	playCmd.Flags().Bool("collect", false, "run an acquisition cycle at start")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	auto, _ := cmd.Flags().GetBool("auto")
	collectFirst, _ := cmd.Flags().GetBool("collect")
	return a.play(cmd.Context(), cmd.InOrStdin(), auto, collectFirst)
}

const playHelp = `commands: n(ext)  a(uto)  c(ollect)  s(ave) [path]  l(ist)  h(elp)  q(uit)`

// play runs the interactive loop until quit, end of input, or ctx ends.
func (a *app) play(ctx context.Context, in io.Reader, auto, collectFirst bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.rotator.Stop()

	a.rotator.Next()
	if collectFirst {
		// A failed cycle has already been reported; the session continues.
		_, _ = a.collect(ctx)
	}
	if auto {
		a.rotator.Toggle(ctx)
	}
	a.console.Notify(playHelp, display.Info)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := a.dispatch(ctx, line); quit {
				return nil
			}
		}
	}
}

// dispatch runs one command line and reports whether the session should end.
func (a *app) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "n", "next":
		a.rotator.Next()
	case "a", "auto":
		a.rotator.Toggle(ctx)
	case "c", "collect":
		_, _ = a.collect(ctx)
	case "s", "save":
		path := ""
		if len(fields) > 1 {
			path = fields[1]
		}
		_ = a.save(ctx, path)
	case "l", "list":
		a.console.List(a.store.Snapshot())
	case "h", "help", "?":
		a.console.Notify(playHelp, display.Info)
	case "q", "quit", "exit":
		return true
	default:
		a.console.Notify(fmt.Sprintf("unknown command %q", fields[0]), display.Error)
	}
	return false
}
