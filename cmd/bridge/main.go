package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"payment-bridge/internal/bridge"
	"payment-bridge/internal/procedural"
)

func main() {
	variant := "all"
	if len(os.Args) > 1 {
		variant = os.Args[1]
	}

	if err := run(os.Stdout, variant); err != nil {
		slog.Error("cannot run demo", "variant", variant, "error", err)
		os.Exit(2)
	}
}

func run(w io.Writer, variant string) error {
	switch variant {
	case "classic":
		bridge.Handle(w)
	case "procedural":
		procedural.Handle(w)
	case "all":
		bridge.Handle(w)
		fmt.Fprintln(w)
		procedural.Handle(w)
	default:
		return fmt.Errorf("unknown variant %q, want classic, procedural or all", variant)
	}
	return nil
}
