package main

import (
	"aarambh/domain"
	"aarambh/internal"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the configuration, builds the Aarambh and writes its proclamation to out.
func run(out io.Writer) error {
	config, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	aarambh := domain.NewAarambh(config.Message)
	message := aarambh.Proclaim()
	log.Info("Proclaiming", "message", message, "script", aarambh.Script())

	if config.Colours {
		message = color.New(color.FgYellow, color.OpBold).Render(message)
	}
	if _, err = fmt.Fprintln(out, message); err != nil {
		return fmt.Errorf("failed to write proclamation: %w", err)
	}
	return nil
}
