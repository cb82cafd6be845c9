// Command turing runs the two-state busy beaver and prints the tape
package main

import (
	"fmt"
	"os"

	"github.com/librescoot/mode"
	"github.com/librescoot/mode/internal/config"
	"github.com/librescoot/mode/internal/turing"
)

type settings struct {
	Log      config.Log
	MaxSteps int `env:"TURING_MAX_STEPS" envDefault:"1000"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg settings
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	m := turing.NewMachine(mode.WithLogger(logger), mode.WithName("busy-beaver"))
	tape := turing.NewTape()

	steps, err := turing.Run(m, tape, cfg.MaxSteps)
	if err != nil {
		return err
	}

	logger.Info("halted", "tape", tape.ID, "steps", steps, "ones", tape.Ones())
	fmt.Println(tape)
	return nil
}
