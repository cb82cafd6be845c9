// Command traffic cycles a traffic light for a number of ticks
package main

import (
	"fmt"
	"os"

	"github.com/librescoot/mode"
	"github.com/librescoot/mode/internal/config"
	"github.com/librescoot/mode/internal/traffic"
)

type settings struct {
	Log    config.Log
	Ticks  int `env:"TRAFFIC_TICKS" envDefault:"21"`
	Red    int `env:"TRAFFIC_RED" envDefault:"3"`
	Green  int `env:"TRAFFIC_GREEN" envDefault:"3"`
	Yellow int `env:"TRAFFIC_YELLOW" envDefault:"1"`
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

	timing := traffic.Timing{traffic.Red: cfg.Red, traffic.Green: cfg.Green, traffic.Yellow: cfg.Yellow}
	signal := traffic.NewSignal(timing, mode.WithLogger(logger), mode.WithName("signal"))
	signal.OnSwap(func(from, to *traffic.Light) {
		logger.Info("light changed", "from", from.Color, "to", to.Color, "cycles", to.Cycles)
	})

	for range cfg.Ticks {
		traffic.Tick(signal)
	}

	fmt.Printf("%s after %d ticks, %d cycles\n", signal.Base().Color, cfg.Ticks, signal.Base().Cycles)
	return nil
}
