// Command activity runs a person through working, eating and sleeping, one
// hour per tick.
package main

import (
	"fmt"
	"os"

	"github.com/librescoot/mode"
	"github.com/librescoot/mode/internal/activity"
	"github.com/librescoot/mode/internal/config"
)

type settings struct {
	Log   config.Log
	Hours int `env:"ACTIVITY_HOURS" envDefault:"82"`
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

	person := activity.NewPerson(
		mode.WithLogger(logger),
		mode.WithName("person"),
		mode.WithSwapCallback(func(from, to activity.Activity) {
			logger.Info("activity changed", "from", from.Status().Activity, "to", to.Status().Activity)
		}),
	)

	for hour := range cfg.Hours {
		activity.Tick(person)
		logger.Debug("hour passed", "hour", hour+1, "status", person.Base().Status())
	}

	logger.Info("done", "hours", cfg.Hours, "changes", person.Transitions(), "status", person.Base().Status())
	return nil
}
