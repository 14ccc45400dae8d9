package bridge

import (
	"fmt"
	"time"
)

// Config holds the auto-repeat timing for the scheduler.
type Config struct {
	TickInterval time.Duration `help:"Scheduler tick period" default:"10ms" env:"KEYWIRE_REPEAT_TICK_INTERVAL"`
	Interval     time.Duration `help:"Auto-repeat interval; must be a multiple of the tick period" default:"500ms" env:"KEYWIRE_REPEAT_INTERVAL"`
}

// Validate checks that the repeat interval divides evenly into ticks.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.Interval <= 0 || c.Interval%c.TickInterval != 0 {
		return fmt.Errorf("repeat interval %s is not a positive multiple of the tick interval %s", c.Interval, c.TickInterval)
	}
	return nil
}

// ticksPerRepeat returns the bound of the repeat phase counter.
func (c Config) ticksPerRepeat() uint32 {
	return uint32(c.Interval / c.TickInterval)
}
