package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Admin.Token) < 16 {
		return fmt.Errorf("admin.token must be at least 16 characters (got %d)", len(c.Admin.Token))
	}

	if c.RateLimit.AdminPerMinute <= 0 {
		return fmt.Errorf("rate_limit.admin_per_minute must be > 0 (got %d)", c.RateLimit.AdminPerMinute)
	}

	if c.Scheduler.Interval <= 0 {
		return fmt.Errorf("scheduler.interval must be > 0 (got %v)", c.Scheduler.Interval)
	}
	if c.Scheduler.BatchSize <= 0 {
		return fmt.Errorf("scheduler.batch_size must be > 0 (got %d)", c.Scheduler.BatchSize)
	}

	if err := c.DoorLoop.validate(); err != nil {
		return fmt.Errorf("doorloop: %w", err)
	}

	return nil
}

func (c *DoorLoopConfig) validate() error {
	if c.SinceDays <= 0 {
		return fmt.Errorf("since_days must be > 0 (got %d)", c.SinceDays)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", c.PageSize)
	}
	if c.PageDelay < 0 {
		return fmt.Errorf("page_delay must be >= 0 (got %v)", c.PageDelay)
	}
	return nil
}
