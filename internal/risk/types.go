package risk

// Config tunes the assessor thresholds and lets deployments adjust individual
// symptom weights without a code change.
type Config struct {
	WatchThreshold  int            // aggregate score at or above this maps to watch
	UrgentThreshold int            // aggregate score at or above this maps to urgent
	WeightOverrides map[string]int // symptom code -> replacement base weight
}

// Validate fills default thresholds.
func (c *Config) Validate() {
	if c.WatchThreshold <= 0 {
		c.WatchThreshold = DefaultWatchThreshold
	}
	if c.UrgentThreshold <= c.WatchThreshold {
		c.UrgentThreshold = DefaultUrgentThreshold
	}
}
