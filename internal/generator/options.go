package generator

import "github.com/sirupsen/logrus"

// Options configures puzzle generation behavior.
type Options struct {
	GridSeed  int64 // Seed for complete-grid construction (0 = time-based)
	CarveSeed int64 // Seed for cell removal (0 = time-based)
	MinHints  int   // Inclusive lower bound on remaining hints
	MaxHints  int   // Exclusive upper bound on remaining hints
	// Logger receives generation reports. nil uses the standard logger.
	Logger *logrus.Logger
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		MinHints: 28,
		MaxHints: 36,
	}
}
