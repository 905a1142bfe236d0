package fractal

import (
	"fmt"
	"time"
)

// frameStats holds per-frame timing. Only populated when Config.Debug is set.
type frameStats struct {
	events      int
	rasterTime  time.Duration
	overlayTime time.Duration
	presentTime time.Duration
}

// logf writes one prefixed log line.
func (s *Session) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cfg.LogOutput, "[xfractal] "+format+"\n", args...)
}

// debugLog prints frame timings.
func (s *Session) debugLog(stats frameStats) {
	if !s.cfg.Debug {
		return
	}
	total := stats.rasterTime + stats.overlayTime + stats.presentTime
	s.logf("frame %d: events: %d | raster: %v | overlay: %v | present: %v | total: %v",
		s.frames, stats.events, stats.rasterTime, stats.overlayTime, stats.presentTime, total)
}
