package game

import "fmt"

// maybeLogStats logs frame metrics every debug.stats_interval frames and
// reports any performance alerts at warn level.
func (g *Game) maybeLogStats() {
	interval := g.config.Debug.StatsInterval
	if interval <= 0 || g.frameCount%uint64(interval) != 0 {
		return
	}

	metrics := g.threading.GetPerformanceMetrics()
	g.logger.Debug("frame stats",
		"frame", metrics.FrameCount,
		"fps", fmt.Sprintf("%.1f", metrics.FramesPerSecond),
		"avg_frame_ms", fmt.Sprintf("%.3f", metrics.AvgFrameTimeMS),
		"raycast_ms", fmt.Sprintf("%.3f", metrics.RaycastTimeMS),
		"hit_ratio", fmt.Sprintf("%.2f", metrics.HitRatio),
		"mem_mb", metrics.MemoryUsageMB,
	)

	for _, alert := range g.threading.CheckPerformanceAlerts() {
		g.logger.Warn(alert.Message,
			"type", alert.Type,
			"value", fmt.Sprintf("%.1f", alert.Value),
			"threshold", alert.Threshold,
		)
	}
}
