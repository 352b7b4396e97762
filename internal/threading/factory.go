package threading

import (
	"raycaster/internal/threading/monitoring"
	"raycaster/internal/threading/rendering"
)

// ThreadingComponents holds all threading-related components
type ThreadingComponents struct {
	ParallelRenderer   *rendering.ParallelRenderer
	PerformanceMonitor *monitoring.PerformanceMonitor
}

// NewThreadingComponents creates the column renderer with the given worker
// count and a fresh performance monitor.
func NewThreadingComponents(workers int) *ThreadingComponents {
	return &ThreadingComponents{
		ParallelRenderer:   rendering.NewParallelRenderer(workers),
		PerformanceMonitor: monitoring.NewPerformanceMonitor(),
	}
}

// Shutdown gracefully shuts down all threading components
func (tc *ThreadingComponents) Shutdown() {
	if tc.ParallelRenderer != nil {
		tc.ParallelRenderer.Stop()
	}
	if tc.PerformanceMonitor != nil {
		tc.PerformanceMonitor.Reset()
	}
}

// GetPerformanceMetrics returns current performance metrics
func (tc *ThreadingComponents) GetPerformanceMetrics() monitoring.FrameMetrics {
	if tc.PerformanceMonitor != nil {
		return tc.PerformanceMonitor.GetCurrentMetrics()
	}
	return monitoring.FrameMetrics{}
}

// CheckPerformanceAlerts returns any performance warnings
func (tc *ThreadingComponents) CheckPerformanceAlerts() []monitoring.PerformanceAlert {
	if tc.PerformanceMonitor != nil {
		return tc.PerformanceMonitor.CheckPerformanceAlerts()
	}
	return nil
}
