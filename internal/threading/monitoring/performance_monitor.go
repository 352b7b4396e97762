package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

const (
	lowFPSThreshold        = 30
	highMemoryThresholdMB  = 500
	nanosecondsPerSecond   = float64(time.Second)
	nanosecondsPerMilliSec = float64(time.Millisecond)
)

// PerformanceMonitor tracks frame and raycast timings
type PerformanceMonitor struct {
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds, last frame

	raycastTime atomic.Uint64 // nanoseconds, last raycast pass

	columnsCast atomic.Uint64
	columnsHit  atomic.Uint64

	mutex          sync.RWMutex
	totalFrameTime time.Duration
	startTime      time.Time
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime: time.Now(),
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	frameTime := time.Since(ft.startTime)
	ft.monitor.frameTime.Store(uint64(frameTime.Nanoseconds()))
	ft.monitor.frameCount.Add(1)

	ft.monitor.mutex.Lock()
	ft.monitor.totalFrameTime += frameTime
	ft.monitor.mutex.Unlock()
}

// RaycastTimer helps measure raycasting performance
type RaycastTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartRaycast begins raycast timing
func (pm *PerformanceMonitor) StartRaycast() *RaycastTimer {
	return &RaycastTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndRaycast completes raycast timing
func (rt *RaycastTimer) EndRaycast() {
	rt.monitor.raycastTime.Store(uint64(time.Since(rt.startTime).Nanoseconds()))
}

// RecordColumns adds one frame's column counts: how many rays were cast and
// how many of them hit a wall.
func (pm *PerformanceMonitor) RecordColumns(cast, hit uint64) {
	pm.columnsCast.Add(cast)
	pm.columnsHit.Add(hit)
}

// FrameMetrics is a snapshot of the monitor's counters
type FrameMetrics struct {
	FrameCount      uint64
	FramesPerSecond float64
	AvgFrameTimeMS  float64
	RaycastTimeMS   float64
	HitRatio        float64
	MemoryUsageMB   uint64
	UptimeSeconds   float64
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() FrameMetrics {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	frameCount := pm.frameCount.Load()
	frameTime := pm.frameTime.Load()
	fps := 0.0
	if frameTime > 0 {
		fps = nanosecondsPerSecond / float64(frameTime)
	}

	avgFrameTime := 0.0
	if frameCount > 0 {
		avgFrameTime = float64(pm.totalFrameTime.Nanoseconds()) / float64(frameCount) / nanosecondsPerMilliSec
	}

	hitRatio := 0.0
	if cast := pm.columnsCast.Load(); cast > 0 {
		hitRatio = float64(pm.columnsHit.Load()) / float64(cast)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return FrameMetrics{
		FrameCount:      frameCount,
		FramesPerSecond: fps,
		AvgFrameTimeMS:  avgFrameTime,
		RaycastTimeMS:   float64(pm.raycastTime.Load()) / nanosecondsPerMilliSec,
		HitRatio:        hitRatio,
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
		UptimeSeconds:   time.Since(pm.startTime).Seconds(),
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts checks for performance issues and returns alerts
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)
	currentTime := time.Now()

	if frameTime := pm.frameTime.Load(); frameTime > 0 {
		fps := nanosecondsPerSecond / float64(frameTime)
		if fps < lowFPSThreshold {
			alerts = append(alerts, PerformanceAlert{
				Type:      "low_fps",
				Message:   "Frame rate is below 30 FPS",
				Value:     fps,
				Threshold: lowFPSThreshold,
				Timestamp: currentTime,
			})
		}
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	memoryMB := float64(memStats.Alloc) / 1024 / 1024
	if memoryMB > highMemoryThresholdMB {
		alerts = append(alerts, PerformanceAlert{
			Type:      "high_memory",
			Message:   "Memory usage is above 500MB",
			Value:     memoryMB,
			Threshold: highMemoryThresholdMB,
			Timestamp: currentTime,
		})
	}

	return alerts
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.raycastTime.Store(0)
	pm.columnsCast.Store(0)
	pm.columnsHit.Store(0)

	pm.mutex.Lock()
	pm.totalFrameTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
