package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, memory statistics and the peak object spin speed.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	peakSpeed float32
	last      Snapshot

	now    func() time.Time
	logger *log.Logger
}

// Snapshot is the set of statistics reported at the end of an interval.
type Snapshot struct {
	FPS       float64
	HeapMB    float64
	SysMB     float64
	NumGC     uint32
	PeakSpeed float32
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithUpdateInterval sets how often statistics are logged. Non-positive values keep
// the default of one second.
//
// Parameters:
//   - d: the reporting interval
//
// Returns:
//   - ProfilerOption: functional option to set the interval
func WithUpdateInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithLogger sets the logger statistics are written to.
//
// Parameters:
//   - l: the destination logger
//
// Returns:
//   - ProfilerOption: functional option to set the logger
func WithLogger(l *log.Logger) ProfilerOption {
	return func(p *Profiler) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
		logger:         log.Default(),
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// ObserveSpeed records a spin speed sample. The largest magnitude seen during the
// current interval is reported with the next stats line.
//
// Parameters:
//   - speed: signed spin speed in radians per frame
func (p *Profiler) ObserveSpeed(speed float32) {
	if speed < 0 {
		speed = -speed
	}
	p.peakSpeed = max(p.peakSpeed, speed)
}

// Last returns the statistics reported by the most recent interval.
//
// Returns:
//   - Snapshot: the last reported statistics, zero before the first report
func (p *Profiler) Last() Snapshot {
	return p.last
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, heap usage, allocation rate, GC count/pause times, total memory
// and peak spin speed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed >= p.updateInterval {
		fps := float64(p.frameCount) / elapsed.Seconds()

		runtime.ReadMemStats(&p.memStats)
		// Alloc: Bytes of allocated heap objects (live memory)
		// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
		// Sys: Total bytes of memory obtained from the OS (actual process footprint)
		allocMB := float64(p.memStats.Alloc) / 1024 / 1024
		sysMB := float64(p.memStats.Sys) / 1024 / 1024

		allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
		allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

		gcCount := p.memStats.NumGC
		var lastPauseUs, maxPauseUs uint64
		if gcCount > 0 {
			// PauseNs is a circular buffer of last 256 GC pauses
			lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

			startIdx := p.lastGCCount
			if gcCount-startIdx > 256 {
				startIdx = gcCount - 256
			}
			for i := startIdx; i < gcCount; i++ {
				pause := p.memStats.PauseNs[i%256] / 1000
				if pause > maxPauseUs {
					maxPauseUs = pause
				}
			}
		}

		p.logger.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB | Peak spin: %.4f rad/frame",
			fps, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB, p.peakSpeed)

		p.last = Snapshot{
			FPS:       fps,
			HeapMB:    allocMB,
			SysMB:     sysMB,
			NumGC:     gcCount,
			PeakSpeed: p.peakSpeed,
		}

		p.frameCount = 0
		p.lastTime = currentTime
		p.lastGCCount = gcCount
		p.lastTotalAlloc = p.memStats.TotalAlloc
		p.peakSpeed = 0
		return true
	}

	return false
}
