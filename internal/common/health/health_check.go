package health

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/alex909w/eventify/internal/store"
)

// HealthStatus represents the overall health of the application
type HealthStatus struct {
	Status    string                 `json:"status"` // "healthy", "degraded", "unhealthy"
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Checks    map[string]interface{} `json:"checks"`
	Duration  int64                  `json:"duration_ms"`
}

// ComponentHealth represents health of a single component
type ComponentHealth struct {
	Healthy bool        `json:"healthy"`
	Details interface{} `json:"details,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SystemMetrics captures current system metrics
type SystemMetrics struct {
	MemoryUsageMB      uint64  `json:"memory_usage_mb"`
	MemoryUsagePercent float64 `json:"memory_usage_percent"`
	GoroutineCount     int     `json:"goroutine_count"`
	CPUNumCores        int     `json:"cpu_num_cores"`
	Uptime             int64   `json:"uptime_seconds"`
}

// HealthChecker provides health check functionality
type HealthChecker struct {
	kv              store.KV
	version         string
	startTime       time.Time
	mu              sync.RWMutex
	lastCheckTime   time.Time
	lastCheckStatus string
}

// NewHealthChecker creates a new health checker over the active store
func NewHealthChecker(kv store.KV, version string) *HealthChecker {
	return &HealthChecker{
		kv:        kv,
		version:   version,
		startTime: time.Now(),
	}
}

// Check performs a complete health check
func (hc *HealthChecker) Check() HealthStatus {
	start := time.Now()
	status := HealthStatus{
		Timestamp: start,
		Version:   hc.version,
		Checks:    make(map[string]interface{}),
	}

	storeCheck := hc.checkStore()
	status.Checks["store"] = storeCheck

	memCheck := hc.checkMemory()
	status.Checks["memory"] = memCheck

	goroutineCount := runtime.NumGoroutine()
	status.Checks["goroutines"] = map[string]interface{}{
		"count":   goroutineCount,
		"healthy": goroutineCount < 10000, // Alert if > 10k goroutines
	}

	uptime := time.Since(hc.startTime).Seconds()
	status.Checks["uptime_seconds"] = int64(uptime)

	allHealthy := true
	if check, ok := storeCheck.(map[string]interface{}); ok {
		if !check["healthy"].(bool) {
			allHealthy = false
		}
	} else if check, ok := storeCheck.(ComponentHealth); ok && !check.Healthy {
		allHealthy = false
	}

	if check, ok := memCheck.(map[string]interface{}); ok {
		if !check["healthy"].(bool) {
			allHealthy = false
		}
	}

	if goroutineCount >= 10000 {
		allHealthy = false
	}

	if allHealthy {
		status.Status = "healthy"
	} else {
		status.Status = "degraded"
	}

	status.Duration = time.Since(start).Milliseconds()

	hc.mu.Lock()
	hc.lastCheckTime = start
	hc.lastCheckStatus = status.Status
	hc.mu.Unlock()

	return status
}

// checkStore verifies store connectivity and read latency
func (hc *HealthChecker) checkStore() interface{} {
	if hc.kv == nil {
		return ComponentHealth{
			Healthy: false,
			Error:   "store not initialized",
		}
	}

	start := time.Now()

	// A read of a key that may not exist still exercises the full path
	_, err := hc.kv.Get("health_ping")
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return ComponentHealth{
			Healthy: false,
			Error:   fmt.Sprintf("store read failed: %v", err),
		}
	}

	latency := time.Since(start).Milliseconds()

	return map[string]interface{}{
		"healthy":    true,
		"latency_ms": latency,
		"connection": "connected",
		"latency_ok": latency < 100, // Alert if latency > 100ms
	}
}

// checkMemory checks memory usage
func (hc *HealthChecker) checkMemory() interface{} {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	memoryMB := m.Alloc / 1024 / 1024
	memoryPercent := float64(m.Alloc) / float64(m.TotalAlloc) * 100

	healthy := memoryMB < 500 // Less than 500MB

	return map[string]interface{}{
		"healthy":           healthy,
		"allocated_mb":      memoryMB,
		"allocated_percent": memoryPercent,
		"total_alloc_mb":    m.TotalAlloc / 1024 / 1024,
		"sys_mb":            m.Sys / 1024 / 1024,
		"num_gc":            m.NumGC,
		"memory_ok":         memoryMB < 500,
	}
}

// IsHealthy returns true if system is healthy
func (hc *HealthChecker) IsHealthy() bool {
	hc.mu.RLock()
	status := hc.lastCheckStatus
	hc.mu.RUnlock()

	return status == "healthy"
}

// IsReady returns true if system is ready to serve traffic
func (hc *HealthChecker) IsReady() bool {
	if hc.kv == nil {
		return false
	}

	_, err := hc.kv.Get("health_ping")
	return err == nil || errors.Is(err, store.ErrKeyNotFound)
}

// IsAlive returns true if system is running
func (hc *HealthChecker) IsAlive() bool {
	return true
}

// GetMetrics returns current system metrics
func (hc *HealthChecker) GetMetrics() SystemMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return SystemMetrics{
		MemoryUsageMB:      m.Alloc / 1024 / 1024,
		MemoryUsagePercent: float64(m.Alloc) / float64(m.TotalAlloc) * 100,
		GoroutineCount:     runtime.NumGoroutine(),
		CPUNumCores:        runtime.NumCPU(),
		Uptime:             int64(time.Since(hc.startTime).Seconds()),
	}
}
