package httpx

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// systemMetricsHandler reports process and host metrics. Remote-access test
// runs use this to correlate slow range fetches with host load; every field
// is best effort and degrades to an error string rather than failing the
// endpoint.
func systemMetricsHandler(root string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		metrics := gin.H{
			"program_goroutines":      runtime.NumGoroutine(),
			"program_memory_alloc_mb": float64(m.Alloc) / 1024 / 1024,
			"program_memory_sys_mb":   float64(m.Sys) / 1024 / 1024,
			"program_gc_cycles":       m.NumGC,
		}

		if memInfo, err := mem.VirtualMemory(); err == nil {
			metrics["system_memory_total_mb"] = float64(memInfo.Total) / (1024 * 1024)
			metrics["system_memory_used_percent"] = memInfo.UsedPercent
		} else {
			metrics["system_memory_error"] = err.Error()
		}

		if diskInfo, err := disk.Usage(root); err == nil {
			metrics["root_disk_total_mb"] = float64(diskInfo.Total) / (1024 * 1024)
			metrics["root_disk_free_mb"] = float64(diskInfo.Free) / (1024 * 1024)
			metrics["root_disk_used_percent"] = diskInfo.UsedPercent
		} else {
			metrics["root_disk_error"] = err.Error()
		}

		// Instantaneous sample; a sampling interval would block the
		// request for its full duration.
		if cpuInfo, err := cpu.Percent(0, false); err == nil && len(cpuInfo) > 0 {
			metrics["system_cpu_percent"] = cpuInfo[0]
		} else if err != nil {
			metrics["system_cpu_error"] = err.Error()
		}

		c.JSON(http.StatusOK, metrics)
	}
}
