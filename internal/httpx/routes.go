package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/honicky/anndata-duckdb-extension/internal"
)

// Routes wires the fixture server onto a gin engine. Fixture files are
// served from the root of the URL space via the NoRoute handler so that any
// path not claimed by an operational endpoint maps straight onto the serving
// root, the way the test harnesses address their fixtures. watcher may be
// nil when real-time catalog refresh is disabled.
func Routes(r *gin.Engine, root string, catalog *internal.Catalog, watcher *internal.FixtureWatcher) {
	startedAt := time.Now()

	r.NoRoute(func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead:
			serveFixture(c, root)
		default:
			c.Status(http.StatusMethodNotAllowed)
		}
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"root":          root,
			"uptimeSeconds": int64(time.Since(startedAt).Seconds()),
		})
	})

	r.GET("/stats", func(c *gin.Context) {
		count, totalBytes, lastScan := catalog.Stats()
		c.JSON(http.StatusOK, gin.H{
			"fixtures":   count,
			"totalBytes": totalBytes,
			"lastScan":   lastScan,
		})
	})

	r.GET("/fixtures", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": catalog.Snapshot()})
	})

	r.GET("/watcher-health", func(c *gin.Context) {
		if watcher == nil {
			c.JSON(http.StatusOK, gin.H{"status": "disabled"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "enabled",
			"stats":  watcher.HealthStats(),
		})
	})

	r.GET("/system-metrics", systemMetricsHandler(root))
}
