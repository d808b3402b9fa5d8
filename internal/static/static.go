package static

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// SPAHandler serves the bundled client application for any path that no
// API route matched. Files under dist are served directly; everything
// else falls back to index.html so client-side routing keeps working.
func SPAHandler(dist string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := filepath.Join(dist, filepath.Clean("/"+c.Request.URL.Path))

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		c.File(filepath.Join(dist, "index.html"))
	}
}
