package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Check reports the health of one dependency.
type Check func() error

type HealthController struct {
	checks map[string]Check
}

func NewHealthController(checks map[string]Check) *HealthController {
	return &HealthController{checks: checks}
}

// Health handles GET /health
func (hc *HealthController) Health(c *gin.Context) {
	status := http.StatusOK
	results := make(map[string]string, len(hc.checks))
	for name, check := range hc.checks {
		if err := check(); err != nil {
			status = http.StatusServiceUnavailable
			results[name] = err.Error()
			continue
		}
		results[name] = "ok"
	}
	state := "ok"
	if status != http.StatusOK {
		state = "degraded"
	}
	c.JSON(status, gin.H{"status": state, "checks": results})
}
