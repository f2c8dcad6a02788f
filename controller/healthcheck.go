package controller

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Healthcheck answers with liveness plus the primary store's state.
func (ctrl *Controller) Healthcheck(c *gin.Context) {
	ctx := c.Request.Context()

	database := "OK"
	if err := ctrl.Infra.Postgres.Ping(); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Healthcheck] Database ping failed")
		database = "UNREACHABLE"
	}

	respondSuccess(c, 200, gin.H{
		"status":   "OK",
		"database": database,
		"time":     time.Now().UTC().Format(time.RFC3339),
	}, "Service is healthy")
}

// HealthcheckStorage pulls the storage cluster report through the admin
// API and summarizes it.
func (ctrl *Controller) HealthcheckStorage(c *gin.Context) {
	ctx := c.Request.Context()

	info, err := ctrl.Infra.Minio.StorageInfo(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Healthcheck] Storage info request failed")
		respondError(c, 503, "Storage is unreachable")
		return
	}

	respondSuccess(c, 200, gin.H{
		"mode":    info.Mode,
		"region":  info.Region,
		"buckets": info.Buckets.Count,
		"objects": info.Objects.Count,
		"usage":   info.Usage.Size,
	}, "Storage is healthy")
}
