package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	mongoClient *mongo.Client
	startedAt   time.Time
}

func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{
		mongoClient: client,
		startedAt:   time.Now(),
	}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	if err := h.mongoClient.Ping(ctx, nil); err != nil {
		dbStatus = "down"
	}

	var cpuPercent float64
	// interval 0 reports usage since the previous call instead of blocking
	if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
		cpuPercent = percentages[0]
	}

	var memPercent float64
	if vm, err := mem.VirtualMemory(); err == nil {
		memPercent = vm.UsedPercent
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"database":       dbStatus,
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"cpu_percent":    cpuPercent,
		"memory_percent": memPercent,
	})
}
