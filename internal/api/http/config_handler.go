package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"battleship-engine/internal/config"
	"battleship-engine/internal/engine"
)

type ConfigHandler struct {
	cfg config.Config
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// GetEnginesHandler lists the engines a request may name.
// @Summary List engines
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /engines [get]
func (h *ConfigHandler) GetEnginesHandler(c *gin.Context) {
	type info struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}
	out := []info{}
	for _, t := range engine.Types() {
		out = append(out, info{Type: string(t), Name: t.Name()})
	}
	c.JSON(http.StatusOK, gin.H{
		"engines": out,
		"default": h.cfg.DefaultEngine,
	})
}

// GetWeightsHandler returns the density weights and placement cap in use.
// @Summary Get engine tuning
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/weights [get]
func (h *ConfigHandler) GetWeightsHandler(c *gin.Context) {
	opts := h.cfg.EngineOptions()
	c.JSON(http.StatusOK, gin.H{
		"weights":              opts.Weights,
		"maxPlacementAttempts": opts.MaxPlacementAttempts,
	})
}
