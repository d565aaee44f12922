package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Church Ledger API v1"})
}

// newHealthHandler reports liveness, optionally pinging the database.
func newHealthHandler(dbPool *pgxpool.Pool, checkDB bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checkDB && dbPool != nil {
			if err := dbPool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}
