package traintracker

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status   string `json:"status"`
	Records  int    `json:"records"`
	Stations int    `json:"stations"`
}

func (a *App) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:   "ok",
		Records:  a.Dataset.Len(),
		Stations: len(a.Dataset.Stations()),
	})
}
