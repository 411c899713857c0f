package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/heptiolabs/healthcheck"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/w0lphi/SE2Einzelprojekt/internal/store"
)

var resultStore = store.New()

type gameResultRequest struct {
	Player   string    `json:"player" binding:"required"`
	Game     string    `json:"game" binding:"required"`
	Score    int       `json:"score"`
	PlayedAt time.Time `json:"playedAt"`
}

type gameResultResponse struct {
	ID       int64     `json:"id"`
	Player   string    `json:"player"`
	Game     string    `json:"game"`
	Score    int       `json:"score"`
	PlayedAt time.Time `json:"playedAt"`
}

func setup() *http.Server {
	router := gin.Default()

	router.GET("/results", listResults)
	router.POST("/results", createResult)
	router.GET("/results/:id", getResult)
	router.PUT("/results/:id", updateResult)
	router.DELETE("/results/:id", deleteResult)
	router.GET("/leaderboard", getLeaderboard)

	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-count", healthcheck.GoroutineCountCheck(200))
	router.GET("/healthz", gin.WrapF(health.LiveEndpoint))
	router.GET("/readyz", gin.WrapF(health.ReadyEndpoint))

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", apiHost, apiPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		ReadTimeout:       5 * time.Minute,
		WriteTimeout:      20 * time.Second,
	}
}

func toResponse(result store.GameResult) gameResultResponse {
	response := gameResultResponse{}
	if err := copier.Copy(&response, &result); err != nil {
		log.Errorf("failed to copy game result to response due to: %v", err)
	}

	return response
}

func listResults(c *gin.Context) {
	c.JSON(http.StatusOK, lo.Map(resultStore.List(), func(result store.GameResult, _ int) gameResultResponse {
		return toResponse(result)
	}))
}

func createResult(c *gin.Context) {
	request := new(gameResultRequest)
	if err := c.ShouldBindJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := resultStore.Add(store.GameResult{
		Player:   request.Player,
		Game:     request.Game,
		Score:    request.Score,
		PlayedAt: request.PlayedAt,
	})

	c.JSON(http.StatusCreated, toResponse(result))
}

func resultID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid result id: %s", c.Param("id"))})

		return 0, false
	}

	return id, true
}

func getResult(c *gin.Context) {
	id, ok := resultID(c)
	if !ok {
		return
	}

	result, found := resultStore.Get(id)
	if !found {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, toResponse(result))
}

func updateResult(c *gin.Context) {
	id, ok := resultID(c)
	if !ok {
		return
	}

	request := new(gameResultRequest)
	if err := c.ShouldBindJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, found := resultStore.Update(id, store.GameResult{
		Player:   request.Player,
		Game:     request.Game,
		Score:    request.Score,
		PlayedAt: request.PlayedAt,
	})
	if !found {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, toResponse(result))
}

func deleteResult(c *gin.Context) {
	id, ok := resultID(c)
	if !ok {
		return
	}

	if !resultStore.Delete(id) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}

func getLeaderboard(c *gin.Context) {
	c.JSON(http.StatusOK, lo.Map(resultStore.Leaderboard(), func(result store.GameResult, _ int) gameResultResponse {
		return toResponse(result)
	}))
}
