// Package handlers exposes the assistant over HTTP.
package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/pravin157/Flight-Schedule-Optimization/docs"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/dispatcher"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/events"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/models"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// NoPromptMessage is returned when a request carries no prompt.
const NoPromptMessage = "No prompt provided"

// Dispatcher answers a prompt.
type Dispatcher interface {
	Dispatch(ctx context.Context, prompt string) dispatcher.Reply
}

// HistoryStore persists and lists answered prompts.
type HistoryStore interface {
	Record(ctx context.Context, entry models.QueryLog) (models.QueryLog, error)
	List(ctx context.Context, limit, offset int) ([]models.QueryLog, int64, error)
}

// HealthReporter reports dataset availability.
type HealthReporter interface {
	Snapshot() models.HealthResponse
}

// API provides the HTTP handlers. history and health may be nil.
type API struct {
	dispatcher Dispatcher
	history    HistoryStore
	publisher  events.Publisher
	health     HealthReporter
}

// NewAPI creates a new API. A nil publisher discards events.
func NewAPI(d Dispatcher, history HistoryStore, publisher events.Publisher, health HealthReporter) *API {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &API{
		dispatcher: d,
		history:    history,
		publisher:  publisher,
		health:     health,
	}
}

// NewRouter builds a gin engine with logging, recovery and permissive CORS
// and registers the API routes on it.
func NewRouter(api *API) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.Default())
	api.RegisterRoutes(router)
	return router
}

// RegisterRoutes registers the API routes with the given Gin router.
func (a *API) RegisterRoutes(router *gin.Engine) {
	router.POST("/ask", a.askHandler)
	router.GET("/healthz", a.healthHandler)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/ask", a.askHandler)
		v1.GET("/history", a.listHistoryHandler)
	}
}

// askHandler godoc
// @Summary Ask the flight assistant a question
// @Description Sends the prompt to the language model, runs the analysis it selects and returns the answer. Content is an HTML fragment for "data" replies.
// @Tags assistant
// @Accept  json
// @Produce  json
// @Param   request  body   models.AskRequest   true  "Question"
// @Success 200 {object} models.AskResponse "Answer, conversational reply, or unknown-function error"
// @Failure 400 {object} models.AskResponse "No prompt provided"
// @Failure 500 {object} models.AskResponse "The selected analysis failed"
// @Router /ask [post]
func (a *API) askHandler(c *gin.Context) {
	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, models.AskResponse{Type: string(dispatcher.ReplyError), Content: NoPromptMessage})
		return
	}

	start := time.Now()
	reply := a.dispatcher.Dispatch(c.Request.Context(), req.Prompt)
	latency := time.Since(start)

	if reply.Status == 0 {
		reply.Status = http.StatusOK
	}
	a.recordQuery(c.Request.Context(), req.Prompt, reply, latency)

	c.JSON(reply.Status, models.AskResponse{Type: string(reply.Type), Content: reply.Content})
}

// recordQuery logs the answered prompt to the history store and the event
// publisher. Failures are logged and never affect the reply.
func (a *API) recordQuery(ctx context.Context, prompt string, reply dispatcher.Reply, latency time.Duration) {
	entry := models.QueryLog{
		ID:         uuid.New(),
		Prompt:     prompt,
		Function:   reply.Function,
		ReplyType:  string(reply.Type),
		HTTPStatus: reply.Status,
		LatencyMS:  latency.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}

	if a.history != nil {
		if _, err := a.history.Record(ctx, entry); err != nil {
			log.Printf("Failed to record query %s: %v", entry.ID, err)
		}
	}

	err := a.publisher.Publish(events.QueryEvent{
		ID:         entry.ID,
		Prompt:     entry.Prompt,
		Function:   entry.Function,
		ReplyType:  entry.ReplyType,
		HTTPStatus: entry.HTTPStatus,
		LatencyMS:  entry.LatencyMS,
		Timestamp:  entry.CreatedAt,
	})
	if err != nil {
		log.Printf("Failed to publish query event %s: %v", entry.ID, err)
	}
}

// listHistoryHandler godoc
// @Summary List answered prompts
// @Description Get a page of the query log, newest first.
// @Tags history
// @Produce  json
// @Param   limit   query  int  false  "Page size (default 10, max 100)"
// @Param   offset  query  int  false  "Number of entries to skip"
// @Success 200 {object} models.PaginatedResponse{data=[]models.QueryLog} "Page of query log entries"
// @Failure 400 {object} models.APIError "Invalid pagination parameters"
// @Failure 503 {object} models.APIError "History is disabled"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /api/v1/history [get]
func (a *API) listHistoryHandler(c *gin.Context) {
	if a.history == nil {
		RespondWithError(c, http.StatusServiceUnavailable, models.ErrorCodeHistoryDisabled, "Query history is disabled.", nil)
		return
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid limit parameter: not a number.", gin.H{"limit": limitStr})
		return
	}
	if limit <= 0 {
		limit = DefaultLimit
	} else if limit > MaxLimit {
		limit = MaxLimit
	}

	offsetStr := c.DefaultQuery("offset", "0")
	offset, err := strconv.Atoi(offsetStr)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid offset parameter: not a number.", gin.H{"offset": offsetStr})
		return
	}
	if offset < 0 {
		offset = 0
	}

	entries, total, err := a.history.List(c.Request.Context(), limit, offset)
	if err != nil {
		log.Printf("Failed to list query history: %v", err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to list query history.", nil)
		return
	}

	RespondWithSuccess(c, http.StatusOK, models.PaginatedResponse{
		Data:   entries,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// healthHandler godoc
// @Summary Service health
// @Description Reports whether the dataset files are available. Status is "degraded" when a required dataset is missing.
// @Tags health
// @Produce  json
// @Success 200 {object} models.HealthResponse
// @Router /healthz [get]
func (a *API) healthHandler(c *gin.Context) {
	if a.health == nil {
		RespondWithSuccess(c, http.StatusOK, models.HealthResponse{
			Status:    "ok",
			CheckedAt: time.Now().UTC(),
			Datasets:  []models.DatasetStatus{},
		})
		return
	}
	RespondWithSuccess(c, http.StatusOK, a.health.Snapshot())
}
