package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"bear-reply/backend/internal/agent"
	"bear-reply/backend/internal/agent/deps"
	"bear-reply/backend/internal/agent/preset"
	"bear-reply/backend/internal/agent/prompt"
	"bear-reply/backend/internal/config"
	"bear-reply/backend/internal/middleware"
	"bear-reply/backend/internal/model"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/unicode/norm"
)

var (
	replier   *agent.Replier
	replierMu sync.RWMutex
)

// InitReplier loads the preset catalog and creates the generation backend
func InitReplier(ctx context.Context, cfg *config.Config) error {
	catalog, err := preset.Load(cfg.PresetsFile)
	if err != nil {
		return err
	}

	generator, err := agent.NewGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	SetReplier(agent.NewReplier(preset.NewSelector(catalog, nil), generator, cfg.Model))
	log.Printf("[INFO] Replier initialized backend=%s presets=%d default=%s",
		generator.Name(), len(catalog.All()), catalog.DefaultID())
	return nil
}

// SetReplier replaces the active replier; nil marks the service unavailable
func SetReplier(r *agent.Replier) {
	replierMu.Lock()
	defer replierMu.Unlock()
	replier = r
}

func currentReplier() *agent.Replier {
	replierMu.RLock()
	defer replierMu.RUnlock()
	return replier
}

// HandleReplyOptions answers OPTIONS requests the CORS layer passed through
// (those without an Origin header) with the same allow lists a preflight gets
func HandleReplyOptions(cfg *config.Config) gin.HandlerFunc {
	methods := strings.Join(corsMethods, ",")
	headers := strings.Join(corsHeaders, ",")
	maxAge := strconv.FormatInt(int64(corsMaxAge/time.Second), 10)

	return func(c *gin.Context) {
		if cfg.AllowAllOrigins() {
			c.Header("Access-Control-Allow-Origin", "*")
		}
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Max-Age", maxAge)
		c.Status(http.StatusNoContent)
	}
}

// HandleReplyInfo is a browser-friendly liveness check for the reply route
func HandleReplyInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "hint": prompt.UsageHint})
}

// HandleReply generates one reply for the posted text
func HandleReply(c *gin.Context) {
	startTime := time.Now()
	requestID := middleware.GetRequestID(c)

	var req model.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("Request body too large (max %d bytes)", maxErr.Limit),
			})
			return
		}
		log.Printf("[REPLY] id=%s invalid body: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.PostText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing postText"})
		return
	}

	// Normalize Unicode to NFC so lookalike sequences reach the model consistently
	req.PostText = norm.NFC.String(req.PostText)
	req.Preset = strings.TrimSpace(req.Preset)

	current := currentReplier()
	if current == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Reply service is not available"})
		return
	}

	resp, err := current.Reply(c.Request.Context(), req)
	if err != nil {
		log.Printf("[PERF] id=%s reply failed after %v", requestID, time.Since(startTime))
		writeReplyError(c, current.Backend(), err)
		return
	}

	log.Printf("[PERF] id=%s reply completed in %v preset=%s", requestID, time.Since(startTime), resp.Preset)
	c.JSON(http.StatusOK, resp)
}

// writeReplyError maps validation and backend failures to a JSON error
func writeReplyError(c *gin.Context, backend string, err error) {
	if errors.Is(err, agent.ErrMissingPostText) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing postText"})
		return
	}

	be := deps.AsBackendError(backend, err)
	if be.Quota() {
		log.Printf("[QUOTA] %s quota exceeded", be.Backend)
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":     fmt.Sprintf("%s quota exceeded (429). Add billing or raise limits, then redeploy.", quotaLabel(be.Backend)),
			"demoReply": prompt.DemoReply,
		})
		return
	}

	message := be.Message
	if message == "" {
		message = "Server error"
	}
	c.JSON(be.HTTPStatus(), gin.H{"error": message})
}

func quotaLabel(backend string) string {
	switch backend {
	case config.BackendOpenAI:
		return "OpenAI"
	case config.BackendGemini:
		return "Gemini"
	default:
		return "Backend"
	}
}
