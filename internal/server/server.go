// Package server exposes the Twilio webhook over HTTP.
package server

import (
	"net/http"

	"shopbot/internal/middleware"
	"shopbot/internal/twiml"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageHandler processes one inbound message and returns the replies
type MessageHandler interface {
	HandleMessage(sender, body string) []string
}

// Server wires the webhook routes
type Server struct {
	engine  *gin.Engine
	handler MessageHandler
	logger  *zap.Logger
}

// New builds the HTTP engine. An empty authToken disables signature checks.
func New(handler MessageHandler, authToken string, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{engine: engine, handler: handler, logger: logger}

	engine.GET("/", s.index)
	engine.GET("/health", s.health)
	engine.POST("/whatsapp", middleware.TwilioSignature(authToken, logger), s.whatsapp)

	return s
}

// Engine returns the underlying gin engine, for tests and http.Server wiring
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts serving on addr, blocking until the listener fails
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) index(c *gin.Context) {
	c.String(http.StatusOK, "WhatsApp inventory bot")
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// whatsapp handles the Twilio inbound-message webhook. The reply is TwiML;
// Twilio relays each Message element back to the sender.
func (s *Server) whatsapp(c *gin.Context) {
	sender := c.PostForm("From")
	body := c.PostForm("Body")
	if sender == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	replies := s.handler.HandleMessage(sender, body)

	out, err := twiml.Render(replies)
	if err != nil {
		s.logger.Error("Failed to render response", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/xml", []byte(out))
}
