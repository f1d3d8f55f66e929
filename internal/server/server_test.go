package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type echoHandler struct{}

func (echoHandler) HandleMessage(sender, body string) []string {
	return []string{"echo: " + body}
}

func newTestServer() *Server {
	return New(echoHandler{}, "", zap.NewNop())
}

func TestWhatsappWebhook(t *testing.T) {
	s := newTestServer()

	form := url.Values{"From": {"whatsapp:+972501234567"}, "Body": {"Milk 2"}}
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "<Message>echo: Milk 2</Message>")
}

func TestWhatsappWebhookMissingSender(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader("Body=Milk"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestIndex(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
