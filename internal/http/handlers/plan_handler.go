// README: Plan handlers (generation, chat, PDF export).
package handlers

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"travelbot/internal/export"
	"travelbot/internal/planner"
)

// Generation can produce long outputs; chat answers are shorter.
const (
	generateTimeout = 60 * time.Second
	chatTimeout     = 30 * time.Second
)

const pdfFilename = "My_Trip_Plan.pdf"

type PlanHandler struct {
	planner *planner.Service
}

func NewPlanHandler(svc *planner.Service) *PlanHandler {
	return &PlanHandler{planner: svc}
}

type chatReq struct {
	Plan     *planner.Itinerary         `json:"plan"`
	History  []planner.ConversationTurn `json:"history"`
	Question string                     `json:"question"`
}

type pdfReq struct {
	Plan *planner.Itinerary `json:"plan"`
}

// Generate handles POST /api/generate-plan.
func (h *PlanHandler) Generate(c *gin.Context) {
	var prefs planner.TripPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		writeError(c, http.StatusBadRequest, "invalid preferences payload")
		return
	}
	if prefs.RecreationType == "" {
		prefs.RecreationType = "General"
	}
	if prefs.Diet == "" {
		prefs.Diet = "None"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	itinerary, err := h.planner.GeneratePlan(ctx, prefs)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, itinerary)
}

// Chat handles POST /api/chat. Failures surface inside the answer field so
// the conversational flow is not interrupted.
func (h *PlanHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		writeError(c, http.StatusBadRequest, "missing question")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
	defer cancel()

	answer := h.planner.Chat(ctx, req.Plan, req.History, req.Question)
	writeJSON(c, http.StatusOK, map[string]any{"answer": answer})
}

// SavePDF handles POST /api/save-pdf. The document is staged in a temp file
// that is removed after delivery regardless of whether delivery succeeded.
func (h *PlanHandler) SavePDF(c *gin.Context) {
	var req pdfReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	data, err := export.PDF(req.Plan)
	if err != nil {
		log.Printf("PDF Error: %v", err)
		writeError(c, http.StatusInternalServerError, "failed to generate PDF")
		return
	}

	tmp, err := os.CreateTemp("", "trip-plan-*.pdf")
	if err != nil {
		log.Printf("PDF temp file: %v", err)
		writeError(c, http.StatusInternalServerError, "failed to generate PDF")
		return
	}
	tmpPath := tmp.Name()
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			log.Printf("PDF cleanup: %v", err)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		log.Printf("PDF write: %v", err)
		writeError(c, http.StatusInternalServerError, "failed to generate PDF")
		return
	}
	tmp.Close()

	c.FileAttachment(tmpPath, pdfFilename)
}
