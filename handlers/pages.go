package handlers

import (
	"net/http"

	"vishalaksha/models"

	"github.com/gin-gonic/gin"
)

// PagesHandler serves the marketing and form pages. Routing is a static
// path-to-template mapping; the only dynamic data is the consultation rate
// and the issue categories on the booking page.
type PagesHandler struct {
	ConsultationRate int64
}

// NewPagesHandler creates a new PagesHandler instance.
func NewPagesHandler(consultationRate int64) *PagesHandler {
	return &PagesHandler{ConsultationRate: consultationRate}
}

func (h *PagesHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", gin.H{"Title": "Vishalaksha® — Astrology & Vastu"})
}

func (h *PagesHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", gin.H{"Title": "About — Vishalaksha®"})
}

func (h *PagesHandler) Residential(c *gin.Context) {
	c.HTML(http.StatusOK, "residential.tmpl", gin.H{"Title": "Residential Vastu — Vishalaksha®"})
}

func (h *PagesHandler) Commercial(c *gin.Context) {
	c.HTML(http.StatusOK, "commercial.tmpl", gin.H{"Title": "Commercial Vastu — Vishalaksha®"})
}

func (h *PagesHandler) Industrial(c *gin.Context) {
	c.HTML(http.StatusOK, "industrial.tmpl", gin.H{"Title": "Industrial Vastu — Vishalaksha®"})
}

func (h *PagesHandler) Process(c *gin.Context) {
	c.HTML(http.StatusOK, "process.tmpl", gin.H{"Title": "Our Process — Vishalaksha®"})
}

func (h *PagesHandler) Yogdaan(c *gin.Context) {
	c.HTML(http.StatusOK, "yogdaan.tmpl", gin.H{
		"Title":       "Yogdaan — Vishalaksha®",
		"QueryMaxLen": models.YogdaanQueryMaxLen,
	})
}

func (h *PagesHandler) Consultation(c *gin.Context) {
	c.HTML(http.StatusOK, "consultation.tmpl", gin.H{
		"Title":  "Book Consultation — Vishalaksha®",
		"Rate":   h.ConsultationRate,
		"Issues": models.ConsultationIssues,
	})
}

// NotFound is the catch-all page route.
func (h *PagesHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{"Title": "Page Not Found — Vishalaksha®"})
}
