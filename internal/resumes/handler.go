package resumes

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/export"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/builder"
	"resume-builder/resume/model"
)

// PDFRenderer converts a rendered HTML document into PDF bytes.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html []byte) ([]byte, error)
}

type Handler struct {
	Svc *Service
	PDF PDFRenderer
}

func NewHandler(svc *Service, pdf PDFRenderer) *Handler {
	return &Handler{Svc: svc, PDF: pdf}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.POST("/resumes/wizard", h.wizard)
	rg.GET("/resumes/:id", tagResumeID, h.get)
	rg.PUT("/resumes/:id", tagResumeID, h.update)
	rg.DELETE("/resumes/:id", tagResumeID, h.remove)
	rg.GET("/resumes/:id/preview", tagResumeID, h.preview)
	rg.GET("/resumes/:id/export/pdf", tagResumeID, h.exportPDF)
}

// tagResumeID stores the path id so request logs carry resume context.
func tagResumeID(c *gin.Context) {
	if id := c.Param("id"); id != "" {
		c.Set("resumeId", id)
	}
	c.Next()
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var rec model.Resume
	if err := c.ShouldBindJSON(&rec); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), userID, rec)
	if err != nil {
		respondServiceError(c, err, "failed to create resume")
		return
	}
	respond.JSON(c, http.StatusCreated, created)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	records, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"resumes": records})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "failed to load resume")
		return
	}
	respond.JSON(c, http.StatusOK, rec)
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var rec model.Resume
	if err := c.ShouldBindJSON(&rec); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), rec)
	if err != nil {
		respondServiceError(c, err, "failed to update resume")
		return
	}
	respond.JSON(c, http.StatusOK, updated)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err, "failed to delete resume")
		return
	}
	c.Status(http.StatusNoContent)
}

type wizardRequest struct {
	ResumeID string         `json:"resumeId"`
	Steps    []builder.Edit `json:"steps"`
}

// wizard accepts the full ordered edit list collected by the client-side
// wizard and saves it in one shot, creating or updating as needed.
func (h *Handler) wizard(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req wizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.Steps) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "steps are required", nil)
		return
	}

	rec, created, err := h.Svc.ApplyWizard(c.Request.Context(), userID, req.ResumeID, req.Steps)
	if err != nil {
		respondServiceError(c, err, "failed to save resume")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respond.JSON(c, status, rec)
}

func (h *Handler) preview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	html, _, err := h.Svc.RenderHTML(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "failed to render resume")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (h *Handler) exportPDF(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if h.PDF == nil {
		respond.Error(c, http.StatusInternalServerError, "export_failed", "pdf export not configured", nil)
		return
	}

	html, rec, err := h.Svc.RenderHTML(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "failed to render resume")
		return
	}

	metrics.IncExportStarted()
	started := metrics.NowMillis()
	pdf, err := h.PDF.RenderPDF(c.Request.Context(), html)
	metrics.ObserveExportDurationMs(metrics.NowMillis() - started)
	if err != nil {
		metrics.IncExportFailed()
		respond.Error(c, http.StatusInternalServerError, "export_failed", "failed to generate pdf", nil)
		return
	}
	metrics.IncExportCompleted()

	filename := export.Filename(rec.FirstName, rec.LastName)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func respondServiceError(c *gin.Context, err error, fallback string) {
	var vErr ValidationError
	switch {
	case errors.As(err, &vErr):
		respond.Error(c, http.StatusBadRequest, "validation_error", vErr.Message, nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
