package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/CodeDreamers777/assettone-console/internal/export"
	"github.com/CodeDreamers777/assettone-console/internal/forms"
	"github.com/CodeDreamers777/assettone-console/internal/models"
	"github.com/CodeDreamers777/assettone-console/internal/rbac"
	"github.com/gin-gonic/gin"
)

func reportFilter(c *gin.Context) models.ReportFilter {
	return models.ReportFilter{
		PropertyID: c.Query("property"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
	}
}

// fetchReport resolves the named report against the API. The returned value
// is whatever JSON shape the server sent, ready for rendering or flattening.
func (h *Handler) fetchReport(c *gin.Context, kind string) (any, bool) {
	filter := reportFilter(c)
	var (
		data any
		err  error
	)
	switch kind {
	case "lease":
		data, err = h.client.LeaseReport(c.Request.Context(), filter)
	case "payment":
		data, err = h.client.PaymentReport(c.Request.Context(), filter)
	case "maintenance":
		data, err = h.client.MaintenanceReport(c.Request.Context(), filter)
	case "summary":
		data, err = h.client.DashboardSummary(c.Request.Context(), filter.PropertyID)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown report: " + kind})
		return nil, false
	}
	if err != nil {
		h.respondError(c, err)
		return nil, false
	}
	return data, true
}

func (h *Handler) Report(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionViewReports) {
		return
	}
	data, ok := h.fetchReport(c, c.Param("kind"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, data)
}

// ExportReport streams the current report as a file. The report is
// re-fetched, flattened client-side, and written in the requested format;
// the server is never asked to export anything.
func (h *Handler) ExportReport(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionViewReports) {
		return
	}
	kind := c.Param("kind")
	data, ok := h.fetchReport(c, kind)
	if !ok {
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode report"})
		return
	}
	flat, err := export.FlattenJSON(raw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to flatten report"})
		return
	}

	filename := kind + "-report"
	var buf bytes.Buffer
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		if err = export.WriteCSV(&buf, flat); err == nil {
			c.Header("Content-Disposition", `attachment; filename="`+filename+`.csv"`)
			c.Data(http.StatusOK, "text/csv", buf.Bytes())
			return
		}
	case "xlsx":
		if err = export.WriteXLSX(&buf, flat); err == nil {
			c.Header("Content-Disposition", `attachment; filename="`+filename+`.xlsx"`)
			c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
			return
		}
	case "pdf":
		if err = export.WritePDF(&buf, filename, flat); err == nil {
			c.Header("Content-Disposition", `attachment; filename="`+filename+`.pdf"`)
			c.Data(http.StatusOK, "application/pdf", buf.Bytes())
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown export format"})
		return
	}

	h.logger.WithError(err).Error("Report export failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
}

func (h *Handler) RecordPayment(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionRecordPayments) {
		return
	}
	var form forms.PaymentForm
	if !h.bindForm(c, &form) {
		return
	}
	result, err := h.client.RecordRentPayment(c.Request.Context(), models.RentPayment{
		LeaseID:       form.LeaseID,
		Amount:        form.Amount,
		PaymentDate:   form.PaymentDate,
		PaymentMethod: form.PaymentMethod,
		Notes:         form.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
