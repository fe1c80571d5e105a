package api

import (
	"encoding/base64"
	"net/http"

	"github.com/CodeDreamers777/assettone-console/internal/forms"
	"github.com/CodeDreamers777/assettone-console/internal/signing"
	"github.com/gin-gonic/gin"
)

// SignLeaseScreen decodes the payload carried in the emailed signing link
// and echoes the lease details back for review. No session is required.
func (h *Handler) SignLeaseScreen(c *gin.Context) {
	payload, err := signing.DecodePayload(c.Query("data"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Lease Data"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

type signLeaseRequest struct {
	Data      string `json:"data"`
	Signature string `json:"signature"`
}

// SignLease uploads the captured signature for the lease named in the
// payload. The signature arrives as base64 PNG and goes upstream as a
// multipart file part.
func (h *Handler) SignLease(c *gin.Context) {
	var req signLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	payload, err := signing.DecodePayload(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Lease Data"})
		return
	}
	png, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature image"})
		return
	}

	body, contentType, err := signing.SignatureForm(png, payload.SigningToken)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a signature"})
		return
	}
	if err := h.client.CompleteSigning(c.Request.Context(), payload.LeaseID, body, contentType); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lease signed successfully"})
}

func (h *Handler) Healthz(c *gin.Context) {
	msg, err := h.client.Health(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "upstream": msg})
}

func (h *Handler) ContactUs(c *gin.Context) {
	var form forms.ContactForm
	if !h.bindForm(c, &form) {
		return
	}
	if err := h.client.ContactUs(c.Request.Context(), form.Name, form.Email, form.Message); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}

func (h *Handler) BookDemo(c *gin.Context) {
	var form forms.ContactForm
	if !h.bindForm(c, &form) {
		return
	}
	if err := h.client.BookDemo(c.Request.Context(), form.Name, form.Email, form.Message); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Demo request received"})
}

type quoteRequest struct {
	NumberOfUnits int     `json:"number_of_units"`
	AverageRent   float64 `json:"average_rent"`
}

func (h *Handler) SubscriptionQuote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.NumberOfUnits <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Number of units must be positive"})
		return
	}
	quote, err := h.client.SubscriptionQuote(c.Request.Context(), req.NumberOfUnits, req.AverageRent)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
