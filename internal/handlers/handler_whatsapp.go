package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/services"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
)

// whatsappHandler proxies messaging requests to the WhatsApp bridge.
// Send endpoints are fire-and-forget: a failed send returns 200 with
// success=false, never an error status.
type whatsappHandler struct {
	notifier portssvc.MessagingNotifier
}

func newWhatsappHandler(n portssvc.MessagingNotifier) *whatsappHandler {
	return &whatsappHandler{notifier: n}
}

// registerWhatsappRoutes registers all WhatsApp bridge routes.
func registerWhatsappRoutes(rg *gin.RouterGroup, notifier portssvc.MessagingNotifier) {
	h := newWhatsappHandler(notifier)

	wa := rg.Group("/whatsapp")
	{
		wa.GET("/status", h.status)
		wa.GET("/qr", h.qrCode)
		wa.POST("/disconnect", h.disconnect)
		wa.POST("/send-message", h.sendMessage)
		wa.POST("/send-document", h.sendDocument)
		wa.POST("/send-invoice", h.sendInvoice)
	}
}

// status godoc
// @Summary WhatsApp bridge connection status
// @Tags whatsapp
// @Produce  json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /whatsapp/status [get]
func (h *whatsappHandler) status(c *gin.Context) {
	out, err := h.notifier.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// qrCode godoc
// @Summary WhatsApp pairing QR code
// @Description Returns the pairing QR payload while the bridge session is unlinked
// @Tags whatsapp
// @Produce  json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /whatsapp/qr [get]
func (h *whatsappHandler) qrCode(c *gin.Context) {
	out, err := h.notifier.QRCode(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// disconnect godoc
// @Summary Unlink the WhatsApp bridge session
// @Tags whatsapp
// @Produce  json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /whatsapp/disconnect [post]
func (h *whatsappHandler) disconnect(c *gin.Context) {
	out, err := h.notifier.Disconnect(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// sendMessage godoc
// @Summary Send a WhatsApp text message
// @Tags whatsapp
// @Accept  json
// @Produce  json
// @Param   message body dto.SendMessageRequest true "Message details"
// @Success 200 {object} dto.NotifyResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /whatsapp/send-message [post]
func (h *whatsappHandler) sendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.notifier.SendMessage(c.Request.Context(), req.PhoneNumber, req.Message))
}

// sendDocument godoc
// @Summary Send a document over WhatsApp
// @Tags whatsapp
// @Accept  json
// @Produce  json
// @Param   document body dto.SendDocumentRequest true "Document details"
// @Success 200 {object} dto.NotifyResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /whatsapp/send-document [post]
func (h *whatsappHandler) sendDocument(c *gin.Context) {
	var req dto.SendDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.notifier.SendDocument(c.Request.Context(), req.PhoneNumber, req.FilePath, req.FileName, req.Caption))
}

// sendInvoice godoc
// @Summary Send an invoice PDF over WhatsApp
// @Tags whatsapp
// @Accept  json
// @Produce  json
// @Param   invoice body dto.SendInvoiceRequest true "Invoice send details"
// @Success 200 {object} dto.NotifyResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /whatsapp/send-invoice [post]
func (h *whatsappHandler) sendInvoice(c *gin.Context) {
	var req dto.SendInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.notifier.SendInvoice(c.Request.Context(), req))
}
