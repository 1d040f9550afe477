package dto

// SendMessageRequest sends a plain text WhatsApp message.
type SendMessageRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// SendDocumentRequest sends a document over WhatsApp.
type SendDocumentRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	FilePath    string `json:"filePath" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	Caption     string `json:"caption"`
}

// SendInvoiceRequest sends an invoice PDF with a templated caption.
type SendInvoiceRequest struct {
	PhoneNumber   string `json:"phoneNumber" binding:"required"`
	InvoiceNumber string `json:"invoiceNumber" binding:"required"`
	DealerName    string `json:"dealerName"`
	Amount        string `json:"amount"`
	DueDate       string `json:"dueDate"`
	PDFPath       string `json:"pdfPath" binding:"required"`
}

// NotifyResult reports the outcome of a fire-and-forget send. A failed
// send carries Detail for the caller's logs but is not an error.
type NotifyResult struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail,omitempty"`
}
