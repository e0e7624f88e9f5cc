package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-scorer/internal/services"
)

type UploadHandler struct {
	scorerService  services.ScorerService
	pdfParser      services.PDFParserService
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	scorerService services.ScorerService,
	pdfParser services.PDFParserService,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		scorerService:  scorerService,
		pdfParser:      pdfParser,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload. The content type of the uploaded file
// decides how resume text is produced; anything but PDF and JSON is rejected
// before the model is ever called.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded. Please upload a PDF or JSON file as 'file'.",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	var resumeText string

	switch mediaType(fileHeader) {
	case "application/pdf":
		resumeText, err = h.extractPDFText(fileHeader)
	case "application/json":
		resumeText, err = h.extractJSONText(fileHeader)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": services.ErrUnsupportedMediaType.Error(),
		})
	}

	if err != nil {
		status := fiber.StatusBadRequest
		if !errors.Is(err, services.ErrInvalidDocument) {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return respondWithScore(c, h.scorerService, resumeText)
}

// extractPDFText stores the upload just long enough for the parser to read it
// from disk.
func (h *UploadHandler) extractPDFText(fileHeader *multipart.FileHeader) (string, error) {
	filePath, err := h.storageService.SaveFile(fileHeader, ".pdf")
	if err != nil {
		return "", fmt.Errorf("failed to store uploaded PDF: %w", err)
	}
	defer h.storageService.DeleteFile(filePath)

	return h.pdfParser.ExtractText(filePath)
}

// extractJSONText uses the document's resume_text field when it holds a
// non-empty string, otherwise the whole document serialized back to JSON.
func (h *UploadHandler) extractJSONText(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("%w: invalid JSON file", services.ErrInvalidDocument)
	}

	if text, ok := doc["resume_text"].(string); ok && text != "" {
		return text, nil
	}

	serialized, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%w: invalid JSON file", services.ErrInvalidDocument)
	}

	return string(serialized), nil
}

// mediaType returns the upload's content type without parameters.
func mediaType(fileHeader *multipart.FileHeader) string {
	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.TrimSpace(contentType)
}
