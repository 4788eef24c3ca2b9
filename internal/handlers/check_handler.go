package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"rulecheck/pdf-rule-checker/internal/models"
	"rulecheck/pdf-rule-checker/internal/services"
)

type CheckHandler struct {
	pdfParser services.PDFParserService
	pipeline  services.EvaluationPipeline
	maxRules  int
}

func NewCheckHandler(
	pdfParser services.PDFParserService,
	pipeline services.EvaluationPipeline,
	maxRules int,
) *CheckHandler {
	return &CheckHandler{
		pdfParser: pdfParser,
		pipeline:  pipeline,
		maxRules:  maxRules,
	}
}

// HandleCheck handles POST /check: a multipart upload with a "pdf" file
// field and a "rules" field holding a JSON array of rule strings.
func (h *CheckHandler) HandleCheck(c *fiber.Ctx) error {
	requestID := uuid.New()

	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "No PDF file uploaded",
		})
	}

	rules, err := models.ParseRules(c.FormValue("rules"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("Invalid rules format: %v", err),
		})
	}

	if h.maxRules > 0 && len(rules) > h.maxRules {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("Too many rules: maximum is %d", h.maxRules),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "failed to read uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "failed to read uploaded file",
		})
	}

	log.Printf("📄 [%s] Checking %s against %d rules", requestID, fileHeader.Filename, len(rules))

	text, err := h.pdfParser.ExtractText(data)
	if err != nil {
		log.Printf("❌ [%s] PDF extraction failed: %v", requestID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: models.ErrExtraction.Error(),
		})
	}

	results, err := h.pipeline.EvaluateAll(c.UserContext(), text, rules)
	if err != nil {
		log.Printf("❌ [%s] Pipeline failed: %v", requestID, err)
		if errors.Is(err, models.ErrInput) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}

	log.Printf("✅ [%s] Completed %d rule evaluations", requestID, len(results))

	return c.JSON(models.CheckResponse{
		Success: true,
		Results: results,
	})
}
