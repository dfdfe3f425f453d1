package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/study-assistant/api/http/presenter"
	"github.com/artem13815/study-assistant/pkg/assist"
)

// AssistHandler serves the three assistant forms.
type AssistHandler struct {
	svc   assist.Service
	model string // model name, exposed in responses only
}

func NewAssistHandler(svc assist.Service, model string) *AssistHandler {
	return &AssistHandler{svc: svc, model: model}
}

type debugRequest struct {
	Code string `json:"code"`
}

type topicRequest struct {
	Topic string `json:"topic"`
}

type conceptRequest struct {
	Concept string `json:"concept"`
}

// ReportResponse carries the model answer for one form submission.
type ReportResponse struct {
	Heading string `json:"heading"`
	Input   string `json:"input"`
	Answer  string `json:"answer"`
	Model   string `json:"model"`
}

// Debug asks the model to explain and fix errors in the submitted code.
// @Summary Debug a code snippet
// @Description Embeds the code in a debugging prompt and returns the model's report.
// @Tags    assist
// @Accept  json
// @Produce json
// @Param   request body handlers.debugRequest true "Code to debug"
// @Success 200 {object} handlers.ReportResponse
// @Failure 400 {object} presenter.WarningResponse "Empty input"
// @Failure 502 {object} presenter.ErrorResponse "Model call failed"
// @Router  /assist/debug [post]
func (h *AssistHandler) Debug(c *fiber.Ctx) error {
	var req debugRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	report, err := h.svc.DebugCode(c.Context(), req.Code)
	return h.respond(c, report, err, "An error occurred while debugging")
}

// ExplainTopic asks the model for a simplified explanation of a topic.
// @Summary Explain a complex topic
// @Tags    assist
// @Accept  json
// @Produce json
// @Param   request body handlers.topicRequest true "Topic to explain"
// @Success 200 {object} handlers.ReportResponse
// @Failure 400 {object} presenter.WarningResponse "Empty input"
// @Failure 502 {object} presenter.ErrorResponse "Model call failed"
// @Router  /assist/topic [post]
func (h *AssistHandler) ExplainTopic(c *fiber.Ctx) error {
	var req topicRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	report, err := h.svc.ExplainTopic(c.Context(), req.Topic)
	return h.respond(c, report, err, "An error occurred while explaining the topic")
}

// ExplainConcept asks the model to explain a data analysis concept.
// @Summary Explain a data analysis concept
// @Tags    assist
// @Accept  json
// @Produce json
// @Param   request body handlers.conceptRequest true "Concept to explain"
// @Success 200 {object} handlers.ReportResponse
// @Failure 400 {object} presenter.WarningResponse "Empty input"
// @Failure 502 {object} presenter.ErrorResponse "Model call failed"
// @Router  /assist/concept [post]
func (h *AssistHandler) ExplainConcept(c *fiber.Ctx) error {
	var req conceptRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	report, err := h.svc.ExplainConcept(c.Context(), req.Concept)
	return h.respond(c, report, err, "An error occurred while explaining the concept")
}

func (h *AssistHandler) respond(c *fiber.Ctx, report assist.Report, err error, failLabel string) error {
	if err != nil {
		var empty assist.ErrEmptyInput
		if errors.As(err, &empty) {
			return presenter.Warning(c, empty.Error())
		}
		return presenter.Error(c, http.StatusBadGateway, fmt.Sprintf("%s: %v", failLabel, err))
	}
	return presenter.JSON(c, http.StatusOK, ReportResponse{
		Heading: report.Heading,
		Input:   report.Input,
		Answer:  report.Answer,
		Model:   h.model,
	})
}
