package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"faqdesk/backend/internal/model"
	"faqdesk/backend/internal/service"
)

type FAQHandler struct {
	service service.FAQService
}

type createFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type updateFAQRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

type faqResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Message  string `json:"message,omitempty"`
}

type localizedFAQResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type deleteFAQResponse struct {
	Message   string `json:"message"`
	DeletedID string `json:"deletedId"`
}

func NewFAQHandler(service service.FAQService) *FAQHandler {
	return &FAQHandler{service: service}
}

func (h *FAQHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/faqs", h.Create)
	g.GET("/faqs", h.List)
	g.PUT("/faqs/:id", h.Update)
	g.DELETE("/faqs/:id", h.Delete)
}

// Create creates a FAQ and schedules its translation. Translation runs in
// the background; the response only confirms the stored source fields.
func (h *FAQHandler) Create(c echo.Context) error {
	var req createFAQRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	faq, err := h.service.Create(c.Request().Context(), req.Question, req.Answer)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, toFAQResponse(faq, "FAQ created. Translations in progress."))
}

// List returns all FAQs localized for the requested language
// (query param "lang", default "en").
func (h *FAQHandler) List(c echo.Context) error {
	faqs, err := h.service.List(c.Request().Context(), c.QueryParam("lang"))
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]localizedFAQResponse, 0, len(faqs))
	for _, faq := range faqs {
		response = append(response, localizedFAQResponse{
			ID:       strconv.FormatInt(faq.ID, 10),
			Question: faq.Question,
			Answer:   faq.Answer,
		})
	}
	return c.JSON(http.StatusOK, response)
}

// Update applies a partial update and schedules retranslation.
func (h *FAQHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	var req updateFAQRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	faq, err := h.service.Update(c.Request().Context(), id, req.Question, req.Answer)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toFAQResponse(faq, "FAQ updated. Retranslating content."))
}

// Delete removes a FAQ and its cached translations.
func (h *FAQHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	deletedID, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, deleteFAQResponse{
		Message:   "FAQ deleted",
		DeletedID: strconv.FormatInt(deletedID, 10),
	})
}

func toFAQResponse(faq model.FAQ, message string) faqResponse {
	return faqResponse{
		ID:       strconv.FormatInt(faq.ID, 10),
		Question: faq.Question,
		Answer:   faq.Answer,
		Message:  message,
	}
}
