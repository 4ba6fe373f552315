package handler

import (
	"errors"
	"strconv"

	"github.com/fadilmartias/ielts-writer/internal/repository"
	"github.com/fadilmartias/ielts-writer/internal/usecase"
	"github.com/fadilmartias/ielts-writer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type PromptHandler struct {
	uc *usecase.EssayUsecase
}

func NewPromptHandler(uc *usecase.EssayUsecase) *PromptHandler {
	return &PromptHandler{uc: uc}
}

func (h *PromptHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/prompts", h.List)
	api.Get("/prompts/:id", h.Get)
}

func (h *PromptHandler) List(c *fiber.Ctx) error {
	prompts, err := h.uc.ListPrompts(c.UserContext(), c.Query("category"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to fetch prompts",
		}, err)
	}
	return c.JSON(prompts)
}

func (h *PromptHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid prompt ID",
		}, err)
	}

	prompt, err := h.uc.GetPrompt(c.UserContext(), id)
	if errors.Is(err, repository.ErrPromptNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Prompt not found",
		})
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to fetch prompt",
		}, err)
	}
	return c.JSON(prompt)
}
