package handler

import (
	"errors"

	"github.com/fadilmartias/ielts-writer/internal/dto"
	"github.com/fadilmartias/ielts-writer/internal/usecase"
	"github.com/fadilmartias/ielts-writer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type ValidateHandler struct {
	uc     *usecase.ValidationUsecase
	logger zerolog.Logger
}

func NewValidateHandler(uc *usecase.ValidationUsecase, logger zerolog.Logger) *ValidateHandler {
	return &ValidateHandler{uc: uc, logger: logger}
}

func (h *ValidateHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/validate-essay", h.Validate)
}

func (h *ValidateHandler) Validate(c *fiber.Ctx) error {
	var req dto.ValidateEssayRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	evaluation, err := h.uc.ValidateEssay(c.UserContext(), req.Content, req.Prompt)
	if errors.Is(err, usecase.ErrEssayEmpty) || errors.Is(err, usecase.ErrEssayTooShort) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}
	if err != nil {
		// Oracle and schema failures are logged with detail and reported to
		// the user as one generic message.
		h.logger.Error().Err(err).Msg("essay validation failed")
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to validate essay with AI",
		}, err)
	}
	return c.JSON(evaluation)
}
