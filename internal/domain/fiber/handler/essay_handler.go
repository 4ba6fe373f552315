package handler

import (
	"errors"
	"strconv"

	"github.com/fadilmartias/ielts-writer/internal/dto"
	"github.com/fadilmartias/ielts-writer/internal/repository"
	"github.com/fadilmartias/ielts-writer/internal/usecase"
	"github.com/fadilmartias/ielts-writer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type EssayHandler struct {
	uc *usecase.EssayUsecase
}

func NewEssayHandler(uc *usecase.EssayUsecase) *EssayHandler {
	return &EssayHandler{uc: uc}
}

func (h *EssayHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/essays", h.List)
	api.Get("/essays/:id", h.Get)
	api.Post("/essays", h.Create)
	api.Patch("/essays/:id", h.Update)
	api.Delete("/essays/:id", h.Delete)
}

func (h *EssayHandler) List(c *fiber.Ctx) error {
	essays, err := h.uc.ListEssays(c.UserContext())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to fetch essays",
		}, err)
	}
	return c.JSON(essays)
}

func (h *EssayHandler) Get(c *fiber.Ctx) error {
	id, err := essayID(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid essay ID",
		}, err)
	}

	essay, err := h.uc.GetEssay(c.UserContext(), id)
	if errors.Is(err, repository.ErrEssayNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Essay not found",
		})
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to fetch essay",
		}, err)
	}
	return c.JSON(essay)
}

func (h *EssayHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEssayRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid essay data",
		}, err)
	}
	insert, err := req.Validate()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid essay data: " + err.Error(),
		})
	}

	essay, err := h.uc.CreateEssay(c.UserContext(), insert)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to create essay",
		}, err)
	}
	return c.Status(fiber.StatusCreated).JSON(essay)
}

func (h *EssayHandler) Update(c *fiber.Ctx) error {
	id, err := essayID(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid essay ID",
		}, err)
	}

	var req dto.UpdateEssayRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid essay data",
		}, err)
	}
	updates, err := req.Validate()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid essay data: " + err.Error(),
		})
	}

	essay, err := h.uc.UpdateEssay(c.UserContext(), id, updates)
	if errors.Is(err, repository.ErrEssayNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Essay not found",
		})
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to update essay",
		}, err)
	}
	return c.JSON(essay)
}

func (h *EssayHandler) Delete(c *fiber.Ctx) error {
	id, err := essayID(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid essay ID",
		}, err)
	}

	deleted, err := h.uc.DeleteEssay(c.UserContext(), id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to delete essay",
		}, err)
	}
	if !deleted {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Essay not found",
		})
	}
	return c.JSON(fiber.Map{"message": "Essay deleted successfully"})
}

func essayID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}
