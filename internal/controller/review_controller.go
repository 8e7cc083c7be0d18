package controller

import (
	"errors"

	"climb-coach-be/internal/dto"
	"climb-coach-be/internal/pkg/serverutils"
	"climb-coach-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReviewController interface {
	RegisterRoutes(r fiber.Router)
	Open(ctx *fiber.Ctx) error
	UpdateDraft(ctx *fiber.Ctx) error
	SaveDraft(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	ClosePanel(ctx *fiber.Ctx) error
	AddActivity(ctx *fiber.Ctx) error
	MoveActivity(ctx *fiber.Ctx) error
	UpdateActivity(ctx *fiber.Ctx) error
	RemoveActivity(ctx *fiber.Ctx) error
	ApplyTemplate(ctx *fiber.Ctx) error
}

type reviewController struct {
	reviewService service.IReviewService
}

func NewReviewController(reviewService service.IReviewService) IReviewController {
	return &reviewController{
		reviewService: reviewService,
	}
}

func (c *reviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/review/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("scenarios/:id/open", c.Open)
	h.Put("scenarios/:id/draft", c.UpdateDraft)
	h.Post("scenarios/:id/save", c.SaveDraft)
	h.Post("scenarios/:id/submit", c.Submit)
	h.Delete("scenarios/:id/panel", c.ClosePanel)

	h.Post("scenarios/:id/draft/activities", c.AddActivity)
	h.Post("scenarios/:id/draft/activities/template", c.ApplyTemplate)
	h.Put("scenarios/:id/draft/activities/:activityId/move", c.MoveActivity)
	h.Put("scenarios/:id/draft/activities/:activityId", c.UpdateActivity)
	h.Delete("scenarios/:id/draft/activities/:activityId", c.RemoveActivity)
}

func reviewIds(ctx *fiber.Ctx) (expertId, scenarioId uuid.UUID) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	expertId, _ = uuid.Parse(userIdStr)
	scenarioId, _ = uuid.Parse(ctx.Params("id"))
	return expertId, scenarioId
}

// mapDraftError converts the sentinel draft errors into proper statuses.
func mapDraftError(err error) error {
	switch {
	case errors.Is(err, service.ErrNoOpenDraft):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrIncompleteDraft):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	default:
		return err
	}
}

func (c *reviewController) Open(ctx *fiber.Ctx) error {
	expertId, scenarioId := reviewIds(ctx)

	res, err := c.reviewService.Open(ctx.Context(), expertId, scenarioId)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Scenario not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success open review panel", res))
}

func (c *reviewController) UpdateDraft(ctx *fiber.Ctx) error {
	expertId, scenarioId := reviewIds(ctx)

	var req dto.UpdateDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.UpdateDraft(ctx.Context(), expertId, scenarioId, &req)
	if err != nil {
		return mapDraftError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update draft", res))
}

func (c *reviewController) SaveDraft(ctx *fiber.Ctx) error {
	expertId, scenarioId := reviewIds(ctx)

	res, err := c.reviewService.SaveDraft(ctx.Context(), expertId, scenarioId)
	if err != nil {
		return mapDraftError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save draft", res))
}

func (c *reviewController) Submit(ctx *fiber.Ctx) error {
	expertId, scenarioId := reviewIds(ctx)

	res, err := c.reviewService.Submit(ctx.Context(), expertId, scenarioId)
	if err != nil {
		return mapDraftError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit review", res))
}

func (c *reviewController) ClosePanel(ctx *fiber.Ctx) error {
	expertId, scenarioId := reviewIds(ctx)

	c.reviewService.ClosePanel(expertId, scenarioId)

	return ctx.JSON(serverutils.SuccessResponse[any]("Success close review panel", nil))
}

func (c *reviewController) AddActivity(ctx *fiber.Ctx) error {
	expertId, scenarioId := reviewIds(ctx)

	var req dto.AddActivityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.AddActivity(ctx.Context(), expertId, scenarioId, &req)
	if err != nil {
		return mapDraftError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add activity", res))
}

func (c *reviewController) MoveActivity(ctx *fiber.Ctx) error {
	expertId, scenarioId := reviewIds(ctx)

	activityId, _ := uuid.Parse(ctx.Params("activityId"))

	var req dto.MoveActivityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = activityId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.MoveActivity(ctx.Context(), expertId, scenarioId, &req)
	if err != nil {
		return mapDraftError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move activity", res))
}

func (c *reviewController) UpdateActivity(ctx *fiber.Ctx) error {
	expertId, scenarioId := reviewIds(ctx)

	activityId, _ := uuid.Parse(ctx.Params("activityId"))

	var req dto.UpdateActivityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = activityId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.UpdateActivity(ctx.Context(), expertId, scenarioId, &req)
	if err != nil {
		return mapDraftError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update activity", res))
}

func (c *reviewController) RemoveActivity(ctx *fiber.Ctx) error {
	expertId, scenarioId := reviewIds(ctx)

	activityId, _ := uuid.Parse(ctx.Params("activityId"))

	res, err := c.reviewService.RemoveActivity(ctx.Context(), expertId, scenarioId, activityId)
	if err != nil {
		return mapDraftError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove activity", res))
}

func (c *reviewController) ApplyTemplate(ctx *fiber.Ctx) error {
	expertId, scenarioId := reviewIds(ctx)

	var req dto.ApplyTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.ApplyTemplate(ctx.Context(), expertId, scenarioId, &req)
	if err != nil {
		return mapDraftError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success apply template", res))
}
