package controller

import (
	"climb-coach-be/internal/dto"
	"climb-coach-be/internal/pkg/serverutils"
	"climb-coach-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	QuickStart(ctx *fiber.Ctx) error
	WeeklyStats(ctx *fiber.Ctx) error
	HighestGrade(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("sessions", c.List)
	h.Post("sessions", c.Create)
	h.Post("sessions/quick-start", c.QuickStart)
	h.Get("sessions/stats/weekly", c.WeeklyStats)
	h.Get("sessions/stats/highest-grade", c.HighestGrade)
	h.Get("sessions/:id", c.Show)
	h.Put("sessions/:id", c.Update)
	h.Delete("sessions/:id", c.Delete)
}

func sessionUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	userId := sessionUserId(ctx)

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	userId := sessionUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	res, err := c.sessionService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	userId := sessionUserId(ctx)
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.sessionService.List(ctx.Context(), userId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get sessions", res))
}

func (c *sessionController) Update(ctx *fiber.Ctx) error {
	userId := sessionUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	var req dto.UpdateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update session", res))
}

func (c *sessionController) Delete(ctx *fiber.Ctx) error {
	userId := sessionUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	if err := c.sessionService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func (c *sessionController) QuickStart(ctx *fiber.Ctx) error {
	userId := sessionUserId(ctx)

	var req dto.QuickStartRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.QuickStart(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success quick start session", res))
}

func (c *sessionController) WeeklyStats(ctx *fiber.Ctx) error {
	userId := sessionUserId(ctx)
	weeks := ctx.QueryInt("weeks", 8)

	res, err := c.sessionService.WeeklyStats(ctx.Context(), userId, weeks)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get weekly stats", res))
}

func (c *sessionController) HighestGrade(ctx *fiber.Ctx) error {
	userId := sessionUserId(ctx)
	discipline := ctx.Query("discipline", "bouldering")

	res, err := c.sessionService.HighestGrade(ctx.Context(), userId, discipline)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get highest grade", res))
}
