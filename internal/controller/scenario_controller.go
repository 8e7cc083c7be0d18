package controller

import (
	"climb-coach-be/internal/dto"
	"climb-coach-be/internal/pkg/serverutils"
	"climb-coach-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IScenarioController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Resolve(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Similar(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	AiStatus(ctx *fiber.Ctx) error
}

type scenarioController struct {
	scenarioService service.IScenarioService
}

func NewScenarioController(scenarioService service.IScenarioService) IScenarioController {
	return &scenarioController{
		scenarioService: scenarioService,
	}
}

func (c *scenarioController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/review/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("scenarios", c.List)
	h.Post("scenarios", c.Create)
	h.Post("scenarios/generate", c.Generate)
	h.Get("ai/status", c.AiStatus)
	h.Get("scenarios/:id", c.Show)
	h.Put("scenarios/:id/resolve", c.Resolve)
	h.Delete("scenarios/:id", c.Delete)
	h.Get("scenarios/:id/similar", c.Similar)
}

func (c *scenarioController) List(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	difficulty := ctx.Query("difficulty")
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.scenarioService.List(ctx.Context(), status, difficulty, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get scenarios", res))
}

func (c *scenarioController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid scenario id")
	}

	res, err := c.scenarioService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Scenario not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get scenario", res))
}

func (c *scenarioController) Create(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateScenarioRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scenarioService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create scenario", res))
}

func (c *scenarioController) Resolve(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid scenario id")
	}

	var req dto.ResolveScenarioRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scenarioService.Resolve(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Scenario not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resolve scenario", res))
}

func (c *scenarioController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid scenario id")
	}

	if err := c.scenarioService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete scenario", nil))
}

func (c *scenarioController) Similar(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid scenario id")
	}
	limit := ctx.QueryInt("limit", 5)

	res, err := c.scenarioService.Similar(ctx.Context(), id, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get similar scenarios", res))
}

func (c *scenarioController) Generate(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateScenariosRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scenarioService.GenerateBatch(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success generate scenarios", res))
}

func (c *scenarioController) AiStatus(ctx *fiber.Ctx) error {
	res := c.scenarioService.AiStatus()
	return ctx.JSON(serverutils.SuccessResponse("Success get ai status", res))
}
