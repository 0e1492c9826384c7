package controller

import (
	"fmt"

	"notesai-be/internal/apperror"
	"notesai-be/internal/dto"
	"notesai-be/internal/pkg/serverutils"
	"notesai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Rollback(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Analytics(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService      service.INoteService
	analyticsService service.IAnalyticsService
}

func NewNoteController(noteService service.INoteService, analyticsService service.IAnalyticsService) INoteController {
	return &noteController{
		noteService:      noteService,
		analyticsService: analyticsService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	// "analytics" must register before ":id" so it is not captured as an id
	h.Get("analytics", c.Analytics)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Get(":id/history", c.History)
	h.Put(":id", c.Update)
	h.Put(":id/rollback", c.Rollback)
	h.Delete(":id", c.Delete)
}

func parseNoteId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid note id %q", apperror.ErrValidation, ctx.Params("id"))
	}
	return id, nil
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %s", apperror.ErrValidation, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	query := dto.ListNotesQuery{
		Page: ctx.QueryInt("page", 1),
		Size: ctx.QueryInt("size", 10),
	}

	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.noteService.List(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) History(ctx *fiber.Ctx) error {
	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.History(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note history", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %s", apperror.ErrValidation, err.Error())
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Rollback(ctx *fiber.Ctx) error {
	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	var req dto.RollbackNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %s", apperror.ErrValidation, err.Error())
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Rollback(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success rollback note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete note", true))
}

func (c *noteController) Analytics(ctx *fiber.Ctx) error {
	res, err := c.analyticsService.ComputeAnalytics(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success compute analytics", res))
}
