package handlers

import (
	"strconv"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IdeaHandler struct {
	ideaService *services.IdeaService
}

func NewIdeaHandler(ideaService *services.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

func optionalBool(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// listQuery reads the shared listing parameters. mine=true needs an authenticated caller.
func listQuery(c *fiber.Ctx) (services.IdeaListQuery, error) {
	q := services.IdeaListQuery{
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 10),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Tag:      c.Query("tag"),
		Featured: optionalBool(c, "featured"),
	}

	if raw := c.Query("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return q, fiber.NewError(fiber.StatusBadRequest, "userId must be a valid id")
		}
		q.UserID = &id
	}
	if c.QueryBool("mine") {
		user := middleware.CurrentUser(c)
		if user == nil {
			return q, fiber.NewError(fiber.StatusUnauthorized, middleware.MsgNoToken)
		}
		q.UserID = &user.ID
	}
	return q, nil
}

type listFunc func(*services.IdeaService, *fiber.Ctx, services.IdeaListQuery) (*services.IdeaPage, error)

func (h *IdeaHandler) list(fn listFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := listQuery(c)
		if err != nil {
			return err
		}

		page, err := fn(h.ideaService, c, q)
		if err != nil {
			return respondError(c, err)
		}

		pagination := page.Pagination
		return c.JSON(dto.IdeaListResponse{
			Success:    true,
			Data:       page.Ideas,
			Pagination: &pagination,
		})
	}
}

func (h *IdeaHandler) List() fiber.Handler {
	return h.list(func(s *services.IdeaService, c *fiber.Ctx, q services.IdeaListQuery) (*services.IdeaPage, error) {
		return s.List(c.UserContext(), q)
	})
}

func (h *IdeaHandler) ListAll() fiber.Handler {
	return h.list(func(s *services.IdeaService, c *fiber.Ctx, q services.IdeaListQuery) (*services.IdeaPage, error) {
		return s.ListAll(c.UserContext(), q)
	})
}

func (h *IdeaHandler) ListCommunity() fiber.Handler {
	return h.list(func(s *services.IdeaService, c *fiber.Ctx, q services.IdeaListQuery) (*services.IdeaPage, error) {
		return s.ListCommunity(c.UserContext(), q)
	})
}

func (h *IdeaHandler) ListStatic() fiber.Handler {
	return h.list(func(s *services.IdeaService, c *fiber.Ctx, q services.IdeaListQuery) (*services.IdeaPage, error) {
		return s.ListStatic(c.UserContext(), q)
	})
}

func (h *IdeaHandler) ListFeatured(c *fiber.Ctx) error {
	ideas, err := h.ideaService.ListFeatured(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.IdeaListResponse{Success: true, Data: ideas})
}

func (h *IdeaHandler) SetFeatured(c *fiber.Ctx) error {
	var req dto.SetFeaturedRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	idea, err := h.ideaService.SetFeatured(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Message: "Idea updated successfully", Data: idea})
}

func (h *IdeaHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, services.ErrIdeaNotFound)
	if err != nil {
		return respondError(c, err)
	}

	idea, err := h.ideaService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: idea})
}

func (h *IdeaHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateIdeaRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	idea, err := h.ideaService.Create(c.UserContext(), &req, middleware.CurrentUser(c), middleware.IsAdmin(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{
		Success: true, Message: "Idea created successfully", Data: idea,
	})
}

func (h *IdeaHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, services.ErrIdeaNotFound)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateIdeaRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	idea, err := h.ideaService.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Message: "Idea updated successfully", Data: idea})
}

func (h *IdeaHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, services.ErrIdeaNotFound)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.ideaService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Message: "Idea deleted successfully"})
}

func (h *IdeaHandler) ToggleSave(c *fiber.Ctx) error {
	id, err := pathID(c, services.ErrIdeaNotFound)
	if err != nil {
		return respondError(c, err)
	}

	saved, err := h.ideaService.ToggleSave(c.UserContext(), id, middleware.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: dto.SaveIdeaResponse{Saved: saved}})
}
