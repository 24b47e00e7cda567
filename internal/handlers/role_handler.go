package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/ai-recruiter/internal/models"
	"alfredoptarigan/ai-recruiter/internal/repositories"
)

type RoleHandler struct {
	roleRepo repositories.RoleRepository
	log      *zap.Logger
}

func NewRoleHandler(roleRepo repositories.RoleRepository, log *zap.Logger) *RoleHandler {
	return &RoleHandler{
		roleRepo: roleRepo,
		log:      log,
	}
}

// HandleList handles GET /api/roles. A store failure yields an empty catalog.
func (h *RoleHandler) HandleList(c *fiber.Ctx) error {
	roles, err := h.roleRepo.FindAll(c.UserContext())
	if err != nil {
		h.log.Warn("⚠️ Failed to list roles", zap.Error(err))
		roles = []models.Role{}
	}

	return c.JSON(models.RoleListResponse{Roles: roles})
}

// HandleGet handles GET /api/roles/:role_id. Unknown, malformed and unreachable
// all render as a null role.
func (h *RoleHandler) HandleGet(c *fiber.Ctx) error {
	role, err := h.roleRepo.FindByID(c.UserContext(), c.Params("role_id"))
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) && !errors.Is(err, repositories.ErrInvalidID) {
			h.log.Warn("⚠️ Failed to get role", zap.String("role_id", c.Params("role_id")), zap.Error(err))
		}
		return c.JSON(models.RoleResponse{Role: nil})
	}

	return c.JSON(models.RoleResponse{Role: role})
}

// HandleCreate handles POST /api/roles
func (h *RoleHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}

	if err := req.Validate(); err != nil {
		return fromValidator(err)
	}

	id, err := h.roleRepo.Create(c.UserContext(), &models.Role{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Level:        req.Level,
		Description:  req.Description,
		Requirements: req.Requirements,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return err
	}

	return c.JSON(models.CreateRoleResponse{ID: id})
}
