package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campaign-service/internal/api/dto"
	"github.com/spec-kit/campaign-service/internal/auth"
	"github.com/spec-kit/campaign-service/internal/domain"
	"github.com/spec-kit/campaign-service/internal/repository"
	"github.com/spec-kit/campaign-service/internal/service"
)

// CampaignsHandler exposes campaign browse, CRUD, likes, and progress.
type CampaignsHandler struct {
	campaigns *service.CampaignService
}

// NewCampaignsHandler constructs handler.
func NewCampaignsHandler(campaignService *service.CampaignService) *CampaignsHandler {
	return &CampaignsHandler{campaigns: campaignService}
}

// List handles GET /api/campaigns.
func (h *CampaignsHandler) List(c *fiber.Ctx) error {
	filter := repository.CampaignFilter{
		Category: c.Query("category"),
		Status:   domain.CampaignStatus(c.Query("status")),
		Limit:    c.QueryInt("limit", 20),
		Offset:   c.QueryInt("offset", 0),
	}

	campaigns, err := h.campaigns.List(c.Context(), filter)
	if err != nil {
		return err
	}

	out := make([]dto.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		out = append(out, dto.NewCampaignResponse(campaign))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get handles GET /api/campaigns/:id.
func (h *CampaignsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	campaign, err := h.campaigns.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCampaignResponse(campaign)})
}

// Create handles POST /api/campaigns.
func (h *CampaignsHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	campaign, err := h.campaigns.Create(c.Context(), userID, service.CreateCampaignInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		RecruitCount: req.RecruitCount,
		ApplyStart:   req.ApplyStart,
		ApplyEnd:     req.ApplyEnd,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCampaignResponse(campaign)})
}

// Update handles PUT /api/campaigns/:id.
func (h *CampaignsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	campaign, err := h.campaigns.Update(c.Context(), principal.UserID, principal.Role, id, service.CreateCampaignInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		RecruitCount: req.RecruitCount,
		ApplyStart:   req.ApplyStart,
		ApplyEnd:     req.ApplyEnd,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCampaignResponse(campaign)})
}

// Progress handles GET /api/campaigns/status/:id/progress.
func (h *CampaignsHandler) Progress(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	progress, err := h.campaigns.Progress(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ProgressResponse{
		CampaignID:   progress.CampaignID,
		RecruitCount: progress.RecruitCount,
		Applied:      progress.Applied,
		Selected:     progress.Selected,
	}})
}

// ToggleLike handles POST /api/campaigns/:id/like.
func (h *CampaignsHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	liked, count, err := h.campaigns.ToggleLike(c.Context(), id, userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"liked": liked, "like_count": count}})
}

func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
