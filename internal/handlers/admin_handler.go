package handlers

import (
	"github.com/gin-gonic/gin"

	"inovitaz_backend/internal/services"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type AdminHandler struct {
	*BaseHandler
	adminService  services.AdminService
	couponService services.CouponService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService, couponService services.CouponService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   base,
		adminService:  adminService,
		couponService: couponService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	admin := rg.Group("/admin", adminOnly)
	{
		admin.GET("/stats", h.Dashboard)

		admin.POST("/projects", h.CreateProject)
		admin.PUT("/projects/:id", h.UpdateProject)
		admin.DELETE("/projects/:id", h.DeleteProject)

		admin.GET("/orders", h.AllOrders)
		admin.GET("/users", h.AllUsers)

		admin.POST("/coupons", h.CreateCoupon)
		admin.GET("/coupons", h.ListCoupons)
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminService.Dashboard(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, stats)
}

func (h *AdminHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.adminService.CreateProject(c.Request.Context(), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *AdminHandler) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.adminService.UpdateProject(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *AdminHandler) DeleteProject(c *gin.Context) {
	if err := h.adminService.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Message(c, "Project deleted")
}

func (h *AdminHandler) AllOrders(c *gin.Context) {
	page, limit := h.ParsePagination(c, 20)
	resp, err := h.adminService.AllOrders(c.Request.Context(), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *AdminHandler) AllUsers(c *gin.Context) {
	page, limit := h.ParsePagination(c, 20)
	resp, err := h.adminService.AllUsers(c.Request.Context(), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *AdminHandler) CreateCoupon(c *gin.Context) {
	var req dto.CreateCouponRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.couponService.Create(c.Request.Context(), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *AdminHandler) ListCoupons(c *gin.Context) {
	page, limit := h.ParsePagination(c, 20)
	resp, err := h.couponService.List(c.Request.Context(), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}
