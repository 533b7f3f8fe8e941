package handlers

import (
	"github.com/gin-gonic/gin"

	"inovitaz_backend/internal/services"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type ProjectHandler struct {
	*BaseHandler
	projectService  services.ProjectService
	downloadService services.DownloadService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService, downloadService services.DownloadService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:     base,
		projectService:  projectService,
		downloadService: downloadService,
	}
}

// RegisterRoutes: listing and detail are public but auth-aware; the
// download endpoint requires a logged-in user.
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup, authOptional, authRequired gin.HandlerFunc) {
	projects := rg.Group("/projects")
	{
		projects.GET("", authOptional, h.List)
		projects.GET("/categories", h.Categories)
		projects.GET("/:id", authOptional, h.Detail)
		projects.GET("/:id/download", authRequired, h.Download)
	}
}

func (h *ProjectHandler) List(c *gin.Context) {
	var query dto.ProjectListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	resp, err := h.projectService.List(c.Request.Context(), &query)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProjectHandler) Detail(c *gin.Context) {
	resp, err := h.projectService.Detail(c.Request.Context(), c.Param("id"), h.CurrentUser(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProjectHandler) Categories(c *gin.Context) {
	resp, err := h.projectService.Categories(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProjectHandler) Download(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	if user.IsAdmin() {
		grant, err := h.downloadService.GrantAdmin(c.Request.Context(), c.Param("id"))
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		h.OK(c, grant)
		return
	}

	grant, err := h.downloadService.Grant(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, grant)
}
