package v1

import (
	"net/http"

	"talentai-backend/internal/catalog"
	"talentai-backend/internal/delivery/http/response"
	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func NewCatalogHandler(public *gin.RouterGroup) {
	handler := &CatalogHandler{}

	public.GET("/skills", handler.ListSkills)
	public.GET("/skills/categories", handler.ListCategories)
}

// ListSkills godoc
// @Summary      Skill catalog
// @Description  List catalog skills, optionally filtered by category
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "development, web3, ai, marketing, qa or business"
// @Success      200  {object}  response.Response{data=[]domain.SkillDescriptor}
// @Failure      400  {object}  response.Response
// @Router       /skills [get]
func (h *CatalogHandler) ListSkills(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		response.Success(c, http.StatusOK, "Skills retrieved", catalog.AllSkills())
		return
	}

	cat := domain.SkillCategory(category)
	if !cat.IsValid() {
		c.Error(apperror.BadRequest("Unknown skill category"))
		return
	}

	response.Success(c, http.StatusOK, "Skills retrieved", catalog.SkillsByCategory(cat))
}

// ListCategories godoc
// @Summary      Skill categories
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.SkillCategory}
// @Router       /skills/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, "Categories retrieved", domain.ValidSkillCategories())
}
