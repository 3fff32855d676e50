package v1

import (
	"net/http"

	"talentai-backend/internal/delivery/http/response"
	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	candidateUC domain.CandidateProfileUsecase
	companyUC   domain.CompanyProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, candidateUC domain.CandidateProfileUsecase, companyUC domain.CompanyProfileUsecase) {
	handler := &ProfileHandler{candidateUC: candidateUC, companyUC: companyUC}

	profiles := protected.Group("/profiles")
	{
		profiles.GET("/getMyProfile", handler.GetMyProfile)
		profiles.POST("/createOrUpdateProfile", handler.CreateOrUpdateProfile)
		profiles.POST("/test-results", handler.SubmitTestResult)

		profiles.GET("/getMyCompanyProfile", handler.GetMyCompanyProfile)
		profiles.POST("/createOrUpdateCompanyProfile", handler.CreateOrUpdateCompanyProfile)
	}
}

func (h *ProfileHandler) userID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

// GetMyProfile godoc
// @Summary      Candidate profile of the caller
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      404  {object}  response.Response
// @Router       /profiles/getMyProfile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	profile, err := h.candidateUC.GetMyProfile(c.Request.Context(), h.userID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

type UpsertProfileRequest struct {
	Title  string                  `json:"title" binding:"max=100"`
	Bio    string                  `json:"bio" binding:"max=500"`
	Skills []domain.CandidateSkill `json:"skills"`
}

// CreateOrUpdateProfile godoc
// @Summary      Create or update the caller's candidate profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body      UpsertProfileRequest  true  "Profile"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400  {object}  response.Response
// @Router       /profiles/createOrUpdateProfile [post]
// @Security     BearerAuth
func (h *ProfileHandler) CreateOrUpdateProfile(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.CandidateProfile{
		UserID: h.userID(c),
		Title:  req.Title,
		Bio:    req.Bio,
		Skills: req.Skills,
	}
	if err := h.candidateUC.UpsertProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile saved", profile)
}

// SubmitTestResult godoc
// @Summary      Record a skill test result
// @Description  Attaches the tested skill to the profile; a passing score verifies the account
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SkillTestResult  true  "Test result"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profiles/test-results [post]
// @Security     BearerAuth
func (h *ProfileHandler) SubmitTestResult(c *gin.Context) {
	var req domain.SkillTestResult
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.SubmitTestResult(c.Request.Context(), h.userID(c), &req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Test result recorded", nil)
}

// GetMyCompanyProfile godoc
// @Summary      Company profile of the caller
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CompanyProfile}
// @Failure      404  {object}  response.Response
// @Router       /profiles/getMyCompanyProfile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMyCompanyProfile(c *gin.Context) {
	profile, err := h.companyUC.GetMyProfile(c.Request.Context(), h.userID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile retrieved", profile)
}

type UpsertCompanyProfileRequest struct {
	Name                    string   `json:"name" binding:"required,max=100"`
	Industry                string   `json:"industry" binding:"required,max=100"`
	Size                    string   `json:"size" binding:"required,max=50"`
	Location                string   `json:"location" binding:"required,max=100"`
	RequiredSkills          []string `json:"required_skills"`
	RequiredExperienceLevel string   `json:"required_experience_level"`
}

// CreateOrUpdateCompanyProfile godoc
// @Summary      Create or update the caller's company profile
// @Description  Required skills are stored exactly as submitted
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body      UpsertCompanyProfileRequest  true  "Company profile"
// @Success      200  {object}  response.Response{data=domain.CompanyProfile}
// @Failure      400  {object}  response.Response
// @Router       /profiles/createOrUpdateCompanyProfile [post]
// @Security     BearerAuth
func (h *ProfileHandler) CreateOrUpdateCompanyProfile(c *gin.Context) {
	var req UpsertCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.CompanyProfile{
		UserID:                  h.userID(c),
		Name:                    req.Name,
		Industry:                req.Industry,
		Size:                    req.Size,
		Location:                req.Location,
		RequiredSkills:          req.RequiredSkills,
		RequiredExperienceLevel: req.RequiredExperienceLevel,
	}
	if err := h.companyUC.UpsertProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile saved", profile)
}
