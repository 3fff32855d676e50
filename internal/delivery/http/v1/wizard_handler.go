package v1

import (
	"net/http"

	"talentai-backend/internal/catalog"
	"talentai-backend/internal/delivery/http/response"
	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type WizardHandler struct {
	wizardUC domain.WizardUsecase
}

func NewWizardHandler(protected *gin.RouterGroup, wizardUC domain.WizardUsecase) {
	handler := &WizardHandler{wizardUC: wizardUC}

	wizard := protected.Group("/wizard")
	{
		wizard.POST("/start", handler.Start)
		wizard.GET("", handler.Get)
		wizard.POST("/type", handler.ChooseType)
		wizard.POST("/skills", handler.SelectSkill)
		wizard.DELETE("/skills/:label", handler.DeselectSkill)
		wizard.POST("/hedera-experience", handler.SetHederaExperience)
		wizard.GET("/quiz", handler.QuizQuestions)
		wizard.POST("/quiz/answers", handler.AnswerQuiz)
		wizard.POST("/proficiency", handler.RateSkill)
		wizard.POST("/company-details", handler.SetCompanyDetails)
		wizard.POST("/experience-level", handler.SetExperienceLevel)
		wizard.POST("/next", handler.Next)
		wizard.POST("/back", handler.Back)
		wizard.POST("/complete", handler.Complete)
	}
}

func (h *WizardHandler) userID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

// Start godoc
// @Summary      Start onboarding
// @Description  Create (or reset) the caller's onboarding session
// @Tags         wizard
// @Produce      json
// @Success      201  {object}  response.Response{data=domain.WizardView}
// @Router       /wizard/start [post]
// @Security     BearerAuth
func (h *WizardHandler) Start(c *gin.Context) {
	view, err := h.wizardUC.Start(c.Request.Context(), h.userID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Onboarding started", view)
}

// Get godoc
// @Summary      Current onboarding state
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.WizardView}
// @Failure      404  {object}  response.Response
// @Router       /wizard [get]
// @Security     BearerAuth
func (h *WizardHandler) Get(c *gin.Context) {
	view, err := h.wizardUC.Get(c.Request.Context(), h.userID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Onboarding state retrieved", view)
}

type ChooseTypeRequest struct {
	UserType string `json:"user_type" binding:"required,oneof=candidate company"`
}

// ChooseType godoc
// @Summary      Select account type
// @Description  Pick candidate or company; the remaining steps derive from it
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body      ChooseTypeRequest  true  "Account type"
// @Success      200  {object}  response.Response{data=domain.WizardView}
// @Failure      400  {object}  response.Response
// @Router       /wizard/type [post]
// @Security     BearerAuth
func (h *WizardHandler) ChooseType(c *gin.Context) {
	var req ChooseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, err := h.wizardUC.ChooseType(c.Request.Context(), h.userID(c), domain.UserType(req.UserType))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Account type selected", view)
}

type SelectSkillRequest struct {
	Label string `json:"label" binding:"required"`
}

// SelectSkill godoc
// @Summary      Select a skill
// @Description  Candidates may hold one skill at a time; companies may list several
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body      SelectSkillRequest  true  "Skill label"
// @Success      200  {object}  response.Response{data=domain.WizardView}
// @Failure      400  {object}  response.Response
// @Router       /wizard/skills [post]
// @Security     BearerAuth
func (h *WizardHandler) SelectSkill(c *gin.Context) {
	var req SelectSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, err := h.wizardUC.SelectSkill(c.Request.Context(), h.userID(c), req.Label)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill selected", view)
}

// DeselectSkill godoc
// @Summary      Deselect a skill
// @Tags         wizard
// @Produce      json
// @Param        label  path  string  true  "Skill label"
// @Success      200  {object}  response.Response{data=domain.WizardView}
// @Router       /wizard/skills/{label} [delete]
// @Security     BearerAuth
func (h *WizardHandler) DeselectSkill(c *gin.Context) {
	view, err := h.wizardUC.DeselectSkill(c.Request.Context(), h.userID(c), c.Param("label"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill removed", view)
}

type HederaExperienceRequest struct {
	Experience string `json:"experience" binding:"required,oneof=yes no"`
}

// SetHederaExperience godoc
// @Summary      Answer the Hedera experience question
// @Description  "yes" inserts the Hedera QCM step when Hedera is the selected skill
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body      HederaExperienceRequest  true  "yes or no"
// @Success      200  {object}  response.Response{data=domain.WizardView}
// @Router       /wizard/hedera-experience [post]
// @Security     BearerAuth
func (h *WizardHandler) SetHederaExperience(c *gin.Context) {
	var req HederaExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, err := h.wizardUC.SetHederaExperience(c.Request.Context(), h.userID(c), domain.HederaExperience(req.Experience))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience recorded", view)
}

// QuizQuestions godoc
// @Summary      Hedera QCM questions
// @Description  Questions only; correct answers never leave the server
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  response.Response{data=[]catalog.QuizQuestion}
// @Router       /wizard/quiz [get]
// @Security     BearerAuth
func (h *WizardHandler) QuizQuestions(c *gin.Context) {
	response.Success(c, http.StatusOK, "Quiz questions retrieved", catalog.HederaQuiz())
}

type QuizAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     int    `json:"answer" binding:"min=0,max=3"`
}

// AnswerQuiz godoc
// @Summary      Answer a quiz question
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body      QuizAnswerRequest  true  "Answer"
// @Success      200  {object}  response.Response{data=domain.WizardView}
// @Router       /wizard/quiz/answers [post]
// @Security     BearerAuth
func (h *WizardHandler) AnswerQuiz(c *gin.Context) {
	var req QuizAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, err := h.wizardUC.AnswerQuiz(c.Request.Context(), h.userID(c), req.QuestionID, req.Answer)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Answer recorded", view)
}

type RateSkillRequest struct {
	Label string `json:"label" binding:"required"`
	Level int    `json:"level" binding:"required,min=1,max=5"`
}

// RateSkill godoc
// @Summary      Rate proficiency for a selected skill
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body      RateSkillRequest  true  "1 to 5"
// @Success      200  {object}  response.Response{data=domain.WizardView}
// @Router       /wizard/proficiency [post]
// @Security     BearerAuth
func (h *WizardHandler) RateSkill(c *gin.Context) {
	var req RateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, err := h.wizardUC.RateSkill(c.Request.Context(), h.userID(c), req.Label, req.Level)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Proficiency recorded", view)
}

type CompanyDetailsRequest struct {
	Name     string `json:"name" binding:"required"`
	Industry string `json:"industry" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// SetCompanyDetails godoc
// @Summary      Company details step
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body      CompanyDetailsRequest  true  "Company details"
// @Success      200  {object}  response.Response{data=domain.WizardView}
// @Router       /wizard/company-details [post]
// @Security     BearerAuth
func (h *WizardHandler) SetCompanyDetails(c *gin.Context) {
	var req CompanyDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, err := h.wizardUC.SetCompanyDetails(c.Request.Context(), h.userID(c), domain.CompanyDetails{
		Name:     req.Name,
		Industry: req.Industry,
		Size:     req.Size,
		Location: req.Location,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company details saved", view)
}

type ExperienceLevelRequest struct {
	Level string `json:"level" binding:"required"`
}

// SetExperienceLevel godoc
// @Summary      Required experience level step
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body      ExperienceLevelRequest  true  "entry, junior, mid, senior or lead"
// @Success      200  {object}  response.Response{data=domain.WizardView}
// @Router       /wizard/experience-level [post]
// @Security     BearerAuth
func (h *WizardHandler) SetExperienceLevel(c *gin.Context) {
	var req ExperienceLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, err := h.wizardUC.SetExperienceLevel(c.Request.Context(), h.userID(c), req.Level)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience level saved", view)
}

// Next godoc
// @Summary      Advance to the next step
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.WizardView}
// @Failure      400  {object}  response.Response
// @Router       /wizard/next [post]
// @Security     BearerAuth
func (h *WizardHandler) Next(c *gin.Context) {
	view, err := h.wizardUC.Next(c.Request.Context(), h.userID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Advanced to next step", view)
}

// Back godoc
// @Summary      Return to the previous step
// @Description  Going back never discards already-entered data
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.WizardView}
// @Router       /wizard/back [post]
// @Security     BearerAuth
func (h *WizardHandler) Back(c *gin.Context) {
	view, err := h.wizardUC.Back(c.Request.Context(), h.userID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Returned to previous step", view)
}

type CompleteRequest struct {
	ReturnURL string `json:"return_url"`
}

// Complete godoc
// @Summary      Complete onboarding
// @Description  Persist the collected data and return the post-onboarding redirect
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body      CompleteRequest  false  "Optional return URL"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /wizard/complete [post]
// @Security     BearerAuth
func (h *WizardHandler) Complete(c *gin.Context) {
	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	redirect, err := h.wizardUC.Complete(c.Request.Context(), h.userID(c), req.ReturnURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding complete", gin.H{
		"redirect_url": redirect,
	})
}
