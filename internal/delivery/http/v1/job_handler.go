package v1

import (
	"net/http"
	"strconv"

	"talentai-backend/internal/delivery/http/response"
	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
	bidUC domain.BidUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase, bidUC domain.BidUsecase) {
	handler := &JobHandler{jobUC: jobUC, bidUC: bidUC}

	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("/public", handler.ListPublicJobs)
		publicJobs.GET("/public/:id", handler.GetJob)
	}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("", handler.CreateJob)
		jobs.PUT("/:id", handler.UpdateJob)
		jobs.DELETE("/:id", handler.DeleteJob)
		jobs.GET("/:id/bids", handler.ListBids)
	}

	employers := protected.Group("/employers")
	{
		employers.GET("/jobs", handler.ListMyJobs)
	}
}

type JobRequest struct {
	Title           string  `json:"title" binding:"required,max=150"`
	Description     string  `json:"description" binding:"required"`
	SalaryMin       float64 `json:"salary_min" binding:"min=0"`
	SalaryMax       float64 `json:"salary_max" binding:"min=0"`
	Location        string  `json:"location"`
	Status          string  `json:"status" binding:"omitempty,oneof=active closed"`
	EmploymentType  *string `json:"employment_type"`
	ExperienceLevel *string `json:"experience_level"`
}

func parseJobID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid job id")
	}
	return id, nil
}

func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

// ListPublicJobs godoc
// @Summary      Browse active jobs
// @Tags         jobs
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response{data=[]domain.JobWithCompany}
// @Router       /jobs/public [get]
func (h *JobHandler) ListPublicJobs(c *gin.Context) {
	page, pageSize := pagination(c)

	jobs, total, err := h.jobUC.ListPublicActiveJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  page,
	})
}

// GetJob godoc
// @Summary      Job details
// @Tags         jobs
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/public/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := parseJobID(c)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// CreateJob godoc
// @Summary      Create a job post
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      JobRequest  true  "Job"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:           req.Title,
		Description:     req.Description,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Location:        req.Location,
		Status:          domain.JobStatusActive,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// ListMyJobs godoc
// @Summary      Jobs posted by the caller's company
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Router       /employers/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	page, pageSize := pagination(c)
	userID := c.GetString(string(domain.KeyUserID))

	jobs, total, err := h.jobUC.ListJobsByEmployer(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  page,
	})
}

// UpdateJob godoc
// @Summary      Update a job post
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path  int         true  "Job ID"
// @Param        body  body  JobRequest  true  "Job"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := parseJobID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	status := req.Status
	if status == "" {
		status = domain.JobStatusActive
	}
	job := &domain.Job{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Location:        req.Location,
		Status:          status,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.UpdateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

// DeleteJob godoc
// @Summary      Delete a job post
// @Tags         jobs
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := parseJobID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// ListBids godoc
// @Summary      Bids placed on a job
// @Tags         bids
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response{data=[]domain.Bid}
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id}/bids [get]
// @Security     BearerAuth
func (h *JobHandler) ListBids(c *gin.Context) {
	id, err := parseJobID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	bids, err := h.bidUC.ListBidsForJob(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Bids retrieved", bids)
}
