package v1

import (
	"net/http"
	"strconv"
	"strings"

	"talentai-backend/internal/delivery/http/response"
	"talentai-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	matchingUC domain.MatchingUsecase
}

func NewMatchingHandler(protected *gin.RouterGroup, matchingUC domain.MatchingUsecase) {
	handler := &MatchingHandler{matchingUC: matchingUC}

	matching := protected.Group("/matching")
	{
		matching.GET("/jobs/:jobPostId/matches", handler.FindMatches)
	}
}

// FindMatches godoc
// @Summary      Ranked candidate matches for a job post
// @Description  Scores are computed server-side. min_score and skills narrow the
// @Description  list; limit controls how many entries are revealed.
// @Tags         matching
// @Produce      json
// @Param        jobPostId  path   string  true   "Job post ID"
// @Param        min_score  query  int     false  "Minimum match score (0-100)"
// @Param        skills     query  string  false  "Comma-separated skill filter; all must match"
// @Param        limit      query  int     false  "Number of matches to reveal"
// @Success      200  {object}  response.Response{data=[]domain.MatchCandidate}
// @Failure      403  {object}  response.Response
// @Router       /matching/jobs/{jobPostId}/matches [get]
// @Security     BearerAuth
func (h *MatchingHandler) FindMatches(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	jobID := c.Param("jobPostId")

	filter := domain.MatchFilter{}
	if raw := c.Query("min_score"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			filter.MinScore = v
		}
	}
	if raw := c.Query("skills"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Skills = append(filter.Skills, s)
			}
		}
	}

	displayCount := domain.MatchPageIncrement
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			displayCount = v
		}
	}

	matches, err := h.matchingUC.FindMatches(c.Request.Context(), userID, jobID, filter, displayCount)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matches retrieved", matches)
}
