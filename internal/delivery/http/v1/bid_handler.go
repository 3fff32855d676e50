package v1

import (
	"net/http"

	"talentai-backend/internal/delivery/http/response"
	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	bidUC domain.BidUsecase
}

func NewBidHandler(protected *gin.RouterGroup, bidUC domain.BidUsecase) {
	handler := &BidHandler{bidUC: bidUC}

	protected.POST("/bids", handler.PlaceBid)
}

type PlaceBidRequest struct {
	JobID       int64   `json:"job_id" binding:"required"`
	CandidateID string  `json:"candidate_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

// PlaceBid godoc
// @Summary      Place or update a bid on a candidate
// @Description  One live bid per job/candidate pair; a second bid replaces the first
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        body  body      PlaceBidRequest  true  "Bid"
// @Success      201  {object}  response.Response{data=domain.Bid}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /bids [post]
// @Security     BearerAuth
func (h *BidHandler) PlaceBid(c *gin.Context) {
	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	bid, err := h.bidUC.PlaceBid(c.Request.Context(), userID, req.JobID, req.CandidateID, req.Amount)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Bid placed", bid)
}
