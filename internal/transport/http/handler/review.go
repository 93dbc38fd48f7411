package handler

import (
	"github.com/gin-gonic/gin"

	"reviewhub/internal/app"
	"reviewhub/internal/logging"
	"reviewhub/internal/transport/http/response"
)

type ReviewHandler struct {
	reviewService *app.ReviewService
	log           logging.Logger
}

// ReviewRequest keeps Rating as a pointer so a missing rating is told apart
// from zero; a non-integer JSON value fails binding.
type ReviewRequest struct {
	Rating     *int   `json:"rating" binding:"required"`
	ReviewText string `json:"review_text"`
}

func NewReviewHandler(reviewService *app.ReviewService, log logging.Logger) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, log: log}
}

func (h *ReviewHandler) ListByItem(c *gin.Context) {
	reviews, err := h.reviewService.ListByItem(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		writeError(c, h.log, err, "list reviews failed")
		return
	}
	response.OK(c, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c)
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), app.CreateReviewInput{
		UserID: user.ID,
		ItemID: c.Param("itemId"),
		Rating: *req.Rating,
		Text:   req.ReviewText,
	})
	if err != nil {
		writeError(c, h.log, err, "create review failed")
		return
	}
	response.Created(c, review)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	review, err := h.reviewService.Get(c.Request.Context(), c.Param("reviewId"))
	if err != nil {
		writeError(c, h.log, err, "fetch review failed")
		return
	}
	response.OK(c, review)
}

func (h *ReviewHandler) ListMine(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	reviews, err := h.reviewService.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, h.log, err, "list reviews failed")
		return
	}
	response.OK(c, reviews)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c)
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), app.UpdateReviewInput{
		ReviewID: c.Param("reviewId"),
		UserID:   user.ID,
		Rating:   *req.Rating,
		Text:     req.ReviewText,
	})
	if err != nil {
		writeError(c, h.log, err, "update review failed")
		return
	}
	response.OK(c, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), c.Param("reviewId"), user.ID); err != nil {
		writeError(c, h.log, err, "delete review failed")
		return
	}
	response.OK(c, nil)
}
