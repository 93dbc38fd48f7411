package handler

import (
	"github.com/gin-gonic/gin"

	"reviewhub/internal/app"
	"reviewhub/internal/logging"
	"reviewhub/internal/transport/http/response"
)

type CommentHandler struct {
	commentService *app.CommentService
	log            logging.Logger
}

type CommentRequest struct {
	CommentText string `json:"comment_text"`
}

func NewCommentHandler(commentService *app.CommentService, log logging.Logger) *CommentHandler {
	return &CommentHandler{commentService: commentService, log: log}
}

func (h *CommentHandler) ListByReview(c *gin.Context) {
	comments, err := h.commentService.ListByReview(c.Request.Context(), c.Param("reviewId"))
	if err != nil {
		writeError(c, h.log, err, "list comments failed")
		return
	}
	response.OK(c, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), app.CreateCommentInput{
		ReviewID: c.Param("reviewId"),
		UserID:   user.ID,
		Text:     req.CommentText,
	})
	if err != nil {
		writeError(c, h.log, err, "create comment failed")
		return
	}
	response.Created(c, comment)
}

func (h *CommentHandler) ListMine(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	comments, err := h.commentService.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, h.log, err, "list comments failed")
		return
	}
	response.OK(c, comments)
}

func (h *CommentHandler) Update(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c)
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), app.UpdateCommentInput{
		CommentID: c.Param("commentId"),
		UserID:    user.ID,
		Text:      req.CommentText,
	})
	if err != nil {
		writeError(c, h.log, err, "update comment failed")
		return
	}
	response.OK(c, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), c.Param("commentId"), user.ID); err != nil {
		writeError(c, h.log, err, "delete comment failed")
		return
	}
	response.OK(c, nil)
}
