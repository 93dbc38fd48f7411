package app

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"reviewhub/internal/model"
	"reviewhub/internal/repository"
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	reviewRepo  *repository.ReviewRepository
}

type CreateCommentInput struct {
	ReviewID string
	UserID   string
	Text     string
}

type UpdateCommentInput struct {
	CommentID string
	UserID    string
	Text      string
}

func NewCommentService(commentRepo *repository.CommentRepository, reviewRepo *repository.ReviewRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *CommentService) Create(ctx context.Context, input CreateCommentInput) (*model.Comment, error) {
	if input.UserID == "" {
		return nil, ErrInvalidInput
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrEmptyCommentText
	}

	review, err := s.reviewRepo.GetByID(ctx, input.ReviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	existing, err := s.commentRepo.GetByUserAndReview(ctx, input.UserID, input.ReviewID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCommentExists
	}

	comment := &model.Comment{
		ID:          uuid.NewString(),
		ReviewID:    input.ReviewID,
		UserID:      input.UserID,
		CommentText: text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, ErrCommentExists
		case errors.Is(err, repository.ErrForeignKeyViolate):
			return nil, ErrReviewNotFound
		default:
			return nil, err
		}
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, input UpdateCommentInput) (*model.Comment, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrEmptyCommentText
	}

	comment, err := s.ownedComment(ctx, input.CommentID, input.UserID)
	if err != nil {
		return nil, err
	}

	ok, err := s.commentRepo.UpdateByIDAndUserID(ctx, comment.ID, input.UserID, text)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCommentNotFound
	}

	updated, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrCommentNotFound
	}
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID, userID string) error {
	comment, err := s.ownedComment(ctx, commentID, userID)
	if err != nil {
		return err
	}

	ok, err := s.commentRepo.DeleteByIDAndUserID(ctx, comment.ID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCommentNotFound
	}
	return nil
}

func (s *CommentService) ListByReview(ctx context.Context, reviewID string) ([]model.Comment, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return s.commentRepo.ListByReviewID(ctx, reviewID)
}

func (s *CommentService) ListByUser(ctx context.Context, userID string) ([]model.Comment, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.commentRepo.ListByUserID(ctx, userID)
}

func (s *CommentService) ownedComment(ctx context.Context, commentID, userID string) (*model.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if err := AssertOwner(userID, comment.UserID); err != nil {
		return nil, err
	}
	return comment, nil
}
