package service

import (
	"context"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/repository"
)

type CommentService interface {
	CreatePublic(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	SetStatus(ctx context.Context, id, status string) (*models.Comment, error)
	Delete(ctx context.Context, id string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

// CreatePublic stores a visitor comment. Whatever status the client sends,
// the comment enters moderation as pending.
func (s *commentService) CreatePublic(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	comment.Status = models.CommentStatusPending
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) SetStatus(ctx context.Context, id, status string) (*models.Comment, error) {
	return s.commentRepo.SetStatus(ctx, id, status)
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	return s.commentRepo.Delete(ctx, id)
}
