package service

import (
	"context"

	"quintet_backend/internal/model"
	"quintet_backend/internal/repository"
	"quintet_backend/internal/util"
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) CreateUniversity(ctx context.Context, req *model.CreateUniversityRequest) (*model.University, error) {
	u := &model.University{Name: req.Name, Country: req.Country}
	if err := s.Repo.CreateUniversity(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *CatalogService) GetUniversity(ctx context.Context, id uint) (*model.University, error) {
	u, err := s.Repo.FindUniversity(ctx, id)
	if err != nil {
		return nil, notFound(err, util.ErrUniversityNotFound)
	}
	return u, nil
}

func (s *CatalogService) ListUniversities(ctx context.Context) ([]model.University, error) {
	return s.Repo.ListUniversities(ctx)
}

func (s *CatalogService) CreateTopic(ctx context.Context, req *model.CreateTopicRequest) (*model.Topic, error) {
	t := &model.Topic{Name: req.Name}
	if err := s.Repo.CreateTopic(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) ListTopics(ctx context.Context) ([]model.Topic, error) {
	return s.Repo.ListTopics(ctx)
}

func (s *CatalogService) CreateTextbook(ctx context.Context, req *model.CreateTextbookRequest) (*model.Textbook, error) {
	t := &model.Textbook{Title: req.Title, Author: req.Author, Link: req.Link}
	if err := s.Repo.CreateTextbook(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) ListTextbooks(ctx context.Context) ([]model.Textbook, error) {
	return s.Repo.ListTextbooks(ctx)
}
