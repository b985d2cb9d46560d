package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mesadeayuda/helpdesk-service/internal/model"
)

// CatalogService reads the static lookup tables backing the ticket form.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListAreas(ctx context.Context) ([]model.Area, error) {
	var items []model.Area
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	return items, nil
}

func (s *CatalogService) ListProyectos(ctx context.Context) ([]model.Proyecto, error) {
	var items []model.Proyecto
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list proyectos: %w", err)
	}
	return items, nil
}

func (s *CatalogService) ListTiposProblema(ctx context.Context) ([]model.TipoProblema, error) {
	var items []model.TipoProblema
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list tipos_problema: %w", err)
	}
	return items, nil
}
