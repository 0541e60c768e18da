package mapper

import (
	"catalog-chatbot-be/internal/entity"
	"catalog-chatbot-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	return &entity.Product{
		Id:        p.Id,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	return &model.Product{
		Id:        p.Id,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func (m *ProductMapper) ToEntities(models []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(models))
	for i, p := range models {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
