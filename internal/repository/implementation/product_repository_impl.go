package implementation

import (
	"context"
	"errors"

	"catalog-chatbot-be/internal/entity"
	"catalog-chatbot-be/internal/mapper"
	"catalog-chatbot-be/internal/model"
	"catalog-chatbot-be/internal/repository/contract"
	"catalog-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	var m model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var models []*model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Product{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type productMatchRow struct {
	Id   int64
	Name string
	Sim  float64
}

func (r *ProductRepositoryImpl) SearchSimilar(ctx context.Context, query string, threshold float64) ([]*entity.ProductMatch, error) {
	var rows []productMatchRow

	// set_limit applies per connection, so both statements must run on the
	// same one. A transaction pins the connection.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT set_limit(?)", threshold).Error; err != nil {
			return err
		}
		return tx.Raw(`
			SELECT id, name, similarity(name, ?) AS sim
			FROM products
			WHERE name % ?
			ORDER BY sim DESC, id ASC;
		`, query, query).Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	matches := make([]*entity.ProductMatch, len(rows))
	for i, row := range rows {
		matches[i] = &entity.ProductMatch{
			ProductId:  row.Id,
			Name:       row.Name,
			Similarity: row.Sim,
		}
	}
	return matches, nil
}

func (r *ProductRepositoryImpl) Probe(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("SELECT 1 FROM products LIMIT 1;").Error
}
