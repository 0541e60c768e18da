package service

import (
	"context"
	"sync"

	"catalog-chatbot-be/internal/entity"
	"catalog-chatbot-be/internal/repository/contract"
	"catalog-chatbot-be/internal/repository/specification"
	"catalog-chatbot-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
)

type fakeProductRepository struct {
	mu          sync.Mutex
	products    []*entity.Product
	nextID      int64
	failCreate  bool
	failSearch  bool
	failCount   bool
	searchCalls int
	matches     []*entity.ProductMatch // canned SearchSimilar result
}

func (f *fakeProductRepository) Create(_ context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return assert.AnError
	}
	f.nextID++
	product.Id = f.nextID
	copied := *product
	f.products = append(f.products, &copied)
	return nil
}

func (f *fakeProductRepository) FindOne(context.Context, ...specification.Specification) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.products) == 0 {
		return nil, nil
	}
	return f.products[0], nil
}

func (f *fakeProductRepository) FindAll(context.Context, ...specification.Specification) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.products, nil
}

func (f *fakeProductRepository) Count(context.Context, ...specification.Specification) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCount {
		return 0, assert.AnError
	}
	return int64(len(f.products)), nil
}

func (f *fakeProductRepository) SearchSimilar(_ context.Context, _ string, _ float64) ([]*entity.ProductMatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	if f.failSearch {
		return nil, assert.AnError
	}
	return f.matches, nil
}

func (f *fakeProductRepository) Probe(context.Context) error {
	return nil
}

type fakeUnitOfWork struct {
	repo contract.ProductRepository
}

func (f *fakeUnitOfWork) Begin(context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error               { return nil }
func (f *fakeUnitOfWork) Rollback() error             { return nil }

func (f *fakeUnitOfWork) ProductRepository() contract.ProductRepository { return f.repo }

type fakeRepositoryFactory struct {
	repo contract.ProductRepository
}

func (f *fakeRepositoryFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{repo: f.repo}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, []byte) error { return nil }
