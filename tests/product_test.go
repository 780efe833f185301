package tests

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ARUNKUMAR016/suganya-metals/internal/apierror"
	"github.com/ARUNKUMAR016/suganya-metals/internal/dto"
	"github.com/ARUNKUMAR016/suganya-metals/internal/model"
	"github.com/ARUNKUMAR016/suganya-metals/internal/repository"
	"github.com/ARUNKUMAR016/suganya-metals/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) add(p *model.Product) { r.products[p.ID] = p }

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindByName(_ context.Context, name string) (*model.Product, error) {
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCreateProduct_Success(t *testing.T) {
	svc := service.NewProductService(newStubProductRepo(), newStubProductionRepo())

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{Name: "Valve Body"})
	require.NoError(t, err)
	assert.Equal(t, "Valve Body", resp.Name)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateProduct_DuplicateName(t *testing.T) {
	repo := newStubProductRepo()
	repo.add(&model.Product{ID: uuid.New(), Name: "Valve Body"})
	svc := service.NewProductService(repo, newStubProductionRepo())

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{Name: "valve body"})
	require.Error(t, err)
	assert.Equal(t, 409, apierror.Status(err))
	assert.Equal(t, "product name already exists", apierror.Message(err))
}

func TestDeleteProduct_BlockedByProduction(t *testing.T) {
	productRepo := newStubProductRepo()
	prodRepo := newStubProductionRepo()
	product := &model.Product{ID: uuid.New(), Name: "Valve Body"}
	productRepo.add(product)

	date, _ := time.Parse(dto.DateLayout, "2026-03-02")
	day := &model.ProductionDay{ID: uuid.New(), Date: date, LabourID: uuid.New(), RoleID: uuid.New(), RatePerKg: dec("10")}
	day.Items = append(day.Items, model.ProductionItem{
		ID: uuid.New(), ProductionDayID: day.ID, ProductID: product.ID, QuantityKg: dec("5"), Amount: dec("50"),
	})
	prodRepo.days = append(prodRepo.days, day)
	svc := service.NewProductService(productRepo, prodRepo)

	err := svc.Delete(context.Background(), product.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apierror.Status(err))
	assert.Equal(t, "cannot delete product: associated with production records", apierror.Message(err))
	assert.Contains(t, productRepo.products, product.ID)
}

func TestDeleteProduct_Unreferenced(t *testing.T) {
	productRepo := newStubProductRepo()
	product := &model.Product{ID: uuid.New(), Name: "Valve Body"}
	productRepo.add(product)
	svc := service.NewProductService(productRepo, newStubProductionRepo())

	require.NoError(t, svc.Delete(context.Background(), product.ID))
	assert.NotContains(t, productRepo.products, product.ID)
}

func TestUpdateProduct_RenameToExistingName(t *testing.T) {
	repo := newStubProductRepo()
	repo.add(&model.Product{ID: uuid.New(), Name: "Valve Body"})
	other := &model.Product{ID: uuid.New(), Name: "Pump Casing"}
	repo.add(other)
	svc := service.NewProductService(repo, newStubProductionRepo())

	_, err := svc.Update(context.Background(), other.ID, dto.UpdateProductRequest{Name: "Valve Body"})
	require.Error(t, err)
	assert.Equal(t, 409, apierror.Status(err))
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc := service.NewProductService(newStubProductRepo(), newStubProductionRepo())

	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateProductRequest{Name: "X"})
	require.Error(t, err)
	assert.Equal(t, 404, apierror.Status(err))
}
