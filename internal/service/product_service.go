package service

import (
	"context"
	"sync"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/notify"
	"github.com/fjod/go_cart/storefront/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewProductID marks an edit session for a product not yet created.
const NewProductID = "new"

// DefaultDiscountTier is appended by AddDiscountTier.
var DefaultDiscountTier = domain.Discount{Quantity: 10, Rate: 0.1}

type ProductService struct {
	mu       sync.Mutex
	products []domain.Product

	editingID string
	showForm  bool
	form      domain.ProductForm

	record   *storage.Collection[domain.Product]
	notifier notify.Notifier
	log      *zap.Logger
	newID    func() string
}

// NewProductService restores the catalog from store, falling back to defaults.
func NewProductService(ctx context.Context, store storage.Storage, defaults []domain.Product, notifier notify.Notifier, log *zap.Logger) *ProductService {
	record := storage.NewCollection[domain.Product](store, storage.KeyProducts, true, log)
	return &ProductService{
		products: record.Load(ctx, defaults),
		record:   record,
		notifier: notifier,
		log:      log,
		newID:    uuid.NewString,
	}
}

func (s *ProductService) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

func (s *ProductService) Product(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Product{}, false
	}
	return s.products[i].Clone(), true
}

// AddProduct creates a product from form under a fresh id.
func (s *ProductService) AddProduct(ctx context.Context, form domain.ProductForm) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(ctx, form)
}

// UpdateProduct merges patch into the product with id.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(ctx, id, patch)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	s.persist(ctx)
	s.notifier.Notify("Product deleted.", notify.SeveritySuccess)
}

// StartNew opens an empty form for a new product.
func (s *ProductService) StartNew() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = NewProductID
	s.form = domain.ProductForm{}
	s.showForm = true
}

// StartEdit opens the form pre-filled with p.
func (s *ProductService) StartEdit(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = p.ID
	s.form = domain.FormFromProduct(p)
	s.showForm = true
}

// EditingID is the product under edit, NewProductID for a new one.
func (s *ProductService) EditingID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID, s.editingID != ""
}

func (s *ProductService) FormVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showForm
}

func (s *ProductService) Form() domain.ProductForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Clone()
}

func (s *ProductService) SetForm(f domain.ProductForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f.Clone()
}

func (s *ProductService) AddDiscountTier() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Discounts = append(s.form.Discounts, DefaultDiscountTier)
}

func (s *ProductService) RemoveDiscountTier(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.form.Discounts) {
		return false
	}
	s.form.Discounts = append(s.form.Discounts[:i], s.form.Discounts[i+1:]...)
	return true
}

func (s *ProductService) UpdateDiscountTier(i int, d domain.Discount) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.form.Discounts) {
		return false
	}
	s.form.Discounts[i] = d
	return true
}

// CancelEdit closes the form and discards the draft.
func (s *ProductService) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetSession()
}

// SubmitForm saves the draft as an update of the product under edit, or as
// a new product. The session is reset only on success.
func (s *ProductService) SubmitForm(ctx context.Context) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		p   domain.Product
		err error
	)
	if s.editingID != "" && s.editingID != NewProductID {
		p, err = s.update(ctx, s.editingID, s.form.Patch())
	} else {
		p, err = s.add(ctx, s.form)
	}
	if err != nil {
		return domain.Product{}, err
	}
	s.resetSession()
	return p, nil
}

func (s *ProductService) add(ctx context.Context, form domain.ProductForm) (domain.Product, error) {
	p := domain.Product{ID: s.newID()}.Apply(form.Patch())
	if err := ValidateProduct(p); err != nil {
		s.notifier.Notify(err.Error(), notify.SeverityError)
		return domain.Product{}, err
	}

	s.products = append(s.products, p)
	s.persist(ctx)
	s.notifier.Notify("Product added.", notify.SeveritySuccess)
	return p.Clone(), nil
}

func (s *ProductService) update(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Product{}, ErrProductNotFound
	}
	p := s.products[i].Apply(patch)
	if err := ValidateProduct(p); err != nil {
		s.notifier.Notify(err.Error(), notify.SeverityError)
		return domain.Product{}, err
	}

	s.products[i] = p
	s.persist(ctx)
	s.notifier.Notify("Product updated.", notify.SeveritySuccess)
	return p.Clone(), nil
}

func (s *ProductService) resetSession() {
	s.editingID = ""
	s.showForm = false
	s.form = domain.ProductForm{}
}

func (s *ProductService) indexOf(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *ProductService) persist(ctx context.Context) {
	if err := s.record.Save(ctx, s.products); err != nil {
		s.log.Error("persist products failed", zap.Error(err))
	}
}
