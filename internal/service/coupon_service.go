package service

import (
	"context"
	"sync"
	"time"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/notify"
	"github.com/fjod/go_cart/storefront/internal/pricing"
	"github.com/fjod/go_cart/storefront/internal/storage"
	"go.uber.org/zap"
)

// CouponSelection is the cart side of coupon deletion.
type CouponSelection interface {
	ClearCouponIfSelected(code string) bool
}

type CouponService struct {
	mu      sync.Mutex
	coupons []domain.Coupon

	showForm bool
	form     domain.CouponForm

	record    *storage.Collection[domain.Coupon]
	selection CouponSelection
	notifier  notify.Notifier
	log       *zap.Logger
	now       func() time.Time
}

// NewCouponService restores coupons from store, falling back to defaults.
func NewCouponService(ctx context.Context, store storage.Storage, defaults []domain.Coupon, selection CouponSelection, notifier notify.Notifier, log *zap.Logger) *CouponService {
	record := storage.NewCollection[domain.Coupon](store, storage.KeyCoupons, false, log)
	return &CouponService{
		coupons:   record.Load(ctx, defaults),
		form:      emptyCouponForm(),
		record:    record,
		selection: selection,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
	}
}

func (s *CouponService) Coupons() []domain.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Coupon, len(s.coupons))
	copy(out, s.coupons)
	return out
}

func (s *CouponService) Find(code string) (domain.Coupon, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.FindCoupon(s.coupons, code)
}

// AddCoupon appends c unless its code is taken.
func (s *CouponService) AddCoupon(ctx context.Context, c domain.Coupon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(ctx, c)
}

// DeleteCoupon removes the coupon with code and unselects it from the cart.
func (s *CouponService) DeleteCoupon(ctx context.Context, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(code)
	if i < 0 {
		return
	}
	s.coupons = append(s.coupons[:i], s.coupons[i+1:]...)
	s.persist(ctx)

	if s.selection != nil && s.selection.ClearCouponIfSelected(code) {
		s.log.Info("selected coupon deleted", zap.String("code", code))
	}
	s.notifier.Notify("Coupon deleted.", notify.SeveritySuccess)
}

// GenerateCode derives a code from name and the current time.
func (s *CouponService) GenerateCode(name string) string {
	return pricing.GenerateCouponCode(name, s.now())
}

func (s *CouponService) ShowForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showForm = true
}

// HideForm closes the form and resets the draft.
func (s *CouponService) HideForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetForm()
}

func (s *CouponService) FormVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showForm
}

func (s *CouponService) Form() domain.CouponForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *CouponService) SetForm(f domain.CouponForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

// SubmitForm adds the drafted coupon, generating a code when none was typed.
func (s *CouponService) SubmitForm(ctx context.Context) (domain.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.Coupon{
		Name:          s.form.Name,
		Code:          s.form.Code,
		DiscountType:  s.form.DiscountType,
		DiscountValue: s.form.DiscountValue,
	}
	if c.Code == "" {
		c.Code = pricing.GenerateCouponCode(c.Name, s.now())
	}
	if err := s.add(ctx, c); err != nil {
		return domain.Coupon{}, err
	}
	s.resetForm()
	// the next draft after an added coupon starts as a percentage coupon
	s.form.DiscountType = domain.DiscountPercentage
	return c, nil
}

func (s *CouponService) add(ctx context.Context, c domain.Coupon) error {
	if _, exists := pricing.FindCoupon(s.coupons, c.Code); exists {
		s.notifier.Notify("A coupon with this code already exists.", notify.SeverityError)
		return ErrDuplicateCoupon
	}
	if err := ValidateCoupon(c); err != nil {
		s.notifier.Notify(err.Error(), notify.SeverityError)
		return err
	}

	s.coupons = append(s.coupons, c)
	s.persist(ctx)
	s.notifier.Notify("Coupon added.", notify.SeveritySuccess)
	return nil
}

func (s *CouponService) indexOf(code string) int {
	for i, c := range s.coupons {
		if c.Code == code {
			return i
		}
	}
	return -1
}

func (s *CouponService) resetForm() {
	s.showForm = false
	s.form = emptyCouponForm()
}

func emptyCouponForm() domain.CouponForm {
	return domain.CouponForm{DiscountType: domain.DiscountAmount}
}

func (s *CouponService) persist(ctx context.Context) {
	if err := s.record.Save(ctx, s.coupons); err != nil {
		s.log.Error("persist coupons failed", zap.Error(err))
	}
}
