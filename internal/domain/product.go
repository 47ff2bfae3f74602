package domain

// Discount is a quantity tier attached to a product: buying at least
// Quantity units earns Rate off the unit price.
type Discount struct {
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
}

type Product struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Price         int        `json:"price"`
	Stock         int        `json:"stock"`
	Description   string     `json:"description"`
	Discounts     []Discount `json:"discounts"`
	IsRecommended bool       `json:"isRecommended,omitempty"`
}

// Clone returns p with its own copy of the discount tiers.
func (p Product) Clone() Product {
	p.Discounts = cloneDiscounts(p.Discounts)
	return p
}

func cloneDiscounts(d []Discount) []Discount {
	if d == nil {
		return nil
	}
	out := make([]Discount, len(d))
	copy(out, d)
	return out
}

// ProductForm is the admin draft of a product being created or edited.
type ProductForm struct {
	Name        string
	Price       int
	Stock       int
	Description string
	Discounts   []Discount
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name          *string
	Price         *int
	Stock         *int
	Description   *string
	Discounts     []Discount
	IsRecommended *bool
}

// FormFromProduct copies the editable fields of p into a draft.
func FormFromProduct(p Product) ProductForm {
	discounts := cloneDiscounts(p.Discounts)
	if discounts == nil {
		discounts = []Discount{}
	}
	return ProductForm{
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Discounts:   discounts,
	}
}

// Clone returns f with its own copy of the discount tiers.
func (f ProductForm) Clone() ProductForm {
	f.Discounts = cloneDiscounts(f.Discounts)
	return f
}

// Patch turns the draft into a full-field update.
func (f ProductForm) Patch() ProductPatch {
	discounts := cloneDiscounts(f.Discounts)
	if discounts == nil {
		discounts = []Discount{}
	}
	return ProductPatch{
		Name:        &f.Name,
		Price:       &f.Price,
		Stock:       &f.Stock,
		Description: &f.Description,
		Discounts:   discounts,
	}
}

// Apply merges the non-nil fields of patch into p.
func (p Product) Apply(patch ProductPatch) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Discounts != nil {
		p.Discounts = cloneDiscounts(patch.Discounts)
	}
	if patch.IsRecommended != nil {
		p.IsRecommended = *patch.IsRecommended
	}
	return p
}
