package domain

type DiscountType string

const (
	DiscountAmount     DiscountType = "amount"
	DiscountPercentage DiscountType = "percentage"
)

type Coupon struct {
	Name          string       `json:"name"`
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue int          `json:"discountValue"`
}

// CouponForm is the admin draft of a coupon. An empty Code means one is
// generated from Name on submit.
type CouponForm struct {
	Name          string
	Code          string
	DiscountType  DiscountType
	DiscountValue int
}
