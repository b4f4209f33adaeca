package checkout

// CheckoutRequest collects the payment form fields. They are validated and
// then discarded: nothing is charged and nothing is stored.
type CheckoutRequest struct {
	FullName      string `json:"fullName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	PostalCode    string `json:"postalCode"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=card paypal transfer"`
}

type CheckoutResponse struct {
	OrderRef string `json:"orderRef"`
}
