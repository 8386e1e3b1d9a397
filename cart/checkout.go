package cart

import "errors"

const (
	PaymentMethodCOD    = "COD"
	PaymentMethodOnline = "Online"

	// Placeholder value of the online-method selector before the
	// customer picks a concrete method.
	MethodPlaceholder = "Choose"
)

// ShippingOption mirrors the settings document's shipping entries.
type ShippingOption struct {
	Id     string `json:"id"`
	Label  string `json:"label"`
	Charge int    `json:"charge"`
}

// Settings is the client's cached view of the site configuration that
// checkout depends on.
type Settings struct {
	OnlinePaymentInfo    string           `json:"onlinePaymentInfo"`
	CodEnabled           bool             `json:"codEnabled"`
	OnlinePaymentEnabled bool             `json:"onlinePaymentEnabled"`
	OnlinePaymentMethods []string         `json:"onlinePaymentMethods"`
	ShippingOptions      []ShippingOption `json:"shippingOptions"`
	ShowCityField        bool             `json:"showCityField"`
}

// CheckoutForm holds the customer's submission input.
type CheckoutForm struct {
	FullName         string
	Email            string
	Phone            string
	City             string
	Address          string
	PaymentMethod    string
	ShippingOptionId string
	PaymentNumber    string
	OnlineMethod     string
	TransactionId    string
}

// FieldErrors flags the form fields that failed validation, keyed by
// field name.
type FieldErrors map[string]bool

var (
	ErrCartEmpty           = errors.New("cart is empty")
	ErrCheckoutUnavailable = errors.New("no payment or shipping method is configured")
	ErrInvalidForm         = errors.New("please fill in all required fields")
)

// SelectShippingOption resolves the chosen option, falling back to
// the first available one when the selection is absent or unknown.
func SelectShippingOption(settings Settings, optionId string) (ShippingOption, bool) {
	if len(settings.ShippingOptions) == 0 {
		return ShippingOption{}, false
	}
	for _, opt := range settings.ShippingOptions {
		if opt.Id == optionId {
			return opt, true
		}
	}
	return settings.ShippingOptions[0], true
}

// EffectiveShipping is the charge actually added to the payable
// total. Under Online payment the shipping charge is collected
// separately as an advance, so it is excluded here; COD includes it.
func EffectiveShipping(paymentMethod string, option ShippingOption) int {
	if paymentMethod == PaymentMethodOnline {
		return 0
	}
	return option.Charge
}

// TotalPayable computes the amount due at submission time.
func TotalPayable(subtotal int, paymentMethod string, option ShippingOption) int {
	return subtotal + EffectiveShipping(paymentMethod, option)
}

// CheckoutAvailable reports whether checkout is possible at all: at
// least one payment method enabled and at least one shipping option.
func CheckoutAvailable(settings Settings) bool {
	if !settings.CodEnabled && !settings.OnlinePaymentEnabled {
		return false
	}
	return len(settings.ShippingOptions) > 0
}

// Validate checks the form against the settings. The returned flags
// are per-field; submission is allowed only when the map is empty.
func (f CheckoutForm) Validate(settings Settings) FieldErrors {
	fieldErrors := FieldErrors{}

	if f.FullName == "" {
		fieldErrors["fullName"] = true
	}
	if f.Email == "" {
		fieldErrors["email"] = true
	}
	if f.Phone == "" {
		fieldErrors["phone"] = true
	}
	if f.City == "" {
		fieldErrors["city"] = true
	}
	if f.Address == "" {
		fieldErrors["address"] = true
	}
	if _, ok := SelectShippingOption(settings, f.ShippingOptionId); !ok {
		fieldErrors["shippingOption"] = true
	}

	switch f.PaymentMethod {
	case PaymentMethodCOD:
		if !settings.CodEnabled {
			fieldErrors["paymentMethod"] = true
		}
	case PaymentMethodOnline:
		if !settings.OnlinePaymentEnabled {
			fieldErrors["paymentMethod"] = true
		}
		// The payment fields are required whenever the method is
		// Online, independent of the settings toggles.
		if f.PaymentNumber == "" {
			fieldErrors["paymentNumber"] = true
		}
		if f.OnlineMethod == "" || f.OnlineMethod == MethodPlaceholder {
			fieldErrors["onlineMethod"] = true
		}
		if f.TransactionId == "" {
			fieldErrors["transactionId"] = true
		}
	default:
		fieldErrors["paymentMethod"] = true
	}

	return fieldErrors
}

// Checkout validates the form, computes the payable total and submits
// the order. The cart is cleared only after the server accepts the
// order; a failed submission keeps every line so the customer can
// retry.
func (e *Engine) Checkout(client *Client, settings Settings, form CheckoutForm) (*Order, error) {
	if len(e.lines) == 0 {
		e.notify("Your cart is empty.", "error")
		return nil, ErrCartEmpty
	}
	if !CheckoutAvailable(settings) {
		e.notify("Checkout is currently unavailable.", "error")
		return nil, ErrCheckoutUnavailable
	}
	if fieldErrors := form.Validate(settings); len(fieldErrors) > 0 {
		e.notify("Please fill in all required fields.", "error")
		return nil, ErrInvalidForm
	}

	option, _ := SelectShippingOption(settings, form.ShippingOptionId)
	totalPayable := TotalPayable(e.total, form.PaymentMethod, option)

	req := OrderRequest{
		CustomerDetails: CustomerDetails{
			FirstName: form.FullName,
			Email:     form.Email,
			Phone:     form.Phone,
			Address:   form.Address,
			City:      form.City,
		},
		CartItems: e.Lines(),
		Total:     totalPayable,
		// Stored for reporting even when excluded from the total.
		ShippingCharge: option.Charge,
		PaymentInfo:    PaymentInfo{PaymentMethod: form.PaymentMethod},
	}
	if form.PaymentMethod == PaymentMethodOnline {
		req.PaymentInfo.PaymentDetails = &PaymentDetails{
			PaymentNumber: form.PaymentNumber,
			Method:        form.OnlineMethod,
			Amount:        totalPayable,
			TransactionId: form.TransactionId,
		}
	}

	order, err := client.SubmitOrder(req)
	if err != nil {
		e.notify(err.Error(), "error")
		return nil, err
	}

	e.Clear()
	return order, nil
}
