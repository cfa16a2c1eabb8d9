package checkout

// Validator decides whether a checkout carries enough information to price it.
type Validator func(info Info, lines []LineInfo) bool

// IsShippingRequired reports whether any line needs to be shipped.
func IsShippingRequired(lines []LineInfo) bool {
	for _, l := range lines {
		if l.ShippingRequired {
			return true
		}
	}
	return false
}

// ValidateForTaxes is the default Validator. It requires the same details the
// host needs before it can calculate taxes for a checkout.
func ValidateForTaxes(info Info, lines []LineInfo) bool {
	if len(lines) == 0 {
		return false
	}

	shippingRequired := IsShippingRequired(lines)
	if shippingRequired && info.ShippingAddress == nil {
		return false
	}

	address := info.ShippingAddress
	if address == nil {
		address = info.BillingAddress
	}
	if address == nil {
		return false
	}
	if address.Country == "" || address.PostalCode == "" {
		return false
	}

	if shippingRequired && info.DeliveryMethodID == "" {
		return false
	}
	return true
}
