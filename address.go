package addressparser

// Address is an untrusted address string submitted for validation
type Address string

// AddressValidator is the capability every address format plugs in through.
// TryParse must be safe for concurrent use and must not retain the address.
type AddressValidator interface {
	TryParse(address Address) error
}

// AddressValidatorFunc adapts a plain function to an AddressValidator
type AddressValidatorFunc func(address Address) error

var _ AddressValidator = AddressValidatorFunc(nil)

func (f AddressValidatorFunc) TryParse(address Address) error {
	return f(address)
}
