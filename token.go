package addressparser

import "strings"

// Token identifies which address format an address is validated against
type Token string

// List of supported Token
const (
	AI3   = Token("AI3")   // Autonomys
	ALEO  = Token("ALEO")  // Aleo
	IRON  = Token("IRON")  // Iron Fish
	QUBIC = Token("QUBIC") // Qubic
)

var TokenList []Token = []Token{
	AI3,
	ALEO,
	IRON,
	QUBIC,
}

// Driver returns the default driver for a token, or "" if the token is unknown
func (token Token) Driver() Driver {
	switch token {
	case AI3:
		return DriverSubstrate
	case ALEO:
		return DriverAleo
	case IRON:
		return DriverIronfish
	case QUBIC:
		return DriverQubic
	}
	return ""
}

// Driver is the family of address encoding a token uses
type Driver string

// List of supported Driver
const (
	DriverAleo      = Driver("aleo")
	DriverIronfish  = Driver("ironfish")
	DriverQubic     = Driver("qubic")
	DriverSubstrate = Driver("substrate")
)

var SupportedDrivers = []Driver{
	DriverAleo,
	DriverIronfish,
	DriverQubic,
	DriverSubstrate,
}

func (driver Driver) Valid() bool {
	for _, d := range SupportedDrivers {
		if d == driver {
			return true
		}
	}
	return false
}

func ParseDriver(value string) (Driver, bool) {
	for _, d := range SupportedDrivers {
		if strings.EqualFold(string(d), value) {
			return d, true
		}
	}
	return "", false
}
