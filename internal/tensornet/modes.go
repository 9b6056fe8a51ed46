package tensornet

// IntegrationMode identifies one of the supported MPS time-evolution
// schemes.
type IntegrationMode string

const (
	// ModeTDVP1Site is the single-site time-dependent variational principle.
	ModeTDVP1Site IntegrationMode = "TDVP1"
	// ModeTDVP2Site is the two-site time-dependent variational principle.
	ModeTDVP2Site IntegrationMode = "TDVP2"
	// ModeTEBD is time-evolving block decimation.
	ModeTEBD IntegrationMode = "TEBD"
	// ModeRungeKutta is reserved for direct Runge-Kutta integration,
	// which is not yet implemented.
	ModeRungeKutta IntegrationMode = "RK"
)

// Modes returns the closed set of integration modes.
func Modes() []IntegrationMode {
	return []IntegrationMode{ModeTDVP1Site, ModeTDVP2Site, ModeTEBD, ModeRungeKutta}
}

// Valid reports whether m is a member of the mode enumeration.
func (m IntegrationMode) Valid() bool {
	switch m {
	case ModeTDVP1Site, ModeTDVP2Site, ModeTEBD, ModeRungeKutta:
		return true
	}
	return false
}

func (m IntegrationMode) String() string { return string(m) }

// ParseMode converts a config or CLI string to an IntegrationMode.
func ParseMode(s string) (IntegrationMode, error) {
	m := IntegrationMode(s)
	if !m.Valid() {
		return "", &UnknownModeError{Mode: m}
	}
	return m, nil
}
