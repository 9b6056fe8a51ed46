package tensornet

// Fields carries the named parameters handed to GenerateParameters.
// Field names match the YAML config keys.
type Fields map[string]any

// Field names accepted by the parameter records.
const (
	FieldNumIterLanczos       = "numiter_lanczos"
	FieldMaxBondDimension     = "max_bond_dimension"
	FieldSVDRelativeTolerance = "svd_relative_tolerance"
)

// GenerateParameters builds the validated parameter record for the
// given integration mode. The field map is checked strictly: a
// missing, unknown, or mistyped field fails with a FieldError before
// any record is constructed. Selecting ModeRungeKutta fails with
// ErrNotImplemented; a mode outside the enumeration fails with an
// UnknownModeError.
func GenerateParameters(mode IntegrationMode, fields Fields) (Parameters, error) {
	switch mode {
	case ModeTDVP1Site:
		ex := newExtractor(mode, fields)
		numIter := ex.intField(FieldNumIterLanczos)
		maxBond := ex.intField(FieldMaxBondDimension)
		if err := ex.finish(); err != nil {
			return nil, err
		}
		return NewTDVP1Site(numIter, maxBond)
	case ModeTDVP2Site:
		ex := newExtractor(mode, fields)
		numIter := ex.intField(FieldNumIterLanczos)
		maxBond := ex.intField(FieldMaxBondDimension)
		svdTol := ex.floatField(FieldSVDRelativeTolerance)
		if err := ex.finish(); err != nil {
			return nil, err
		}
		return NewTDVP2Site(numIter, maxBond, svdTol)
	case ModeTEBD:
		ex := newExtractor(mode, fields)
		maxBond := ex.intField(FieldMaxBondDimension)
		svdTol := ex.floatField(FieldSVDRelativeTolerance)
		if err := ex.finish(); err != nil {
			return nil, err
		}
		return NewTEBD(maxBond, svdTol)
	case ModeRungeKutta:
		return nil, ErrNotImplemented
	default:
		return nil, &UnknownModeError{Mode: mode}
	}
}

// extractor consumes a Fields map one declared field at a time and
// remembers the first mismatch it hits.
type extractor struct {
	mode   IntegrationMode
	fields Fields
	seen   map[string]bool
	err    error
}

func newExtractor(mode IntegrationMode, fields Fields) *extractor {
	return &extractor{mode: mode, fields: fields, seen: make(map[string]bool, len(fields))}
}

func (ex *extractor) intField(name string) int {
	v, ok := ex.take(name)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	default:
		ex.fail(name, "must be an integer")
		return 0
	}
}

func (ex *extractor) floatField(name string) float64 {
	v, ok := ex.take(name)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		ex.fail(name, "must be a number")
		return 0
	}
}

func (ex *extractor) take(name string) (any, bool) {
	ex.seen[name] = true
	if ex.err != nil {
		return nil, false
	}
	v, ok := ex.fields[name]
	if !ok {
		ex.fail(name, "is required")
		return nil, false
	}
	return v, true
}

// finish rejects any supplied field that no declared field consumed.
func (ex *extractor) finish() error {
	if ex.err != nil {
		return ex.err
	}
	for name := range ex.fields {
		if !ex.seen[name] {
			return &FieldError{Mode: ex.mode, Field: name, Reason: "is not a valid field"}
		}
	}
	return nil
}

func (ex *extractor) fail(name, reason string) {
	if ex.err == nil {
		ex.err = &FieldError{Mode: ex.mode, Field: name, Reason: reason}
	}
}
