package assumptions

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the assumptions store. Compare with errors.Is.
var (
	// ErrConfigNotFound indicates the configuration source does not exist.
	ErrConfigNotFound = constError("assumptions source not found")

	// ErrConfigParse indicates the configuration source is malformed or misses a required key.
	ErrConfigParse = constError("assumptions source is invalid")

	// ErrUnknownField indicates a variable or subkey the store does not know about.
	ErrUnknownField = constError("unknown assumptions field")

	// ErrUnsupportedVersion indicates a schema_version outside the supported range.
	ErrUnsupportedVersion = constError("unsupported assumptions schema version")
)
