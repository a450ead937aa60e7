package types

import "fmt"

// ValidationMode selects how strictly pdfcpu validates each input before
// its pages are copied.
type ValidationMode string

const (
	ValidationRelaxed ValidationMode = "relaxed"
	ValidationStrict  ValidationMode = "strict"
)

// ParseValidationMode maps a config or flag value to a ValidationMode.
// An empty string yields the relaxed default.
func ParseValidationMode(s string) (ValidationMode, error) {
	switch ValidationMode(s) {
	case "", ValidationRelaxed:
		return ValidationRelaxed, nil
	case ValidationStrict:
		return ValidationStrict, nil
	default:
		return "", fmt.Errorf("unknown validation mode %q (want relaxed or strict)", s)
	}
}

// MergeConfig holds the resolved settings for one merge run.
type MergeConfig struct {
	// Inputs lists the PDF paths in the order their pages are concatenated.
	Inputs []string `json:"inputs" yaml:"inputs"`

	// Output is the output path after name derivation and extension
	// normalization.
	Output string `json:"output" yaml:"output"`

	// Validation is the pdfcpu validation mode applied to every input.
	Validation ValidationMode `json:"validation" yaml:"validation"`

	// ReportPath, when set, receives a YAML report of the merge.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`

	// LogLevel is the logrus level name (default "warn").
	LogLevel string `json:"log_level" yaml:"log_level"`
}
