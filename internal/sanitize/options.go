package sanitize

// DefaultMaxStringLength caps every string leaf unless overridden.
const DefaultMaxStringLength = 10000

// Options bounds how untrusted input is coerced.
type Options struct {
	// TrimStrings removes leading and trailing whitespace from string leaves.
	TrimStrings bool `yaml:"trim_strings"`
	// ParseNumbers accepts numeric strings in numeric fields.
	ParseNumbers bool `yaml:"parse_numbers"`
	// MaxStringLength is measured in runes. Zero or less means the default;
	// there is no unbounded setting.
	MaxStringLength int `yaml:"max_string_length" validate:"gte=0"`
	// StripNulls drops null leaves instead of decoding them as zero values.
	StripNulls bool `yaml:"strip_nulls"`
	// StripMarkup removes HTML from free-text meta fields.
	StripMarkup bool `yaml:"strip_markup"`
}

// DefaultOptions enables every coercion.
func DefaultOptions() Options {
	return Options{
		TrimStrings:     true,
		ParseNumbers:    true,
		MaxStringLength: DefaultMaxStringLength,
		StripNulls:      true,
		StripMarkup:     true,
	}
}

func (o Options) maxLength() int {
	if o.MaxStringLength <= 0 {
		return DefaultMaxStringLength
	}
	return o.MaxStringLength
}
