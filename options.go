package vitae

// Options selects the extraction strategy. The zero value is the plain
// text pipeline; DefaultOptions enables everything.
type Options struct {
	// UseFormatHints scores lines with font size and weight when the input
	// blocks carry them
	UseFormatHints bool `json:"use_format_hints" yaml:"use_format_hints"`

	// HierarchyAware keeps job titles inside experience sections from
	// starting new sections
	HierarchyAware bool `json:"hierarchy_aware" yaml:"hierarchy_aware"`

	// SplitLargeSections cuts sections of more than 150 words at header
	// lines still embedded in their content
	SplitLargeSections bool `json:"split_large_sections" yaml:"split_large_sections"`
}

// DefaultOptions returns the options used by New
func DefaultOptions() Options {
	return Options{
		UseFormatHints:     true,
		HierarchyAware:     true,
		SplitLargeSections: true,
	}
}
