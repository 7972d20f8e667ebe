package config

// DefaultMarkers returns the built-in comment directives.
func DefaultMarkers() Markers {
	return Markers{
		Enhance:    "deepcopy:enhance",
		Registered: "deepcopy:registered",
	}
}

// DefaultKinds returns the built-in base names per container kind.
// Only Go's own shapes are bound; the read-only and growable variants are
// left for user-named types.
func DefaultKinds() map[string][]string {
	return map[string][]string{
		KindArray:        {"array"},
		KindGrowableList: {"slice"},
		KindHashSet:      {"set"},
		KindHashMap:      {"map"},
	}
}

// DefaultImmutable returns types that are shared rather than copied.
func DefaultImmutable() []string {
	return []string{
		"time.Time",
		"time.Duration",
		"time.Location",
		"time.Month",
		"time.Weekday",
	}
}
