package usecase

// coalesce returns value when non-empty, otherwise fallback.
func coalesce(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
