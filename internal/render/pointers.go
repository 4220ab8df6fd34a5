package render

func stringOr(ptr *string, fallback string) string {
	if ptr == nil || *ptr == "" {
		return fallback
	}
	return *ptr
}

func intOr(ptr *int, fallback int) int {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
