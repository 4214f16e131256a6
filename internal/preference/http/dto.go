package http

type ThemeResponse struct {
	DarkMode bool `json:"dark_mode"`
}

type UpdateThemeRequest struct {
	DarkMode *bool `json:"dark_mode" binding:"required"`
}
