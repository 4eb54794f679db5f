package dto

// UpdateSettingsRequest carries patch semantics: nil fields are left untouched.
type UpdateSettingsRequest struct {
	Theme    *string `json:"theme,omitempty"`
	Currency *string `json:"currency,omitempty"`
}

type SettingsResponse struct {
	Theme    string `json:"theme"`
	Currency string `json:"currency"`
}
