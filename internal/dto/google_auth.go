package dto

// GoogleUserInfo represents the profile returned by Google's userinfo API
type GoogleUserInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
	Verified bool   `json:"verified"`
}

// GoogleLoginResponse carries the authorization URL for the OAuth flow
type GoogleLoginResponse struct {
	Success bool   `json:"success"`
	AuthURL string `json:"auth_url"`
	State   string `json:"state"`
}
