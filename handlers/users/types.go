package users

// Constants for error messages
const (
	ErrUserNotFound       = "User not found"
	ErrUsernameInUse      = "Username already taken"
	ErrFailedUpdate       = "Failed to update profile"
	ErrFailedFetchHistory = "Failed to fetch quiz history"
)

// ProfileUpdateRequest model for updating the profile
type ProfileUpdateRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
}

// LinkWalletRequest model for linking a wallet address to the profile.
// The address is an opaque string; wallet-connection UX lives client side.
type LinkWalletRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required,min=4,max=255"`
}

// PublicProfile is the subset of a profile visible to other users
type PublicProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	HasToken bool   `json:"has_token"`
	Verified bool   `json:"verified"`
}
