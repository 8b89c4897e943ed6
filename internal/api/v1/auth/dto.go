package auth

// SignupInput is the storefront signup form. Username is optional; the
// remaining identity fields are validated server-side.
type SignupInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Username   string `json:"username"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	NIC        string `json:"nic" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginInput accepts any of the stored identity fields as identifier.
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse returns only the canonical identifier; the client never sees
// other account fields.
type LoginResponse struct {
	Success bool      `json:"success"`
	User    UserBrief `json:"user"`
}

type UserBrief struct {
	Identifier string `json:"identifier"`
}
