package dto

// CredentialsRequest is the body of /register and /login
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// SessionResponse is returned after registering or logging in
type SessionResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}
