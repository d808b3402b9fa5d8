package models

// SignUpInput mirrors the signUp mutation's input object
type SignUpInput struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Gender   string `json:"gender" validate:"required,oneof=male female"`
}

// LoginInput mirrors the login mutation's input object
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
