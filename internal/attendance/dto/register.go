package dto

type RegisterInput struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" form:"email" validate:"required,email,max=120"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}
