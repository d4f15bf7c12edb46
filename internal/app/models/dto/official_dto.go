package dto

// CreateOfficialRequest registers an official account
type CreateOfficialRequest struct {
	FullName string `json:"fullName" form:"fullName" binding:"required,max=100"`
	Email    string `json:"email" form:"email" binding:"required,email,max=254"`
	Phone    string `json:"phone" form:"phone" binding:"required,max=15"`
	Password string `json:"password" form:"password" binding:"required,max=72"`
	Role     string `json:"role" form:"role" binding:"required,max=200"`
}

// OfficialLoginRequest matches email, password and role together
type OfficialLoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Role     string `json:"role" form:"role" binding:"required"`
}
