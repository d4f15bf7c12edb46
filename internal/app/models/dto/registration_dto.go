package dto

import "mime/multipart"

// CreateOfficerRequest registers an ALO or DLO
type CreateOfficerRequest struct {
	Name     string `json:"name" form:"name" binding:"required,max=200"`
	PhoneNo  string `json:"phone_no" form:"phone_no" binding:"required,max=15"`
	Email    string `json:"email" form:"email" binding:"required,email,max=254"`
	District string `json:"district" form:"district" binding:"required,max=100"`
}

// CreateCompanyRequest registers a company
type CreateCompanyRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=200"`
	Phone       string `json:"phone" form:"phone" binding:"required,max=15"`
	GSTNumber   string `json:"gst_number" form:"gst_number" binding:"required,max=50"`
	Email       string `json:"email" form:"email" binding:"required,email,max=254"`
	LRN         string `json:"lrn" form:"lrn" binding:"required,max=100"`
	Category    string `json:"category" form:"category" binding:"required,max=100"`
	District    string `json:"district" form:"district" binding:"required,max=100"`
	Address     string `json:"address" form:"address" binding:"required"`
	Description string `json:"description" form:"description"`

	EOILetter               *multipart.FileHeader `json:"-" form:"eoi_letter"`
	RegistrationCertificate *multipart.FileHeader `json:"-" form:"registration_certificate"`
}

// CreateCommissionRequest registers a commission member
type CreateCommissionRequest struct {
	Name    string `json:"name" form:"name" binding:"required,max=150"`
	PhoneNo string `json:"phone_no" form:"phone_no" binding:"required,max=15"`
	Email   string `json:"email" form:"email" binding:"required,email,max=254"`
}

// UpdateCommissionRequest is a partial commission update
type UpdateCommissionRequest struct {
	Name    *string `json:"name" form:"name" binding:"omitempty,min=1,max=150"`
	PhoneNo *string `json:"phone_no" form:"phone_no" binding:"omitempty,min=1,max=15"`
	Email   *string `json:"email" form:"email" binding:"omitempty,email,max=254"`
}

// Changes returns the column -> value map of the fields that were provided
func (r *UpdateCommissionRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setString(changes, "name", r.Name)
	setString(changes, "phone_no", r.PhoneNo)
	setString(changes, "email", r.Email)
	return changes
}
