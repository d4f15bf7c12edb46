package dto

import (
	"mime/multipart"

	"github.com/karmachari/portal/internal/app/models"
)

// CreateEmployerRequest registers an employer; status always starts Pending
type CreateEmployerRequest struct {
	BusinessName string `json:"businessName" form:"businessName" binding:"required,max=100"`
	Phone        string `json:"phone" form:"phone" binding:"required,max=15"`
	GSTNumber    string `json:"gstNumber" form:"gstNumber" binding:"required,max=50"`
	Email        string `json:"email" form:"email" binding:"required,email,max=254"`
	IRN          string `json:"irn" form:"irn" binding:"required,max=100"`
	Category     string `json:"category" form:"category" binding:"required,max=50"`
	Address      string `json:"address" form:"address" binding:"required,max=200"`
	District     string `json:"district" form:"district" binding:"required,max=100"`
	Description  string `json:"description" form:"description"`
	Enrollment   string `json:"enrollment" form:"enrollment" binding:"required,max=100"`
	Password     string `json:"password" form:"password" binding:"required,max=72"`

	Documents   *multipart.FileHeader `json:"-" form:"documents"`
	EOILetter   *multipart.FileHeader `json:"-" form:"eoiLetter"`
	Certificate *multipart.FileHeader `json:"-" form:"certificate"`
}

// EmployerFields are the editable employer fields shared by updates and resubmissions
type EmployerFields struct {
	BusinessName *string `json:"businessName" form:"businessName" binding:"omitempty,min=1,max=100"`
	Phone        *string `json:"phone" form:"phone" binding:"omitempty,min=1,max=15"`
	GSTNumber    *string `json:"gstNumber" form:"gstNumber" binding:"omitempty,min=1,max=50"`
	Email        *string `json:"email" form:"email" binding:"omitempty,email,max=254"`
	IRN          *string `json:"irn" form:"irn" binding:"omitempty,min=1,max=100"`
	Category     *string `json:"category" form:"category" binding:"omitempty,min=1,max=50"`
	Address      *string `json:"address" form:"address" binding:"omitempty,min=1,max=200"`
	District     *string `json:"district" form:"district" binding:"omitempty,min=1,max=100"`
	Description  *string `json:"description" form:"description"`
	Enrollment   *string `json:"enrollment" form:"enrollment" binding:"omitempty,min=1,max=100"`
	Password     *string `json:"password" form:"password" binding:"omitempty,min=1,max=72"`

	Documents   *multipart.FileHeader `json:"-" form:"documents"`
	EOILetter   *multipart.FileHeader `json:"-" form:"eoiLetter"`
	Certificate *multipart.FileHeader `json:"-" form:"certificate"`
}

// Changes returns the column -> value map of the plain fields that were provided
func (f *EmployerFields) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setString(changes, "business_name", f.BusinessName)
	setString(changes, "phone", f.Phone)
	setString(changes, "gst_number", f.GSTNumber)
	setString(changes, "email", f.Email)
	setString(changes, "irn", f.IRN)
	setString(changes, "category", f.Category)
	setString(changes, "address", f.Address)
	setString(changes, "district", f.District)
	setString(changes, "description", f.Description)
	setString(changes, "enrollment", f.Enrollment)
	return changes
}

// UpdateEmployerRequest is an administrative partial update that may set the review outcome
type UpdateEmployerRequest struct {
	EmployerFields
	Status          *models.ReviewStatus `json:"status" form:"status" binding:"omitempty,oneof=Pending Approved Rejected Resubmitted"`
	RejectionReason *string              `json:"rejection_reason" form:"rejection_reason"`
}

// ResubmitEmployerRequest identifies the employer in the body
type ResubmitEmployerRequest struct {
	ID int64 `json:"id" form:"id" binding:"required,gt=0"`
	EmployerFields
}

// EmployerLoginRequest authenticates an employer by enrollment
type EmployerLoginRequest struct {
	Enrollment string `json:"enrollment" form:"enrollment" binding:"required"`
	Password   string `json:"password" form:"password" binding:"required"`
}
