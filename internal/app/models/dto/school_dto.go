package dto

import (
	"mime/multipart"

	"github.com/karmachari/portal/internal/app/models"
)

// CreateSchoolRequest registers a school; status always starts Pending
type CreateSchoolRequest struct {
	Principal string `json:"principal" form:"principal" binding:"required,max=100"`
	Name      string `json:"name" form:"name" binding:"required,max=200"`
	Phone     string `json:"phone" form:"phone" binding:"required,max=15"`
	Email     string `json:"email" form:"email" binding:"required,email,max=254"`
	Password  string `json:"password" form:"password" binding:"required,max=72"`
	District  string `json:"district" form:"district" binding:"required,max=100"`

	EOLLetter *multipart.FileHeader `json:"-" form:"eol_letter"`
}

// SchoolFields are the editable school fields shared by updates and resubmissions
type SchoolFields struct {
	Principal *string `json:"principal" form:"principal" binding:"omitempty,min=1,max=100"`
	Name      *string `json:"name" form:"name" binding:"omitempty,min=1,max=200"`
	Phone     *string `json:"phone" form:"phone" binding:"omitempty,min=1,max=15"`
	Email     *string `json:"email" form:"email" binding:"omitempty,email,max=254"`
	Password  *string `json:"password" form:"password" binding:"omitempty,min=1,max=72"`
	District  *string `json:"district" form:"district" binding:"omitempty,min=1,max=100"`

	EOLLetter *multipart.FileHeader `json:"-" form:"eol_letter"`
}

// Changes returns the column -> value map of the plain fields that were provided
func (f *SchoolFields) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setString(changes, "principal", f.Principal)
	setString(changes, "name", f.Name)
	setString(changes, "phone", f.Phone)
	setString(changes, "email", f.Email)
	setString(changes, "district", f.District)
	return changes
}

// UpdateSchoolRequest is an administrative partial update that may set the review outcome
type UpdateSchoolRequest struct {
	SchoolFields
	Status          *models.ReviewStatus `json:"status" form:"status" binding:"omitempty,oneof=Pending Approved Rejected Resubmitted"`
	RejectionReason *string              `json:"rejection_reason" form:"rejection_reason"`
}

// ResubmitSchoolRequest identifies the school in the body
type ResubmitSchoolRequest struct {
	ID int64 `json:"id" form:"id" binding:"required,gt=0"`
	SchoolFields
}

// SchoolLoginRequest authenticates a school by email
type SchoolLoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
