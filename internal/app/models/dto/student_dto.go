package dto

import "mime/multipart"

// CreateStudentRequest is the self-registration payload (JSON or multipart)
type CreateStudentRequest struct {
	Name       string   `json:"name" form:"name" binding:"required,max=100"`
	ParentName string   `json:"parent_name" form:"parent_name" binding:"required,max=100"`
	DOB        string   `json:"dob" form:"dob" binding:"required,datetime=2006-01-02"`
	Age        int      `json:"age" form:"age" binding:"gte=0,lte=2147483647"`
	Phone      string   `json:"phone" form:"phone" binding:"omitempty,max=15"`
	Emergency  string   `json:"emergency" form:"emergency" binding:"omitempty,max=15"`
	Email      string   `json:"email" form:"email" binding:"required,email,max=254"`
	Gender     string   `json:"gender" form:"gender" binding:"omitempty,oneof=Male Female Other"`
	SchoolName string   `json:"school_name" form:"school_name" binding:"required,max=200"`
	District   string   `json:"district" form:"district" binding:"omitempty,max=100"`
	Bio        string   `json:"bio" form:"bio"`
	Address    string   `json:"address" form:"address"`
	Course     string   `json:"course" form:"course" binding:"omitempty,max=100"`
	Interests  []string `json:"interests" form:"interests"`
	Enrollment string   `json:"enrollment" form:"enrollment" binding:"required,max=200"`
	Password   string   `json:"password" form:"password" binding:"required,max=72"`

	IDCard  *multipart.FileHeader `json:"-" form:"id_card"`
	Resume  *multipart.FileHeader `json:"-" form:"resume"`
	Consent *multipart.FileHeader `json:"-" form:"consent"`
	Photo   *multipart.FileHeader `json:"-" form:"photo"`
}

// UpdateStudentRequest is a partial profile update; nil fields are left unchanged
type UpdateStudentRequest struct {
	Name       *string  `json:"name" form:"name" binding:"omitempty,min=1,max=100"`
	ParentName *string  `json:"parent_name" form:"parent_name" binding:"omitempty,min=1,max=100"`
	DOB        *string  `json:"dob" form:"dob" binding:"omitempty,datetime=2006-01-02"`
	Age        *int     `json:"age" form:"age" binding:"omitempty,gte=0,lte=2147483647"`
	Phone      *string  `json:"phone" form:"phone" binding:"omitempty,max=15"`
	Emergency  *string  `json:"emergency" form:"emergency" binding:"omitempty,max=15"`
	Email      *string  `json:"email" form:"email" binding:"omitempty,email,max=254"`
	Gender     *string  `json:"gender" form:"gender" binding:"omitempty,oneof=Male Female Other"`
	SchoolName *string  `json:"school_name" form:"school_name" binding:"omitempty,min=1,max=200"`
	District   *string  `json:"district" form:"district" binding:"omitempty,max=100"`
	Bio        *string  `json:"bio" form:"bio"`
	Address    *string  `json:"address" form:"address"`
	Course     *string  `json:"course" form:"course" binding:"omitempty,max=100"`
	Interests  []string `json:"interests" form:"interests"`
	Enrollment *string  `json:"enrollment" form:"enrollment" binding:"omitempty,min=1,max=200"`
	Password   *string  `json:"password" form:"password" binding:"omitempty,min=1,max=72"`

	IDCard  *multipart.FileHeader `json:"-" form:"id_card"`
	Resume  *multipart.FileHeader `json:"-" form:"resume"`
	Consent *multipart.FileHeader `json:"-" form:"consent"`
	Photo   *multipart.FileHeader `json:"-" form:"photo"`
}

// Changes returns the column -> value map of the plain fields that were provided
func (r *UpdateStudentRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setString(changes, "name", r.Name)
	setString(changes, "parent_name", r.ParentName)
	setString(changes, "phone", r.Phone)
	setString(changes, "emergency", r.Emergency)
	setString(changes, "email", r.Email)
	setString(changes, "gender", r.Gender)
	setString(changes, "school_name", r.SchoolName)
	setString(changes, "district", r.District)
	setString(changes, "bio", r.Bio)
	setString(changes, "address", r.Address)
	setString(changes, "course", r.Course)
	setString(changes, "enrollment", r.Enrollment)
	if r.DOB != nil {
		changes["dob"] = *r.DOB
	}
	if r.Age != nil {
		changes["age"] = *r.Age
	}
	if r.Interests != nil {
		changes["interests"] = r.Interests
	}
	return changes
}

// StudentLoginRequest authenticates a student by enrollment
type StudentLoginRequest struct {
	Enrollment string `json:"enrollment" form:"enrollment" binding:"required"`
	Password   string `json:"password" form:"password" binding:"required"`
}

func setString(changes map[string]interface{}, column string, value *string) {
	if value != nil {
		changes[column] = *value
	}
}
