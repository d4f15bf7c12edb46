package dto

import "github.com/karmachari/portal/internal/app/models"

// ApplicationPairRequest names a student by enrollment and a vacancy by id
type ApplicationPairRequest struct {
	StudentID string `json:"student_id" form:"student_id" binding:"required"`
	VacancyID int64  `json:"vacancy_id" form:"vacancy_id" binding:"required,gt=0"`
}

// UpdateApplicationStatusRequest carries the new application status
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" form:"status" binding:"required,oneof=Pending Approved Rejected"`
}
