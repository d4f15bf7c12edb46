package dto

// VacancyRequest is the full vacancy payload for create and replace
type VacancyRequest struct {
	Title           string `json:"title" form:"title" binding:"required,max=100"`
	Employer        string `json:"employer" form:"employer" binding:"required,max=100"`
	District        string `json:"district" form:"district" binding:"required,max=100"`
	Positions       *int   `json:"positions" form:"positions" binding:"required,gte=0,lte=2147483647"`
	ValidTill       string `json:"validTill" form:"validTill" binding:"required,datetime=2006-01-02"`
	InterviewDate   string `json:"interviewDate" form:"interviewDate" binding:"required,datetime=2006-01-02"`
	InterviewTime   string `json:"interviewTime" form:"interviewTime" binding:"required,datetime=15:04"`
	AppliedStudents int    `json:"appliedStudents" form:"appliedStudents" binding:"gte=0,lte=2147483647"`
}
