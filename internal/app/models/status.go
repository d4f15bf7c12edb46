package models

// ReviewStatus is the approval state of an employer or school registration
type ReviewStatus string

const (
	ReviewPending     ReviewStatus = "Pending"
	ReviewApproved    ReviewStatus = "Approved"
	ReviewRejected    ReviewStatus = "Rejected"
	ReviewResubmitted ReviewStatus = "Resubmitted"
)

// IsValid reports whether s is a known review status
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewRejected, ReviewResubmitted:
		return true
	}
	return false
}

// ApplicationStatus is the state of a job application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)

// IsValid reports whether s is a known application status
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}
