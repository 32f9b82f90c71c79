package models

type PositionStatus string

const (
	PositionStatusDraft     PositionStatus = "draft"
	PositionStatusPublished PositionStatus = "published"
)

func (s PositionStatus) IsValid() bool {
	return s == PositionStatusDraft || s == PositionStatusPublished
}

type ApplicationStatus string

const (
	ApplicationStatusNew         ApplicationStatus = "new"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusContacted   ApplicationStatus = "contacted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

var applicationStatuses = map[ApplicationStatus]struct{}{
	ApplicationStatusNew:         {},
	ApplicationStatusUnderReview: {},
	ApplicationStatusContacted:   {},
	ApplicationStatusInterview:   {},
	ApplicationStatusHired:       {},
	ApplicationStatusRejected:    {},
}

func (s ApplicationStatus) IsValid() bool {
	_, ok := applicationStatuses[s]
	return ok
}

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)
