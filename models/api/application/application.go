package applicationapimodels

import (
	"fmt"
	"strings"
	"time"

	"careers-backend/lib/apperrors"
	"careers-backend/models"
	apimodels "careers-backend/models/api"
	dbmodels "careers-backend/models/db"
)

type ApplicationData struct {
	JobID          string                   `json:"job_id"` // empty for a general application
	ResumeURL      string                   `json:"resume_url"`
	CoverLetterURL string                   `json:"cover_letter_url"`
	Meta           dbmodels.ApplicationMeta `json:"meta"`
}

type ApplicationView struct {
	ID             string                   `json:"id"`
	UserID         string                   `json:"user_id"`
	JobID          string                   `json:"job_id,omitempty"`
	JobName        string                   `json:"job_name,omitempty"`
	ResumeURL      string                   `json:"resume_url,omitempty"`
	CoverLetterURL string                   `json:"cover_letter_url,omitempty"`
	Status         models.ApplicationStatus `json:"status"`
	Meta           dbmodels.ApplicationMeta `json:"meta,omitempty"`
	SubmittedAt    time.Time                `json:"submitted_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	return ApplicationView{
		ID:             rec.ID,
		UserID:         rec.UserID,
		JobID:          rec.JobID,
		ResumeURL:      rec.ResumeURL,
		CoverLetterURL: rec.CoverLetterURL,
		Status:         rec.Status,
		Meta:           rec.Meta,
		SubmittedAt:    rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

func ApplicationExtConvert(rec dbmodels.ApplicationExt) ApplicationView {
	view := ApplicationConvert(rec.Application)
	view.JobName = rec.JobName
	return view
}

type ApplicationFilter struct {
	apimodels.Pagination
	Status  models.ApplicationStatus `json:"status"`
	JobID   string                   `json:"job_id"`
	UserID  string                   `json:"user_id"`
	OrderBy string                   `json:"order_by"`
	Order   models.SortOrder         `json:"order"`
}

func (f ApplicationFilter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return apperrors.New(apperrors.KindInvalidStatus, fmt.Sprintf("unknown application status %q", f.Status))
	}
	return nil
}

var applicationOrderColumns = map[string]string{
	"status":       "applications.status",
	"job_id":       "applications.job_id",
	"submitted_at": "applications.created_at",
	"created_at":   "applications.created_at",
	"updated_at":   "applications.updated_at",
}

const applicationDefaultOrder = "applications.created_at desc"

func (f ApplicationFilter) OrderClause() string {
	column, ok := applicationOrderColumns[strings.ToLower(f.OrderBy)]
	if !ok {
		return applicationDefaultOrder
	}
	direction := "asc"
	if strings.EqualFold(string(f.Order), string(models.SortOrderDesc)) {
		direction = "desc"
	}
	return column + " " + direction
}

type StatusChangeData struct {
	Status models.ApplicationStatus `json:"status"`
}

type NoteData struct {
	Content string `json:"content"`
}

func (n NoteData) Validate() error {
	if strings.TrimSpace(n.Content) == "" {
		return apperrors.New(apperrors.KindMissingData, "note content is required")
	}
	return nil
}

type NoteView struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	UserID        string    `json:"user_id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

func NoteConvert(rec dbmodels.ApplicationNote) NoteView {
	return NoteView{
		ID:            rec.ID,
		ApplicationID: rec.ApplicationID,
		UserID:        rec.UserID,
		Content:       rec.Content,
		CreatedAt:     rec.CreatedAt,
	}
}

type JobCount struct {
	JobID   string `json:"job_id"`
	JobName string `json:"job_name"`
	Count   int64  `json:"count"`
}

type StatsView struct {
	Total    int64                              `json:"total"`
	ByStatus map[models.ApplicationStatus]int64 `json:"by_status"`
	ByJob    []JobCount                         `json:"by_job"`  // top 10 positions by application count
	Recent   int64                              `json:"recent"`  // submitted within the last 30 days
}
