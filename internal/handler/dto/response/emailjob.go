package response

import (
	"time"

	"blueprint-api/internal/usecase/commands"
	"blueprint-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type EmailJobResponse struct {
	ID           uuid.UUID         `json:"id"`
	UserID       uuid.UUID         `json:"userId"`
	Email        string            `json:"email"`
	EmailType    string            `json:"emailType"`
	TemplateName string            `json:"templateName"`
	ScheduledFor time.Time         `json:"scheduledFor"`
	Status       string            `json:"status"`
	Attempts     int32             `json:"attempts"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	ErrorMessage *string           `json:"errorMessage,omitempty"`
	SentAt       *time.Time        `json:"sentAt,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

type EmailJobPageResponse struct {
	Jobs       []*EmailJobResponse `json:"jobs"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

type EmailLogResponse struct {
	ID        uuid.UUID `json:"id"`
	EmailType string    `json:"emailType"`
	Email     string    `json:"email"`
	SentAt    time.Time `json:"sentAt"`
}

type DrainResponse struct {
	Sent      int `json:"sent"`
	Errors    int `json:"errors"`
	Processed int `json:"processed"`
}

type RequeueResponse struct {
	Requeued int64 `json:"requeued"`
}

func FromEmailJobView(view *queries.EmailJobView) *EmailJobResponse {
	return &EmailJobResponse{
		ID:           view.ID,
		UserID:       view.UserID,
		Email:        view.Email,
		EmailType:    view.EmailType,
		TemplateName: view.TemplateName,
		ScheduledFor: view.ScheduledFor,
		Status:       view.Status,
		Attempts:     view.Attempts,
		Metadata:     view.Metadata,
		ErrorMessage: view.ErrorMessage,
		SentAt:       view.SentAt,
		CreatedAt:    view.CreatedAt,
	}
}

func FromEmailJobPage(page *queries.EmailJobPage) *EmailJobPageResponse {
	jobs := make([]*EmailJobResponse, len(page.Jobs))
	for i, job := range page.Jobs {
		jobs[i] = FromEmailJobView(job)
	}
	return &EmailJobPageResponse{
		Jobs:       jobs,
		NextCursor: page.NextCursor,
	}
}

func FromEmailLogView(view *queries.EmailLogView) *EmailLogResponse {
	return &EmailLogResponse{
		ID:        view.ID,
		EmailType: view.EmailType,
		Email:     view.Email,
		SentAt:    view.SentAt,
	}
}

func FromDrainResult(result *commands.DrainResult) *DrainResponse {
	return &DrainResponse{
		Sent:      result.Sent,
		Errors:    result.Errors,
		Processed: result.Processed,
	}
}
