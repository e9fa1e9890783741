package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"travel-backoffice-backend/internal/config"
	apperrors "travel-backoffice-backend/internal/errors"
)

// NotifierInterface is the outbound-notification contract. Callers that
// treat the send as best-effort must swallow the returned error
// themselves; the notifier only reports what happened.
type NotifierInterface interface {
	SendEmployeeDetails(payload EmployeeDetailsNotification) (string, error)
}

// EmployeeDetailsNotification is the payload emailed to a customer once
// an employee has been assigned to their inquiry.
type EmployeeDetailsNotification struct {
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
	Destination   string `json:"destination"`
	EmployeeName  string `json:"employeeName"`
	EmployeePhone string `json:"employeePhone"`
	EmployeeEmail string `json:"employeeEmail"`
}

// notificationResponse is the sender's success envelope
type notificationResponse struct {
	MessageID string `json:"messageId"`
	Error     string `json:"error"`
}

// NotifierService calls the external notification sender over HTTP.
type NotifierService struct {
	baseURL    string
	httpClient *http.Client
}

// NewNotifierService creates a new notifier service
func NewNotifierService(cfg *config.Config) *NotifierService {
	return &NotifierService{
		baseURL: strings.TrimRight(cfg.NotificationBaseURL, "/"),
		// Bounded timeout so a slow sender cannot hold the enclosing
		// request open indefinitely; a timeout is treated like any other
		// notification failure.
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// SendEmployeeDetails posts the assignment notification and returns the
// sender's message identifier on success.
func (s *NotifierService) SendEmployeeDetails(payload EmployeeDetailsNotification) (string, error) {
	if s.baseURL == "" {
		return "", apperrors.NewNotificationError(payload.CustomerEmail, "notification base URL is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", apperrors.NewNotificationError(payload.CustomerEmail, fmt.Sprintf("marshal payload: %v", err))
	}

	url := s.baseURL + "/send-employee-details"
	resp, err := s.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewNotificationError(payload.CustomerEmail, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", apperrors.NewNotificationError(payload.CustomerEmail, fmt.Sprintf("read response: %v", err))
	}

	var parsed notificationResponse
	if err := json.Unmarshal(raw, &parsed); err != nil && resp.StatusCode < 300 {
		return "", apperrors.NewNotificationError(payload.CustomerEmail, "malformed response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parsed.Error
		if msg == "" {
			msg = fmt.Sprintf("sender returned status %d", resp.StatusCode)
		}
		return "", apperrors.NewNotificationError(payload.CustomerEmail, msg)
	}

	return parsed.MessageID, nil
}
