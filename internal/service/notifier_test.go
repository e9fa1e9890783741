package service_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-backoffice-backend/internal/config"
	"travel-backoffice-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notifierPayload() service.EmployeeDetailsNotification {
	return service.EmployeeDetailsNotification{
		CustomerEmail: "asha@example.com",
		CustomerName:  "Asha Verma",
		Destination:   "Bali",
		EmployeeName:  "Rahul Mehta",
		EmployeePhone: "+919876543210",
		EmployeeEmail: "rahul@travloger.in",
	}
}

func TestSendEmployeeDetails(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send-employee-details", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"messageId": "msg-001"})
	}))
	defer server.Close()

	notifier := service.NewNotifierService(&config.Config{NotificationBaseURL: server.URL})

	messageID, err := notifier.SendEmployeeDetails(notifierPayload())

	require.NoError(t, err)
	assert.Equal(t, "msg-001", messageID)

	// Wire field names are part of the sender's contract
	assert.Equal(t, "asha@example.com", received["customerEmail"])
	assert.Equal(t, "Asha Verma", received["customerName"])
	assert.Equal(t, "Bali", received["destination"])
	assert.Equal(t, "Rahul Mehta", received["employeeName"])
	assert.Equal(t, "+919876543210", received["employeePhone"])
	assert.Equal(t, "rahul@travloger.in", received["employeeEmail"])
}

func TestSendEmployeeDetails_SenderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "mail provider rejected the message"})
	}))
	defer server.Close()

	notifier := service.NewNotifierService(&config.Config{NotificationBaseURL: server.URL})

	messageID, err := notifier.SendEmployeeDetails(notifierPayload())

	assert.Empty(t, messageID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mail provider rejected the message")
}

func TestSendEmployeeDetails_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately closed: connection refused

	notifier := service.NewNotifierService(&config.Config{NotificationBaseURL: server.URL})

	_, err := notifier.SendEmployeeDetails(notifierPayload())

	assert.Error(t, err)
}

func TestSendEmployeeDetails_NotConfigured(t *testing.T) {
	notifier := service.NewNotifierService(&config.Config{})

	_, err := notifier.SendEmployeeDetails(notifierPayload())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
