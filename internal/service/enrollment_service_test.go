package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillras-be/internal/dto"
	"skillras-be/internal/entity"
)

type logEntry struct {
	level   string
	module  string
	message string
	details map[string]interface{}
}

// capturingLogger records entries so tests can assert on what got logged.
type capturingLogger struct {
	entries []logEntry
}

func (l *capturingLogger) record(level, module, message string, details map[string]interface{}) {
	l.entries = append(l.entries, logEntry{level: level, module: module, message: message, details: details})
}

func (l *capturingLogger) Debug(module, message string, details map[string]interface{}) {
	l.record("debug", module, message, details)
}

func (l *capturingLogger) Info(module, message string, details map[string]interface{}) {
	l.record("info", module, message, details)
}

func (l *capturingLogger) Warn(module, message string, details map[string]interface{}) {
	l.record("warn", module, message, details)
}

func (l *capturingLogger) Error(module, message string, details map[string]interface{}) {
	l.record("error", module, message, details)
}

func (l *capturingLogger) Sync() error { return nil }

func TestGatewaySignature(t *testing.T) {
	orderId := "b1946ac9-4299-4f8e-8a2b-0d6f3c1e9a11"
	statusCode := "200"
	grossAmount := "4800.00"
	serverKey := "SB-Mid-server-testkey"

	want := fmt.Sprintf("%x", sha512.Sum512([]byte(orderId+statusCode+grossAmount+serverKey)))
	assert.Equal(t, want, gatewaySignature(orderId, statusCode, grossAmount, serverKey))

	// Any component change must change the signature.
	assert.NotEqual(t, want, gatewaySignature(orderId, "201", grossAmount, serverKey))
	assert.NotEqual(t, want, gatewaySignature(orderId, statusCode, "4800.01", serverKey))
	assert.NotEqual(t, want, gatewaySignature(orderId, statusCode, grossAmount, "other-key"))
}

func TestHandleWebhookRejectsForgedSignature(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "SB-Mid-server-testkey")

	logs := &capturingLogger{}
	svc := NewEnrollmentService(nil, nil, nil, logs)

	err := svc.HandleWebhook(context.Background(), &dto.PaymentWebhookRequest{
		OrderID:           uuid.NewString(),
		StatusCode:        "200",
		GrossAmount:       "4800.00",
		SignatureKey:      "forged",
		TransactionStatus: "settlement",
	})
	require.EqualError(t, err, "invalid signature")

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "error", logs.entries[0].level)
	assert.Equal(t, "WEBHOOK", logs.entries[0].module)
}

func TestHandleWebhookIgnoresPendingNotification(t *testing.T) {
	serverKey := "SB-Mid-server-testkey"
	t.Setenv("MIDTRANS_SERVER_KEY", serverKey)

	logs := &capturingLogger{}
	svc := NewEnrollmentService(nil, nil, nil, logs)

	orderId := uuid.NewString()
	err := svc.HandleWebhook(context.Background(), &dto.PaymentWebhookRequest{
		OrderID:           orderId,
		StatusCode:        "201",
		GrossAmount:       "4800.00",
		SignatureKey:      gatewaySignature(orderId, "201", "4800.00", serverKey),
		TransactionStatus: "pending",
	})
	require.NoError(t, err)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "info", logs.entries[0].level)
	assert.Equal(t, orderId, logs.entries[0].details["order_id"])
}

func TestMapTransactionStatus(t *testing.T) {
	cases := []struct {
		name              string
		transactionStatus string
		fraudStatus       string
		wantStatus        entity.PaymentStatus
		wantActionable    bool
	}{
		{"settlement completes", "settlement", "", entity.PaymentStatusCompleted, true},
		{"clean capture completes", "capture", "accept", entity.PaymentStatusCompleted, true},
		{"challenged capture waits", "capture", "challenge", "", false},
		{"deny fails", "deny", "", entity.PaymentStatusFailed, true},
		{"cancel fails", "cancel", "", entity.PaymentStatusFailed, true},
		{"expire fails", "expire", "", entity.PaymentStatusFailed, true},
		{"pending waits", "pending", "", "", false},
		{"unknown status ignored", "refund", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, actionable := mapTransactionStatus(tc.transactionStatus, tc.fraudStatus)
			assert.Equal(t, tc.wantActionable, actionable)
			assert.Equal(t, tc.wantStatus, got)
		})
	}
}
