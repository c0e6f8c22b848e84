package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventLoginSuccess         EventType = "login_success"
	EventLoginFailed          EventType = "login_failed"
	EventLoginBlocked         EventType = "login_blocked"
	EventRateLimitTriggered   EventType = "rate_limit_triggered"
	EventUnauthorizedAccess   EventType = "unauthorized_access"
	EventForbiddenRole        EventType = "forbidden_role"
	EventRegistrationConflict EventType = "registration_conflict"
	EventUploadRejected       EventType = "upload_rejected"
	EventDataExport           EventType = "data_export"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp    time.Time
	Event        EventType
	SubjectType  string // "email", "phone", "ip", "user_id"
	SubjectValue string // masked or hashed before it reaches the log
	IP           string
	UserAgent    string
	RequestID    string
	Details      map[string]interface{}
}

// SecurityLogger provides structured logging for security events
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewSecurityLogger builds a JSON zap logger writing to stdout.
func NewSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return NewSecurityLoggerWith(logger, serviceName, environment)
}

// NewSecurityLoggerWith wraps an existing zap logger, e.g. an observer core in tests.
func NewSecurityLoggerWith(logger *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// NopSecurityLogger discards every event.
func NopSecurityLogger() *SecurityLogger {
	return NewSecurityLoggerWith(zap.NewNop(), "", "")
}

func levelFor(event EventType) zapcore.Level {
	switch event {
	case EventLoginSuccess, EventDataExport:
		return zapcore.InfoLevel
	case EventLoginBlocked, EventUnauthorizedAccess:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// Log logs a security event
func (sl *SecurityLogger) Log(_ context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	fields := []zap.Field{
		zap.String("service", sl.serviceName),
		zap.String("env", sl.environment),
		zap.String("event", string(event.Event)),
		zap.Time("occurred_at", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	sl.zapLogger.Log(levelFor(event.Event), string(event.Event), fields...)
}

// LogLoginSuccess logs a successful login.
func (sl *SecurityLogger) LogLoginSuccess(ctx context.Context, userID, ip, userAgent, requestID string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginSuccess,
		SubjectType:  "user_id",
		SubjectValue: userID,
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
	})
}

// LogLoginFailed logs a failed login attempt
func (sl *SecurityLogger) LogLoginFailed(ctx context.Context, identifier, ip, userAgent, requestID, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginFailed,
		SubjectType:  identifierType(identifier),
		SubjectValue: MaskIdentifier(identifier),
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"reason": reason},
	})
}

// LogLoginBlocked logs when a login is blocked due to too many attempts
func (sl *SecurityLogger) LogLoginBlocked(ctx context.Context, identifier, ip, userAgent, requestID string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginBlocked,
		SubjectType:  identifierType(identifier),
		SubjectValue: MaskIdentifier(identifier),
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"reason": "too_many_failed_attempts"},
	})
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint},
	})
}

// LogRegistrationConflict logs a sign-up attempt on an existing email or phone.
func (sl *SecurityLogger) LogRegistrationConflict(ctx context.Context, identifier, field string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRegistrationConflict,
		SubjectType:  identifierType(identifier),
		SubjectValue: MaskIdentifier(identifier),
		Details:      map[string]interface{}{"field": field},
	})
}

// LogAccessDenied logs a request rejected by the auth or role guards.
func (sl *SecurityLogger) LogAccessDenied(ctx context.Context, event EventType, subject, ip, requestID, path string) {
	sl.Log(ctx, SecurityEvent{
		Event:        event,
		SubjectType:  "user_id",
		SubjectValue: subject,
		IP:           ip,
		RequestID:    requestID,
		Details:      map[string]interface{}{"path": path},
	})
}

// LogUploadRejected logs a file refused by validation.
func (sl *SecurityLogger) LogUploadRejected(ctx context.Context, userID, kind, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventUploadRejected,
		SubjectType:  "user_id",
		SubjectValue: userID,
		Details:      map[string]interface{}{"kind": kind, "reason": reason},
	})
}

// LogDataExport logs an employer export of candidate data.
func (sl *SecurityLogger) LogDataExport(ctx context.Context, userID string, rows int) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventDataExport,
		SubjectType:  "user_id",
		SubjectValue: userID,
		Details:      map[string]interface{}{"rows": rows},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// --- Helper Functions ---

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 1 {
		return "***" + email[1:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}

// MaskPhone keeps the country code prefix and the last two digits.
func MaskPhone(phone string) string {
	if len(phone) <= 6 {
		return "***"
	}
	return phone[:4] + "***" + phone[len(phone)-2:]
}

// MaskIdentifier masks a login identifier, email or phone.
func MaskIdentifier(identifier string) string {
	if strings.Contains(identifier, "@") {
		return MaskEmail(identifier)
	}
	return MaskPhone(identifier)
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

func identifierType(identifier string) string {
	if strings.Contains(identifier, "@") {
		return "email"
	}
	return "phone"
}
