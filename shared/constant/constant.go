package constant

import (
	"time"
)

const (
	RequestParamID        = "id"
	RequestParamHabitID   = "habitId"
	RequestParamDate      = "date"
	RequestParamStartDate = "startDate"
	RequestParamEndDate   = "endDate"
)

const (
	CheckinStatusDone   = "done"
	CheckinStatusMissed = "missed"
)

const (
	FieldID        = "id"
	FieldName      = "name"
	FieldHabitID   = "habit_id"
	FieldHabitName = "habit_name"
	FieldDate      = "date"
	FieldStatus    = "status"
	FieldCreatedAt = "created_at"
)

const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat = time.RFC3339
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "Server is preparing to shut down"
	ResponseErrorUnhealthy            = "Server is unhealthy"
	ResponseErrorRequestLimitExceeded = "Request limit exceeded"
	ResponseErrorRouteNotFound        = "Route not found"
	ResponseErrorInternal             = "Something went wrong!"
	ResponseErrorInvalidAPIKey        = "Invalid or missing API key"
)

const (
	ResponseHealthStatus  = "OK"
	ResponseHealthMessage = "Habit Tracker API is running"
)

const (
	MessageHabitDeleted   = "Habit deleted successfully"
	MessageCheckinDeleted = "Check-in deleted successfully"
)

const (
	ErrHabitIDRequired    = "Valid habit ID is required"
	ErrHabitNameRequired  = "Habit name is required"
	ErrHabitNameTaken     = "Habit with this name already exists"
	ErrHabitNotFound      = "Habit not found"
	ErrCheckinNotFound    = "Check-in not found"
	ErrDateRequired       = "Date is required"
	ErrStatusInvalid      = `Status must be either "done" or "missed"`
	ErrDateRangeInverted  = "startDate must not be after endDate"
	ErrInvalidRequestBody = "Invalid request body"
)

const (
	ErrFetchHabits         = "Failed to fetch habits"
	ErrFetchHabit          = "Failed to fetch habit"
	ErrCreateHabit         = "Failed to create habit"
	ErrDeleteHabit         = "Failed to delete habit"
	ErrFetchCheckins       = "Failed to fetch check-ins"
	ErrVerifyHabit         = "Failed to verify habit"
	ErrUpsertCheckin       = "Failed to create/update check-in"
	ErrDeleteCheckin       = "Failed to delete check-in"
	ErrFetchSummary        = "Failed to fetch summary stats"
	ErrFetchHabitSummary   = "Failed to fetch habit stats"
	ErrHealthCheckDatabase = "Database is unreachable"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
