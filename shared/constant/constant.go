package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUsername contextKey = "username"
	ContextKeyTokenID  contextKey = "token_id"
)

const (
	RequestParamPage      = "page"
	RequestParamLimit     = "limit"
	RequestParamSortBy    = "sortBy"
	RequestParamSortOrder = "sortOrder"
	RequestParamSearch    = "search"
	RequestParamStatus    = "status"
	RequestParamDateFrom  = "dateFrom"
	RequestParamDateTo    = "dateTo"
)

const (
	RequestParamID            = "id"
	RequestParamBookingID     = "bookingId"
	RequestParamRoomingListID = "roomingListId"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	FieldCreatedAt = "created_at"
)

const (
	RoomingStatusActive    = "Active"
	RoomingStatusClosed    = "Closed"
	RoomingStatusCancelled = "Cancelled"
)

const (
	AgreementTypeLeisure = "leisure"
	AgreementTypeStaff   = "staff"
	AgreementTypeArtist  = "artist"
)

var (
	RoomingStatuses = []string{RoomingStatusActive, RoomingStatusClosed, RoomingStatusCancelled}
	AgreementTypes  = []string{AgreementTypeLeisure, AgreementTypeStaff, AgreementTypeArtist}
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat      = time.DateOnly
	TimestampFormat = time.RFC3339
)

const (
	MinutesToSeconds = 60
)

const (
	CacheKeyDataset = "dataset"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
	OtelKafkaScopeName    = "kafka"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRetryAfter         = "Retry-After"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseStatusSuccess             = "success"
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorRouteNotFound        = "Route not found"
	ResponseErrorMethodNotAllowed     = "Method not allowed"
	ResponseErrorInternal             = "Internal server error"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
