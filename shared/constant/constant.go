package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUsername  contextKey = "username"
	ContextKeyUserAdmin contextKey = "user_admin"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeySessionID contextKey = "session_id"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	RequestParamID         = "id"
	RequestParamDate       = "date"
	RequestParamStart      = "start"
	RequestParamEnd        = "end"
	RequestParamSort       = "sort"
	RequestParamResourceID = "resource_id"
	RequestParamPage       = "page"
	RequestParamLimit      = "limit"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	SortByDate     = "date"
	SortByUser     = "user"
	SortByResource = "resource"
)

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02 15:04"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelConsoleScopeName    = "console"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderWWWAuthenticate    = "WWW-Authenticate"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
