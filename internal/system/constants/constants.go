package constants

const CookieConfigApiPath = "/cookie-config"
const ConsentLogApiPath = "/consent/log"
const AdminCookieConfigApiPath = "/admin/cookie-config"
const ConsentAnalyticsApiPath = "/admin/analytics/consent"
const HealthApiPath = "/health"
const ReadinessApiPath = "/ready"

type contextKey string

const SubjectContextKey contextKey = "subject"
const RoleContextKey contextKey = "role"
const TraceIDContextKey contextKey = "traceID"

// Source values reported on public config reads.
const SourceCache = "cache"
const SourceDatabase = "database"

const DefaultLanguage = "en"

// ConsentSchemaVersion is stamped into consent records written by the SDK
// and accepted by the log endpoint.
const ConsentSchemaVersion = "1.0"

// LanguageKeyPattern matches two lowercase letters with an optional
// two-letter region suffix (en, pt-br).
const LanguageKeyPattern = `^[a-z]{2}(-[a-z]{2})?$`

// Consent actions accepted on the log endpoint.
const (
	ActionAccept    = "accept"
	ActionReject    = "reject"
	ActionCustomize = "customize"
	ActionSave      = "save"
	ActionWithdraw  = "withdraw"
)

var AllowedConsentActions = map[string]bool{
	ActionAccept:    true,
	ActionReject:    true,
	ActionCustomize: true,
	ActionSave:      true,
	ActionWithdraw:  true,
}

// Canonical consent categories. Essential is always required and cannot be
// disabled by the end user.
const (
	CategoryEssential   = "essential"
	CategoryAnalytics   = "analytics"
	CategoryMarketing   = "marketing"
	CategoryPreferences = "preferences"
)

var AllowedSameSiteValues = map[string]bool{
	"Strict": true,
	"Lax":    true,
	"None":   true,
}

// Roles carried in the bearer token role claim.
const (
	RoleViewer = "viewer"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

const DefaultCookieName = "ns-cookie-consent"
const DefaultCookieExpiryDays = 365

const DefaultCacheTTLSeconds = 300
const DefaultRateLimitWindowSeconds = 900
const DefaultRateLimitMaxRequests = 100

// Default store names; overridable through the datasource config block.
const CookieConfigCollection = "cookie_configs"
const ConsentLogCollection = "consent_logs"
