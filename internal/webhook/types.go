package webhook

// SecurityConfig holds webhook ingest security settings.
type SecurityConfig struct {
	Secret          string   // shared HMAC secret; empty disables signature checks
	AllowedIPs      []string // IP allowlist, exact or CIDR (optional)
	RateLimitPerMin int      // max requests per minute per source
}
