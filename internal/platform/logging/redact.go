package logging

import (
	"log/slog"
	"maps"
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

const redacted = "[REDACTED]"

// credentialHeaders are the lowercase names of request headers that carry
// credentials.
var credentialHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
}

// credentialFields are attribute keys whose values are always masked.
var credentialFields = []string{
	"authorization",
	"cookie",
	"token",
	"access_token",
	"refresh_token",
	"embed_token",
	"client_secret",
	"password",
}

var (
	// Azure AD access tokens sent as "Bearer <jwt>".
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// Bare JWTs. Segments of ten or more characters keep version strings
	// like 1.2.3 out.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// Embed tokens are gzip data in base64, which always starts with H4sI.
	embedTokenPattern = regexp.MustCompile(`H4sI[a-zA-Z0-9+/=_\-]{16,}`)

	// Service principal secrets pasted into free text.
	clientSecretPattern = regexp.MustCompile(`(?i)client[_\-]?secret\s*[:=]\s*\S+`)
)

// IsCredentialHeader reports whether the named header carries credentials.
func IsCredentialHeader(name string) bool {
	return credentialHeaders[strings.ToLower(name)]
}

// redactor returns the ReplaceAttr hook New installs on every handler.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(credentialFields)+5)
	for _, name := range credentialFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(embedTokenPattern),
		masq.WithRegex(clientSecretPattern),
	)
	return masq.New(opts...)
}

// RedactHeaders returns h as a group attribute under key, sorted by header
// name, with credential headers replaced by [REDACTED]. Repeated values are
// joined with commas.
func RedactHeaders(key string, h http.Header) slog.Attr {
	names := slices.Sorted(maps.Keys(h))
	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		v := strings.Join(h[name], ",")
		if IsCredentialHeader(name) {
			v = redacted
		}
		attrs = append(attrs, slog.String(name, v))
	}
	return slog.Attr{Key: key, Value: slog.GroupValue(attrs...)}
}
