package middleware

import (
	"io"
	"net/http"
	"strings"
)

// CountryHeader is the CDN-supplied two-letter country code for the caller.
const CountryHeader = "X-Vercel-IP-Country"

const forbiddenPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Access Restricted</title>
</head>
<body>
  <h1>Access Restricted</h1>
  <p>This website is only available to visitors from the United States.</p>
  <p>We currently only serve properties in New Hampshire, USA.</p>
</body>
</html>
`

// Geofence rejects requests whose country signal is present and differs from
// the allowed country, before any route logic runs. Requests carrying no
// country signal pass through: the gate trusts the CDN to set the header and
// fails open when it is absent (local development, health probes).
func Geofence(allowedCountry string) func(http.Handler) http.Handler {
	allowed := strings.ToUpper(strings.TrimSpace(allowedCountry))
	if allowed == "" {
		allowed = "US"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := strings.ToUpper(strings.TrimSpace(r.Header.Get(CountryHeader)))
			if country != "" && country != allowed {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusForbidden)
				_, _ = io.WriteString(w, forbiddenPage)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
