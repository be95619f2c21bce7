package cookies

import (
	"net"
	"net/http"
	"net/url"

	"airline-warehouse/internal/shared/config"
)

const AuthCookieName = "auth_token"

// Jar issues the auth cookie with the deployment's security attributes.
type Jar struct {
	domain   string
	secure   bool
	sameSite http.SameSite
	maxAge   int
}

func NewJar(auth config.AuthConfig, frontendURL string) *Jar {
	return &Jar{
		domain:   extractDomain(frontendURL),
		secure:   auth.CookieSecure,
		sameSite: parseSameSite(auth.CookieSameSite),
		maxAge:   int(auth.TokenExpiration.Seconds()),
	}
}

func (j *Jar) Set(w http.ResponseWriter, token string) {
	cookie := j.cookie()
	cookie.Value = token
	cookie.MaxAge = j.maxAge
	http.SetCookie(w, cookie)
}

func (j *Jar) Clear(w http.ResponseWriter) {
	cookie := j.cookie()
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func (j *Jar) cookie() *http.Cookie {
	return &http.Cookie{
		Name:     AuthCookieName,
		Path:     "/",
		Domain:   j.domain,
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: j.sameSite,
	}
}

// extractDomain returns the cookie domain for the frontend, or "" for local
// development hosts.
func extractDomain(frontendURL string) string {
	parsed, err := url.Parse(frontendURL)
	if err != nil || parsed.Host == "" {
		return ""
	}

	host := parsed.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if host == "localhost" || host == "127.0.0.1" {
		return ""
	}
	return host
}

func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
