package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// viewer identifies who is looking and in which zone. Every date the portal
// shows is computed in that zone.
type viewer struct {
	defaultLocation *time.Location
	now             func() time.Time
}

func newViewer(defaultLocation *time.Location, now func() time.Time) viewer {
	if defaultLocation == nil {
		defaultLocation = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return viewer{defaultLocation: defaultLocation, now: now}
}

func (v viewer) employeeID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", jwt.ErrMissingEmployee
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", jwt.ErrMissingEmployee
	}
	return employeeID, nil
}

// location reads the IANA tz query parameter, falling back to the configured
// default zone.
func (v viewer) location(r *http.Request) (*time.Location, error) {
	tz := r.URL.Query().Get("tz")
	if tz == "" {
		return v.defaultLocation, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", response.ErrInvalidTimeZone, tz)
	}
	return loc, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, key string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
