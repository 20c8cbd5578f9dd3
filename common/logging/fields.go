package logging

import "log/slog"

// Common field names for consistent logging across services.
const (
	FieldService  = "service"
	FieldDomain   = "domain"
	FieldTarget   = "target"
	FieldRoute    = "route"
	FieldMethod   = "method"
	FieldPath     = "path"
	FieldStatus   = "status"
	FieldDuration = "duration_ms"
	FieldError    = "error"
	FieldSubject  = "subject"
	FieldActivity = "activity_type"
)

// Service returns a slog attribute for the service name.
func Service(name string) slog.Attr {
	return slog.String(FieldService, name)
}

// Domain returns a slog attribute for the bridge domain.
func Domain(name string) slog.Attr {
	return slog.String(FieldDomain, name)
}

// Target returns a slog attribute for the forwarding target.
func Target(target string) slog.Attr {
	return slog.String(FieldTarget, target)
}

// Route returns a slog attribute for the resolved route identifier.
func Route(route string) slog.Attr {
	return slog.String(FieldRoute, route)
}

// Method returns a slog attribute for the HTTP method.
func Method(method string) slog.Attr {
	return slog.String(FieldMethod, method)
}

// Path returns a slog attribute for the HTTP path.
func Path(path string) slog.Attr {
	return slog.String(FieldPath, path)
}

// Status returns a slog attribute for the HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int(FieldStatus, code)
}

// Duration returns a slog attribute for duration in milliseconds.
func Duration(ms int64) slog.Attr {
	return slog.Int64(FieldDuration, ms)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}

// Subject returns a slog attribute for a broker subject.
func Subject(subject string) slog.Attr {
	return slog.String(FieldSubject, subject)
}

// ActivityType returns a slog attribute for an activity record type.
func ActivityType(t string) slog.Attr {
	return slog.String(FieldActivity, t)
}
