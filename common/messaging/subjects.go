package messaging

import "fmt"

// Subject naming convention: ariel.<concern>.<qualifier>.
const (
	// SubjectActivityPrefix is the prefix for per-domain activity events.
	SubjectActivityPrefix = "ariel.activity"

	// SubjectActivityAll subscribes to activity events from every domain.
	SubjectActivityAll = "ariel.activity.>"
)

// ActivitySubject returns the broadcast subject for one bridge domain,
// e.g. "ariel.activity.affiliate".
func ActivitySubject(domain string) string {
	return fmt.Sprintf("%s.%s", SubjectActivityPrefix, domain)
}
