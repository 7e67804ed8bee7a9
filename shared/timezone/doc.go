// Package timezone resolves the application timezone used to decide what
// "today" is for check-ins and summaries.
//
// The zone is read from APP_TIMEZONE when the package is imported. Use IANA
// names such as "UTC", "Asia/Jakarta" or "America/New_York". When the
// variable is empty the server's local zone is used, so calendar days match
// the clock of the machine running the API.
//
//	now := timezone.Now()
//	local := timezone.ToAppTime(createdAt)
//	formatted := timezone.Format(createdAt, time.RFC3339)
package timezone
