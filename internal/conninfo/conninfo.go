package conninfo

import "strings"

// Spec holds the connection parameters assembled from configuration defaults
// and command-line arguments. Every field is either empty (unset) or a
// trimmed, non-empty string; the client library applies its own defaults for
// anything left unset. The password is deliberately not part of the Spec —
// pgconn reads PGPASSWORD itself, so credentials never pass through program
// data, logs, or argv.
type Spec struct {
	Database string
	User     string
	Host     string
	HostAddr string
	Port     string
	Timeout  string
}

// ConnString renders the specification as a libpq keyword/value parameter
// string. Unset fields are omitted; present fields are emitted as
// "key=value " in a fixed order so the output is deterministic. Values are
// not escaped: the only consumer is pgconn.ParseConfig, which rejects
// malformed input outright.
func (s Spec) ConnString() string {
	pairs := []struct {
		key, val string
	}{
		{"dbname", s.Database},
		{"user", s.User},
		// hostaddr may coexist with host; it skips the DNS lookup.
		{"hostaddr", s.HostAddr},
		{"host", s.Host},
		{"port", s.Port},
		{"connect_timeout", s.Timeout},
	}

	var b strings.Builder
	for _, p := range pairs {
		if !isEmpty(p.val) {
			b.WriteString(p.key)
			b.WriteByte('=')
			b.WriteString(p.val)
			b.WriteByte(' ')
		}
	}
	return b.String()
}
