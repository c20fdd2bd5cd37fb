package conninfo

import (
	"fmt"
	"strings"
)

// ParseError reports an option supplied without a usable value.
type ParseError struct {
	Field string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("missing %s argument", e.Field)
}

// option describes one recognized flag pair and where its value lands.
type option struct {
	short string // "-d"; empty when the option has no short form
	long  string // "--dbname"; matched as a fixed-length prefix
	name  string // field name used in error messages
	field func(*Spec) *string
}

var options = []option{
	{"-d", "--dbname", "database", func(s *Spec) *string { return &s.Database }},
	{"-U", "--username", "username", func(s *Spec) *string { return &s.User }},
	{"-h", "--hostname", "hostname", func(s *Spec) *string { return &s.Host }},
	{"", "--hostaddr", "hostaddr", func(s *Spec) *string { return &s.HostAddr }},
	{"-p", "--port", "port", func(s *Spec) *string { return &s.Port }},
	{"-t", "--timeout", "timeout", func(s *Spec) *string { return &s.Timeout }},
}

// Parse scans args once, left to right, filling spec from the recognized
// options. Short form ("-d value") consumes the following token; long form
// ("--dbname=value") carries its value in the same token. Long options match
// by fixed-length prefix, repeated options overwrite, and unrecognized tokens
// are skipped so pg_isready-style flags the probe does not act on still pass.
func Parse(args []string, spec *Spec) error {
	for i := 0; i < len(args); i++ {
		o, long := match(args[i])
		if o == nil {
			continue
		}

		var v string
		var err error
		if long {
			v, err = equalValue(args[i], o.name)
		} else {
			v, err = nextValue(args, i, o.name)
			i++
		}
		if err != nil {
			return err
		}
		*o.field(spec) = v
	}
	return nil
}

func match(tok string) (o *option, long bool) {
	for i := range options {
		switch {
		case options[i].short != "" && tok == options[i].short:
			return &options[i], false
		case strings.HasPrefix(tok, options[i].long):
			return &options[i], true
		}
	}
	return nil, false
}

// nextValue takes the token following a short-form option. The value must
// exist, must not look like another flag, and must trim to non-empty.
func nextValue(args []string, i int, field string) (string, error) {
	if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
		if v := Trim(args[i+1]); !isEmpty(v) {
			return v, nil
		}
	}
	return "", &ParseError{Field: field}
}

// equalValue takes the text after the first '=' of a long-form option.
func equalValue(tok, field string) (string, error) {
	if _, rest, ok := strings.Cut(tok, "="); ok {
		if v := Trim(rest); !isEmpty(v) {
			return v, nil
		}
	}
	return "", &ParseError{Field: field}
}
