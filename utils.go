package sacristy

import (
	"fmt"
	"strings"
	"time"

	"github.com/zeebo/xxh3"
)

// SanitizeFileName strips path separators and anything outside a
// conservative character set so uploaded names are safe as storage keys.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if idx := strings.LastIndexAny(name, "/\\"); idx >= 0 {
		name = name[idx+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := b.String()
	if len(out) > 120 {
		out = out[len(out)-120:]
	}
	if out == "" || out == "." || out == ".." {
		out = "file"
	}
	return out
}

// CertificateFileName builds a collision-resistant storage key:
// {role?}-{kind?}-{timestamp}-{content hash}-{sanitized original name}.
func CertificateFileName(role, kind, original string, content []byte) string {
	parts := []string{}
	if role != "" {
		parts = append(parts, strings.ToLower(role))
	}
	if kind != "" {
		parts = append(parts, strings.ToLower(kind))
	}
	parts = append(parts,
		fmt.Sprintf("%d", time.Now().UnixMilli()),
		fmt.Sprintf("%08x", uint32(xxh3.Hash(content))),
		SanitizeFileName(original),
	)
	return strings.Join(parts, "-")
}

// IsEmailAddress performs the basic shape check used before dispatching a
// certificate: one @, non-empty local part, a dot in the domain.
func IsEmailAddress(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	local, dom := s[:at], s[at+1:]
	if strings.ContainsAny(local, " \t") {
		return false
	}
	dot := strings.LastIndex(dom, ".")
	return dot > 0 && dot < len(dom)-1 && !strings.ContainsAny(dom, " \t")
}
