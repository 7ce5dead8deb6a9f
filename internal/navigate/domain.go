package navigate

import (
	"regexp"
	"strings"
)

// URL placeholders understood by stored script-filter paths.
const (
	VarDomain = "{var:domain}"
	VarID     = "{var:id}"
)

var (
	domainRe    = regexp.MustCompile(`(.*://)?([^/]+)(/)?(.*)`)
	alphaOnlyRe = regexp.MustCompile(`^[a-zA-Z]{2,}$`)
)

// Domain extracts the host portion of a URL-ish string, or returns the
// string itself when no host is recognizable.
func Domain(s string) string {
	m := domainRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return m[2]
}

// WordpressDomain extracts the site path a WordPress admin URL belongs
// to. For wp-admin/wp-login URLs the site may live under a
// subdirectory, so everything before the admin segment is kept;
// localhost URLs return the localhost token; otherwise the last
// dotted token with an alphabetic TLD wins.
func WordpressDomain(url string) string {
	tokens := strings.Split(url, "/")

	if containsToken(tokens, "wp-admin") || containsToken(tokens, "wp-login.php") {
		var parts []string
		for _, tok := range tokens {
			if strings.Contains(tok, ":") || tok == "" {
				continue
			}
			if tok == "wp-admin" || tok == "wp-login.php" {
				break
			}
			parts = append(parts, tok)
		}
		return strings.Join(parts, "/")
	}

	for _, tok := range tokens {
		if strings.HasPrefix(tok, "localhost") {
			return tok
		}
	}

	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		if strings.Contains(tok, ".php?") {
			continue
		}
		dotted := strings.Split(tok, ".")
		if len(dotted) < 2 {
			continue
		}
		last := dotted[len(dotted)-1]
		if alphaOnlyRe.MatchString(last) && !strings.EqualFold(last, "php") {
			return tok
		}
	}
	return ""
}

// ScriptFilterURL turns a concrete browser URL into a stored template:
// the domain becomes {var:domain} and the scheme is forced to https.
func ScriptFilterURL(browserURL string) (template, domain string) {
	domain = WordpressDomain(browserURL)
	template = browserURL
	if domain != "" {
		template = strings.ReplaceAll(template, domain, VarDomain)
	}
	template = strings.Replace(template, "http:", "https:", 1)
	return template, domain
}

// FillDomain substitutes the domain placeholder in a stored URL.
func FillDomain(stored, domain string) string {
	return strings.ReplaceAll(stored, VarDomain, domain)
}

// HasVarID reports whether a stored URL still needs an id substituted.
func HasVarID(stored string) bool {
	return strings.Contains(stored, VarID)
}

// FillID substitutes the id placeholder in a stored URL.
func FillID(stored, id string) string {
	return strings.ReplaceAll(stored, VarID, id)
}

func containsToken(tokens []string, target string) bool {
	for _, tok := range tokens {
		if tok == target {
			return true
		}
	}
	return false
}
