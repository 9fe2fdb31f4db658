package urlinfo

import "regexp"

const (
	// tagExcessiveSubdomains is appended when a hostname carries more than
	// maxSubdomainLabels labels beyond a two-label base.
	tagExcessiveSubdomains = "excessive_subdomains"
	// tagSuspiciousTLDPrefix prefixes the suspicious-TLD tags.
	tagSuspiciousTLDPrefix = "suspicious_tld_"

	// maxSubdomainLabels is the number of subdomain labels tolerated before
	// a hostname is tagged as excessive.
	maxSubdomainLabels = 3
	// machineSubdomainLength is the length above which a purely alphanumeric
	// subdomain is considered machine generated.
	machineSubdomainLength = 8
)

// defaultSuspiciousPatterns are the lexical red flags matched against the
// lowercased full URL. The pattern source doubles as the finding tag.
var defaultSuspiciousPatterns = compileAll(
	`urgent`,
	`click.*now`,
	`limited.*time`,
	`verify.*account`,
	`suspend.*account`,
	`confirm.*identity`,
	`update.*payment`,
	`free.*gift`,
	`congratulations`,
	`winner`,
	`claim.*prize`,
)

// defaultSuspiciousTLDs are top-level domains with a disproportionate share
// of abuse registrations.
var defaultSuspiciousTLDs = []string{".tk", ".ml", ".ga", ".cf", ".cc"}

// defaultShorteners are hosts of known link-shortening services.
var defaultShorteners = []string{
	"bit.ly", "tinyurl.com", "goo.gl", "t.co", "short.link",
	"ow.ly", "buff.ly", "is.gd", "tiny.cc", "rebrand.ly",
}

// defaultSecurityTerms are bait words that make a subdomain suspicious.
var defaultSecurityTerms = []string{"secure", "login", "account", "verify", "update"}

// defaultBrands are high-value brand names checked for typosquatting.
var defaultBrands = []string{
	"google", "facebook", "amazon", "microsoft", "apple",
	"paypal", "ebay", "twitter", "instagram", "linkedin",
}

// compileAll compiles a set of regex patterns, panicking on invalid input
func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}

	return compiled
}
