// Package licenses is a static registry of known open license identifiers
// and their canonical reference URLs. Data only, no feed logic.
package licenses

import "strings"

var urls = map[string]string{
	"cc0-1.0":        "https://creativecommons.org/publicdomain/zero/1.0/",
	"cc-by-1.0":      "https://creativecommons.org/licenses/by/1.0/",
	"cc-by-2.0":      "https://creativecommons.org/licenses/by/2.0/",
	"cc-by-2.5":      "https://creativecommons.org/licenses/by/2.5/",
	"cc-by-3.0":      "https://creativecommons.org/licenses/by/3.0/",
	"cc-by-4.0":      "https://creativecommons.org/licenses/by/4.0/",
	"cc-by-sa-4.0":   "https://creativecommons.org/licenses/by-sa/4.0/",
	"cc-by-nc-4.0":   "https://creativecommons.org/licenses/by-nc/4.0/",
	"cc-by-nd-4.0":   "https://creativecommons.org/licenses/by-nd/4.0/",
	"cc-by-nc-sa-4.0": "https://creativecommons.org/licenses/by-nc-sa/4.0/",
	"cc-by-nc-nd-4.0": "https://creativecommons.org/licenses/by-nc-nd/4.0/",
	"apache-2.0":     "https://www.apache.org/licenses/LICENSE-2.0",
	"mit":            "https://opensource.org/license/mit/",
	"gpl-2.0":        "https://www.gnu.org/licenses/old-licenses/gpl-2.0.html",
	"gpl-3.0":        "https://www.gnu.org/licenses/gpl-3.0.html",
	"lgpl-3.0":       "https://www.gnu.org/licenses/lgpl-3.0.html",
	"mpl-2.0":        "https://www.mozilla.org/en-US/MPL/2.0/",
	"unlicense":      "https://unlicense.org/",
	"wtfpl":          "http://www.wtfpl.net/about/",
}

// URL returns the canonical reference URL for a known license identifier.
// Matching is case-insensitive; the second return is false for unknown
// identifiers (custom licenses carry their own url attribute instead).
func URL(identifier string) (string, bool) {
	u, ok := urls[strings.ToLower(strings.TrimSpace(identifier))]
	return u, ok
}
