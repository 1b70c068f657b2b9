package msvc

import (
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// vsYearVersion maps Visual Studio marketing years to internal version
// numbers, as reported by the installer metadata.
var vsYearVersion = map[string]string{
	"2022": "17.0",
	"2019": "16.0",
	"2017": "15.0",
	"2015": "14.0",
	"2013": "12.0",
}

// vsYears lists the years probed during the standard-location fallback,
// newest first.
var vsYears = []string{"2022", "2019", "2017", "2015"}

// vsEditions lists installation edition directories in priority order.
var vsEditions = []string{"Enterprise", "Professional", "Community", "Preview", "BuildTools"}

// VersionForSelector translates a year alias into its version number.
// Selectors that are not known years pass through unchanged on the
// assumption that they already are version numbers.
func VersionForSelector(selector string) string {
	if v, ok := vsYearVersion[selector]; ok {
		return v
	}
	return selector
}

// YearForVersion performs the reverse lookup. Unknown versions pass through.
func YearForVersion(version string) string {
	for year, v := range vsYearVersion {
		if v == version {
			return year
		}
	}
	return version
}

// VersionWindow builds the vswhere -version range covering one major
// release, e.g. "17.0" becomes "17.0,17.9". An empty selector yields an
// empty window, meaning "ask for the latest".
func VersionWindow(selector string) (string, error) {
	if strings.TrimSpace(selector) == "" {
		return "", nil
	}
	number := VersionForSelector(selector)
	parsed, err := goversion.NewVersion(number)
	if err != nil {
		return "", fmt.Errorf("invalid version selector %q: %w", selector, err)
	}
	major := parsed.Segments()[0]
	return fmt.Sprintf("%s,%d.9", number, major), nil
}
