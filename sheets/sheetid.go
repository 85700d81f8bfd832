package sheets

import (
	"regexp"
	"strings"
)

var sheetURLPattern = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)

// ExtractSheetID pulls the spreadsheet ID out of a full Google Sheets URL.
// A bare ID is returned as-is; anything else comes back empty.
func ExtractSheetID(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if m := sheetURLPattern.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	if strings.Contains(value, "://") || strings.ContainsAny(value, " /") {
		return ""
	}
	return value
}
