package database

import (
	"fmt"
	"strings"
)

// ConstructDatabaseURL joins a base postgres URL with a database name,
// keeping any query parameters in place and defaulting sslmode=disable
// when the caller did not choose one. An empty database name returns the
// base URL untouched, which lets deployments pass a fully formed URL.
func ConstructDatabaseURL(baseURL, databaseName string) string {
	if databaseName == "" {
		return baseURL
	}

	base := strings.TrimRight(baseURL, "/")

	var url string
	if i := strings.Index(base, "?"); i >= 0 {
		url = fmt.Sprintf("%s/%s?%s", base[:i], databaseName, base[i+1:])
	} else {
		url = fmt.Sprintf("%s/%s", base, databaseName)
	}

	if !strings.Contains(url, "sslmode=") {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		url += sep + "sslmode=disable"
	}

	return url
}
