package store

import (
	"fmt"
	"net/url"
)

// BuildDSN assembles a connection string from the externally supplied
// database parameters. Engine, host and database name are required; user,
// password and schema are optional. The schema becomes the connection's
// search_path.
func BuildDSN(engine, host, dbname, user, password, schema string) (string, error) {
	if engine == "" || host == "" || dbname == "" {
		return "", fmt.Errorf("database engine, host and name must all be configured")
	}

	u := url.URL{
		Scheme: engine,
		Host:   host,
		Path:   "/" + dbname,
	}

	if user != "" {
		if password != "" {
			u.User = url.UserPassword(user, password)
		} else {
			u.User = url.User(user)
		}
	}

	q := url.Values{}
	q.Set("sslmode", "disable")
	if schema != "" {
		q.Set("options", "-csearch_path="+schema)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
