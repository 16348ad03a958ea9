package common

import (
	"fmt"
	"net/url"
	"strings"
)

//xorm引擎需要的驱动名和连接串
type DataSource struct {
	Driver string
	DSN    string
}

//解析 DATABASE_URL, 支持 postgres, mysql, sqlite3, sqlserver
func ParseDatabaseURL(raw string) (DataSource, error) {
	i := strings.Index(raw, "://")
	if i < 0 {
		return DataSource{}, fmt.Errorf("database url %q has no scheme", raw)
	}
	scheme, rest := raw[:i], raw[i+len("://"):]
	switch scheme {
	case "sqlite", "sqlite3":
		if rest == "" {
			return DataSource{}, fmt.Errorf("database url %q has no path", raw)
		}
		return DataSource{Driver: "sqlite3", DSN: rest}, nil
	case "postgres", "postgresql":
		return DataSource{Driver: "postgres", DSN: raw}, nil
	case "sqlserver", "mssql":
		return DataSource{Driver: "mssql", DSN: "sqlserver://" + rest}, nil
	case "mysql":
		u, err := url.Parse(raw)
		if err != nil {
			return DataSource{}, err
		}
		return DataSource{Driver: "mysql", DSN: mysqlDSN(u)}, nil
	}
	return DataSource{}, fmt.Errorf("unsupported database scheme %q", scheme)
}

// "root:root@tcp(localhost:3306)/contest?charset=utf8mb4"
func mysqlDSN(u *url.URL) string {
	var b strings.Builder
	if u.User != nil {
		b.WriteString(u.User.Username())
		if pwd, ok := u.User.Password(); ok {
			b.WriteString(":" + pwd)
		}
		b.WriteString("@")
	}
	host := u.Host
	if host == "" {
		host = "localhost:3306"
	}
	b.WriteString("tcp(" + host + ")/" + strings.TrimPrefix(u.Path, "/"))
	query := u.Query()
	if query.Get("charset") == "" {
		query.Set("charset", "utf8mb4")
	}
	b.WriteString("?" + query.Encode())
	return b.String()
}
