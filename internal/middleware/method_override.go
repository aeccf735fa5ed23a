package middleware

import (
	"net/http" // HTTP types
	"strings"  // String manipulation
)

// MethodOverride lets HTML forms reach PUT, PATCH and DELETE routes. A POST
// carrying _method in its query string or urlencoded/multipart body is
// re-dispatched with that method. It wraps the whole engine because gin picks
// the route before its own middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if method := overrideMethod(r); method != "" {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}

func overrideMethod(r *http.Request) string {
	method := r.URL.Query().Get("_method")
	if method == "" {
		ct := r.Header.Get("Content-Type")
		if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
			method = r.PostFormValue("_method") // Parses the body; handlers still see r.PostForm
		}
	}
	switch method = strings.ToUpper(strings.TrimSpace(method)); method {
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		return method
	}
	return ""
}
