// Package logger records what a handler wrote so it can be reported after
// the response is sent.
package logger

import "net/http"

type ResponseLogger struct {
	http.ResponseWriter

	status int
	size   int
}

func New(w http.ResponseWriter) *ResponseLogger {
	return &ResponseLogger{ResponseWriter: w, status: http.StatusOK}
}

func (l *ResponseLogger) WriteHeader(code int) {
	l.status = code
	l.ResponseWriter.WriteHeader(code)
}

func (l *ResponseLogger) Write(b []byte) (int, error) {
	n, err := l.ResponseWriter.Write(b)
	l.size += n
	return n, err
}

// Status returns the status code sent, http.StatusOK if WriteHeader was
// never called.
func (l *ResponseLogger) Status() int {
	return l.status
}

// Size returns the number of body bytes written.
func (l *ResponseLogger) Size() int {
	return l.size
}
