package util

import (
	"crypto/rand"
	"fmt"
	"log"
	"net/http"
)

// LogContext is the interface for log context objects. Each package performing
// an operation supplies one so that log lines can be traced to a session.
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a minimal LogContext for callers with no session of their own
type BasicLogContext struct {
	sessionID string
}

// AppName returns an empty string
func (c *BasicLogContext) AppName() string {
	return ""
}

// SessionID returns a Session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

// Severity values for audit log entries, following RFC 5424 numbering
const (
	FATAL   = 0
	ALERT   = 1
	CRIT    = 2
	ERROR   = 3
	WARNING = 4
	NOTICE  = 5
	INFO    = 6
	DEBUG   = 7
)

// LogAuditInput is the set of fields for a single audit log entry
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity int
}

func logPrefix(context LogContext) string {
	app := context.AppName()
	if app == "" {
		app = "app"
	}
	return fmt.Sprintf("[%s:%s]", app, context.SessionID())
}

// LogInfo logs an informational message
func LogInfo(context LogContext, message string) {
	log.Printf("%s INFO %s", logPrefix(context), message)
}

// LogAlert logs a message that somebody should probably look at eventually
func LogAlert(context LogContext, message string) {
	log.Printf("%s ALERT %s", logPrefix(context), message)
}

// LogSimpleErr logs a message and its underlying error, and returns an error
// wrapping both so callers can propagate it directly
func LogSimpleErr(context LogContext, message string, err error) error {
	log.Printf("%s ERROR %s %v", logPrefix(context), message, err)
	return fmt.Errorf("%s: %v", message, err)
}

// LogAudit writes an actor/action/actee audit entry
func LogAudit(context LogContext, input LogAuditInput) {
	log.Printf("%s AUDIT[%d] actor=%q action=%q actee=%q %s",
		logPrefix(context), input.Severity, input.Actor, input.Action, input.Actee, input.Message)
}

// Error holds the full context of a failed operation: a detailed message for
// the log and a simple one for the end user
type Error struct {
	LogMsg     string
	SimpleMsg  string
	Response   string
	URL        string
	HTTPStatus int
}

// Log writes out the detailed error and returns an error carrying the simple message
func (e Error) Log(context LogContext, prefix string) error {
	message := e.LogMsg
	if prefix != "" {
		message = prefix + ": " + message
	}
	if e.URL != "" {
		message += fmt.Sprintf("\nURL: %s", e.URL)
	}
	if e.HTTPStatus != 0 {
		message += fmt.Sprintf("\nHTTP Status: %d", e.HTTPStatus)
	}
	if e.Response != "" {
		message += fmt.Sprintf("\nResponse: %s", e.Response)
	}
	log.Printf("%s ERROR %s", logPrefix(context), message)
	simple := e.SimpleMsg
	if simple == "" {
		simple = e.LogMsg
	}
	return fmt.Errorf("%s", simple)
}

// HTTPErr is an error holding an HTTP status code suitable for surfacing to a client
type HTTPErr struct {
	Status  int
	Message string
}

func (err HTTPErr) Error() string {
	return err.Message
}

// HTTPError writes an error message to the response with the given status code,
// logging it on the way out
func HTTPError(r *http.Request, w http.ResponseWriter, context LogContext, message string, status int) {
	LogAlert(context, fmt.Sprintf("%s %s -> %d: %s", r.Method, r.URL.Path, status, message))
	http.Error(w, message, status)
}

// PsuUUID makes a psuedo-UUID for session tracking
func PsuUUID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%X-%X-%X-%X-%X", b[0:4], b[4:6], b[6:8], b[8:10], b[10:]), nil
}
