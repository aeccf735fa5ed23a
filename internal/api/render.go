package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strings"  // Message formatting

	"chainwatch/internal/domain"  // Importing domain models
	"chainwatch/internal/session" // Flash messages

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// render pops the session's flash messages into data and renders the page
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	msgs := session.FromContext(c).Messages() // One-shot: cleared once read
	data["success"] = msgs.Success
	data["error"] = msgs.Error
	c.HTML(status, name, data)
}

// redirect sends the browser to location with a GET
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// fail reports err to the user. Not-found, validation and unconfirmed-delete
// errors are logged at Warn and become an error flash and a redirect to back;
// anything else is logged at Error and answered with the 500 page.
func fail(c *gin.Context, err error, back string) {
	var verr *domain.ValidationError
	flash := session.FromContext(c)
	entry := logrus.WithFields(failureFields(c, err))
	switch {
	case errors.As(err, &verr):
		flash.Error(capitalize(verr.Error()))
	case errors.Is(err, domain.ErrCaseHasWallets):
		flash.Error("This case still has wallets attached. Tick the confirmation box to delete them with the case.")
	case errors.Is(err, domain.ErrNotFound):
		flash.Error(notFoundMessage(err))
	default:
		entry.Error("Request could not be served")
		_ = c.Error(err)
		render(c, http.StatusInternalServerError, "error", gin.H{
			"title":   "Error",
			"message": "The request could not be completed. Please try again later.",
		})
		return
	}
	entry.Warn("Request rejected")
	redirect(c, back)
}

// failureFields names the records a failed request touched
func failureFields(c *gin.Context, err error) logrus.Fields {
	fields := logrus.Fields{
		"method": c.Request.Method,   // HTTP method
		"path":   c.Request.URL.Path, // Request path
		"error":  err.Error(),        // Error message
	}
	if id := c.Param("id"); id != "" {
		if strings.HasPrefix(c.FullPath(), "/wallets") {
			fields["wallet_id"] = id // Wallet routes
		} else {
			fields["case_id"] = id // Case routes
		}
	}
	caseID := c.Query("caseId")
	if caseID == "" {
		caseID = c.PostForm("caseId")
	}
	if caseID != "" {
		fields["case_id"] = caseID // Parent case of a wallet form
	}
	return fields
}

func notFoundMessage(err error) string {
	if msg := err.Error(); msg != domain.ErrNotFound.Error() {
		return capitalize(msg) // Carries which record was missing
	}
	return "Record not found"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
