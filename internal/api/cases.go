package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"chainwatch/internal/domain"  // Importing domain models
	"chainwatch/internal/service" // Case and wallet services
	"chainwatch/internal/session" // Flash messages

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ListCasesHandler renders every case, newest first
func ListCasesHandler(cases *service.CaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := cases.List(c.Request.Context())
		if err != nil {
			fail(c, err, "/")
			return
		}
		render(c, http.StatusOK, "cases/index", gin.H{"title": "Cases", "cases": list})
	}
}

// NewCaseHandler renders the empty case form
func NewCaseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "cases/new", gin.H{"title": "New case"})
	}
}

// CreateCaseHandler opens a case from the submitted form
func CreateCaseHandler(cases *service.CaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form CaseForm // Bind form fields
		if err := c.ShouldBind(&form); err != nil {
			session.FromContext(c).Error("Could not read the submitted form")
			redirect(c, "/cases/new")
			return
		}
		created, err := cases.Create(c.Request.Context(), domain.CaseInput{
			Title:       form.Title,
			Description: form.Description,
			Officer:     form.Officer,
		})
		if err != nil {
			fail(c, err, "/cases/new")
			return
		}
		logrus.WithFields(logrus.Fields{
			"case_id": created.ID,      // New case id
			"officer": created.Officer, // Assigned investigator
		}).Info("Case created")
		session.FromContext(c).Success("Case created")
		redirect(c, "/cases/"+created.ID)
	}
}

// ShowCaseHandler renders one case with its wallets
func ShowCaseHandler(cases *service.CaseService, wallets *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		found, err := cases.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err, "/")
			return
		}
		list, err := wallets.ListForCase(c.Request.Context(), id)
		if err != nil {
			fail(c, err, "/")
			return
		}
		render(c, http.StatusOK, "cases/show", gin.H{
			"title":         found.Title,
			"investigation": found,
			"wallets":       list,
		})
	}
}

// EditCaseHandler renders the edit form for one case
func EditCaseHandler(cases *service.CaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := cases.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err, "/")
			return
		}
		render(c, http.StatusOK, "cases/edit", gin.H{
			"title":         "Edit case",
			"investigation": found,
			"statuses":      domain.CaseStatuses(),
		})
	}
}

// UpdateCaseHandler applies the submitted fields to a case
func UpdateCaseHandler(cases *service.CaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		updated, err := cases.Update(c.Request.Context(), id, caseUpdateFromForm(c))
		if err != nil {
			back := "/cases/" + id + "/edit"
			if errors.Is(err, domain.ErrNotFound) {
				back = "/"
			}
			fail(c, err, back)
			return
		}
		logrus.WithFields(logrus.Fields{
			"case_id": updated.ID,     // Case id
			"status":  updated.Status, // Status after update
		}).Info("Case updated")
		session.FromContext(c).Success("Case updated")
		redirect(c, "/cases/"+updated.ID)
	}
}

// DeleteCaseHandler removes a case; attached wallets go with it only when confirm=true
func DeleteCaseHandler(cases *service.CaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		confirm := c.PostForm("confirm") == "true" // Cascade confirmation checkbox
		if err := cases.Delete(c.Request.Context(), id, confirm); err != nil {
			back := "/cases/" + id
			if errors.Is(err, domain.ErrNotFound) {
				back = "/"
			}
			fail(c, err, back)
			return
		}
		logrus.WithFields(logrus.Fields{
			"case_id": id,      // Deleted case id
			"cascade": confirm, // Whether wallets were removed too
		}).Info("Case deleted")
		session.FromContext(c).Success("Case deleted")
		redirect(c, "/")
	}
}
