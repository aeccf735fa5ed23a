package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"net/url"  // Query escaping

	"chainwatch/internal/domain"  // Importing domain models
	"chainwatch/internal/service" // Case and wallet services
	"chainwatch/internal/session" // Flash messages

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ListWalletsHandler renders the wallets attached to the case named by ?caseId=
func ListWalletsHandler(cases *service.CaseService, wallets *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caseID := c.Query("caseId")
		if caseID == "" {
			session.FromContext(c).Error("Pick a case to list its wallets")
			redirect(c, "/")
			return
		}
		parent, err := cases.Get(c.Request.Context(), caseID)
		if err != nil {
			fail(c, err, "/")
			return
		}
		list, err := wallets.ListForCase(c.Request.Context(), caseID)
		if err != nil {
			fail(c, err, "/cases/"+caseID)
			return
		}
		render(c, http.StatusOK, "wallets/index", gin.H{
			"title":         "Wallets",
			"investigation": parent,
			"wallets":       list,
		})
	}
}

// NewWalletHandler renders the add-wallet form for the case named by ?caseId=
func NewWalletHandler(cases *service.CaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		parent, err := cases.Get(c.Request.Context(), c.Query("caseId"))
		if err != nil {
			fail(c, err, "/")
			return
		}
		render(c, http.StatusOK, "wallets/new", gin.H{
			"title":         "Add wallet",
			"investigation": parent,
			"labels":        domain.WalletLabels(),
		})
	}
}

// CreateWalletHandler attaches a wallet to a case
func CreateWalletHandler(wallets *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form WalletForm // Bind form fields
		if err := c.ShouldBind(&form); err != nil {
			session.FromContext(c).Error("Could not read the submitted form")
			redirect(c, "/")
			return
		}
		created, err := wallets.Create(c.Request.Context(), domain.WalletInput{
			CaseID:  form.CaseID,
			Address: form.Address,
			Label:   form.Label,
			Notes:   form.Notes,
		})
		if err != nil {
			back := "/wallets/new?caseId=" + url.QueryEscape(form.CaseID)
			if errors.Is(err, domain.ErrNotFound) {
				back = "/"
			}
			fail(c, err, back)
			return
		}
		logrus.WithFields(logrus.Fields{
			"wallet_id": created.ID,     // New wallet id
			"case_id":   created.CaseID, // Parent case
			"label":     created.Label,  // Wallet label
		}).Info("Wallet added")
		session.FromContext(c).Success("Wallet added")
		redirect(c, "/wallets/"+created.ID)
	}
}

// ShowWalletHandler renders one wallet with all of its records
func ShowWalletHandler(cases *service.CaseService, wallets *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := wallets.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err, "/")
			return
		}
		data := gin.H{"title": found.Address, "wallet": found}
		// Parent lookup is best effort; the page still renders the raw case id
		if parent, err := cases.Get(c.Request.Context(), found.CaseID); err == nil {
			data["investigation"] = parent
		}
		render(c, http.StatusOK, "wallets/show", data)
	}
}

// EditWalletHandler renders the edit form for one wallet
func EditWalletHandler(wallets *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := wallets.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err, "/")
			return
		}
		render(c, http.StatusOK, "wallets/edit", gin.H{
			"title":  "Edit wallet",
			"wallet": found,
			"labels": domain.WalletLabels(),
		})
	}
}

// UpdateWalletHandler applies the submitted fields to a wallet
func UpdateWalletHandler(wallets *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		back := "/wallets/" + id + "/edit"
		upd, err := walletUpdateFromForm(c)
		if err != nil {
			fail(c, err, back)
			return
		}
		updated, err := wallets.Update(c.Request.Context(), id, upd)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) && upd.CaseID == nil {
				back = "/"
			}
			fail(c, err, back)
			return
		}
		logrus.WithFields(logrus.Fields{
			"wallet_id": updated.ID,    // Wallet id
			"label":     updated.Label, // Label after update
		}).Info("Wallet updated")
		session.FromContext(c).Success("Wallet updated")
		redirect(c, "/wallets/"+updated.ID)
	}
}

// DeleteWalletHandler removes a wallet and returns to its case
func DeleteWalletHandler(wallets *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		removed, err := wallets.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err, "/")
			return
		}
		logrus.WithFields(logrus.Fields{
			"wallet_id": removed.ID,     // Deleted wallet id
			"case_id":   removed.CaseID, // Parent case
		}).Info("Wallet deleted")
		session.FromContext(c).Success("Wallet deleted")
		redirect(c, "/cases/"+removed.CaseID)
	}
}
