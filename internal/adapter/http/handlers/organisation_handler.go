package handlers

import (
	"net/http"

	request "financier/internal/adapter/http/dto/request"
	response "financier/internal/adapter/http/dto/response"
	"financier/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// OrganisationHandler exposes organisation accounts: profile, payout bank
// accounts, identity verification and balance.
type OrganisationHandler struct {
	usecase usecase.IBillingUseCase
	log     logrus.FieldLogger
}

func NewOrganisationHandler(uc usecase.IBillingUseCase, log logrus.FieldLogger) *OrganisationHandler {
	return &OrganisationHandler{usecase: uc, log: log.WithField("component", "billing.handler.organisation")}
}

// RegisterOrganisation godoc
// @Summary      Register an organisation
// @Description  Creates the organisation's gateway account, or returns the existing one.
// @Tags         organisations
// @Accept       json
// @Produce      json
// @Param        payload  body  request.OrganisationRequest  true  "Organisation"
// @Success      201  {object}  entities.OrganisationAccount
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /organisations [post]
func (h *OrganisationHandler) RegisterOrganisation(c *gin.Context) {
	var payload request.OrganisationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, h.log, "register-organisation", err)
		return
	}

	account, err := h.usecase.RegisterOrganisation(c.Request.Context(), payload.ToConnectAccount())
	if err != nil {
		respondError(c, h.log, "register-organisation", err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

// GetOrganisation godoc
// @Summary  Get an organisation account
// @Tags     organisations
// @Produce  json
// @Param    org_id  path  string  true  "Host organisation id"
// @Success  200  {object}  entities.OrganisationAccount
// @Failure  404  {object}  pkg.HTTPError
// @Router   /organisations/{org_id} [get]
func (h *OrganisationHandler) GetOrganisation(c *gin.Context) {
	account, err := h.usecase.GetOrganisation(c.Request.Context(), c.Param("org_id"))
	if err != nil {
		respondError(c, h.log, "get-organisation", err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateOrganisation godoc
// @Summary  Update an organisation's profile and branding
// @Tags     organisations
// @Accept   json
// @Produce  json
// @Param    org_id   path  string                       true  "Host organisation id"
// @Param    payload  body  request.OrganisationRequest  true  "Organisation"
// @Success  200  {object}  entities.OrganisationAccount
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /organisations/{org_id} [put]
func (h *OrganisationHandler) UpdateOrganisation(c *gin.Context) {
	var payload request.OrganisationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, h.log, "update-organisation", err)
		return
	}
	payload.OrganisationID = c.Param("org_id")

	account, err := h.usecase.UpdateOrganisation(c.Request.Context(), payload.ToConnectAccount())
	if err != nil {
		respondError(c, h.log, "update-organisation", err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// ListBankAccounts godoc
// @Summary  List payout bank accounts
// @Tags     organisations
// @Produce  json
// @Param    org_id  path  string  true  "Host organisation id"
// @Success  200  {object}  response.BankAccountsResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /organisations/{org_id}/bank-accounts [get]
func (h *OrganisationHandler) ListBankAccounts(c *gin.Context) {
	accounts, err := h.usecase.ListBankAccounts(c.Request.Context(), c.Param("org_id"))
	if err != nil {
		respondError(c, h.log, "list-bank-accounts", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBankAccounts(accounts))
}

// AddBankAccount godoc
// @Summary  Add a payout bank account from a bank account token
// @Tags     organisations
// @Accept   json
// @Produce  json
// @Param    org_id   path  string                true  "Host organisation id"
// @Param    payload  body  request.TokenRequest  true  "Bank account token"
// @Success  201  {object}  entities.BankAccount
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /organisations/{org_id}/bank-accounts [post]
func (h *OrganisationHandler) AddBankAccount(c *gin.Context) {
	var payload request.TokenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, h.log, "add-bank-account", err)
		return
	}

	account, err := h.usecase.AddBankAccount(c.Request.Context(), c.Param("org_id"), payload.Token)
	if err != nil {
		respondError(c, h.log, "add-bank-account", err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

// GetBankAccount godoc
// @Summary  Get a payout bank account
// @Tags     organisations
// @Produce  json
// @Param    org_id           path  string  true  "Host organisation id"
// @Param    bank_account_id  path  string  true  "Gateway bank account id"
// @Success  200  {object}  entities.BankAccount
// @Failure  404  {object}  pkg.HTTPError
// @Router   /organisations/{org_id}/bank-accounts/{bank_account_id} [get]
func (h *OrganisationHandler) GetBankAccount(c *gin.Context) {
	account, err := h.usecase.GetBankAccount(c.Request.Context(), c.Param("org_id"), c.Param("bank_account_id"))
	if err != nil {
		respondError(c, h.log, "get-bank-account", err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// RemoveBankAccount godoc
// @Summary  Remove a payout bank account
// @Tags     organisations
// @Produce  json
// @Param    org_id           path  string  true  "Host organisation id"
// @Param    bank_account_id  path  string  true  "Gateway bank account id"
// @Success  200  {object}  entities.DeletedBankAccount
// @Failure  404  {object}  pkg.HTTPError
// @Router   /organisations/{org_id}/bank-accounts/{bank_account_id} [delete]
func (h *OrganisationHandler) RemoveBankAccount(c *gin.Context) {
	deleted, err := h.usecase.RemoveBankAccount(c.Request.Context(), c.Param("org_id"), c.Param("bank_account_id"))
	if err != nil {
		respondError(c, h.log, "remove-bank-account", err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

// SetDefaultBankAccount godoc
// @Summary  Set the default payout account for its currency
// @Tags     organisations
// @Accept   json
// @Produce  json
// @Param    org_id           path  string                             true   "Host organisation id"
// @Param    bank_account_id  path  string                             true   "Gateway bank account id"
// @Param    payload          body  request.DefaultBankAccountRequest  false  "Defaults to true"
// @Success  200  {object}  entities.BankAccount
// @Failure  404  {object}  pkg.HTTPError
// @Router   /organisations/{org_id}/bank-accounts/{bank_account_id}/default [patch]
func (h *OrganisationHandler) SetDefaultBankAccount(c *gin.Context) {
	var payload request.DefaultBankAccountRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondInvalid(c, h.log, "set-default-bank-account", err)
			return
		}
	}

	account, err := h.usecase.SetDefaultBankAccount(c.Request.Context(), c.Param("org_id"), c.Param("bank_account_id"), payload.Resolve())
	if err != nil {
		respondError(c, h.log, "set-default-bank-account", err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// GetVerification godoc
// @Summary  Get identity verification state
// @Tags     organisations
// @Produce  json
// @Param    org_id  path  string  true  "Host organisation id"
// @Success  200  {object}  entities.Verification
// @Failure  404  {object}  pkg.HTTPError
// @Router   /organisations/{org_id}/verification [get]
func (h *OrganisationHandler) GetVerification(c *gin.Context) {
	verification, err := h.usecase.GetVerification(c.Request.Context(), c.Param("org_id"))
	if err != nil {
		respondError(c, h.log, "get-verification", err)
		return
	}
	c.JSON(http.StatusOK, verification)
}

// SaveVerification godoc
// @Summary  Submit identity verification details
// @Tags     organisations
// @Accept   json
// @Produce  json
// @Param    org_id   path  string                       true  "Host organisation id"
// @Param    payload  body  request.VerificationRequest  true  "Representative details"
// @Success  200  {object}  entities.Verification
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /organisations/{org_id}/verification [put]
func (h *OrganisationHandler) SaveVerification(c *gin.Context) {
	var payload request.VerificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, h.log, "save-verification", err)
		return
	}

	verification, err := h.usecase.SaveVerification(c.Request.Context(), c.Param("org_id"), payload.ToDetails())
	if err != nil {
		respondError(c, h.log, "save-verification", err)
		return
	}
	c.JSON(http.StatusOK, verification)
}

// GetBalance godoc
// @Summary  Get the organisation's balance
// @Tags     organisations
// @Produce  json
// @Param    org_id  path  string  true  "Host organisation id"
// @Success  200  {object}  response.BalanceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /organisations/{org_id}/balance [get]
func (h *OrganisationHandler) GetBalance(c *gin.Context) {
	balance, err := h.usecase.GetBalance(c.Request.Context(), c.Param("org_id"))
	if err != nil {
		respondError(c, h.log, "get-balance", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBalance(balance))
}
