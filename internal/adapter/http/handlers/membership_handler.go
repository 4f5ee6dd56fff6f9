package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "financier/internal/adapter/http/dto/request"
	response "financier/internal/adapter/http/dto/response"
	"financier/internal/domain/entities"
	"financier/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MembershipHandler exposes membership plans and subscriptions.
type MembershipHandler struct {
	usecase usecase.IBillingUseCase
	log     logrus.FieldLogger
}

func NewMembershipHandler(uc usecase.IBillingUseCase, log logrus.FieldLogger) *MembershipHandler {
	return &MembershipHandler{usecase: uc, log: log.WithField("component", "billing.handler.membership")}
}

// CreatePlan godoc
// @Summary  Create a membership plan
// @Tags     memberships
// @Accept   json
// @Produce  json
// @Param    X-Organisation-Account  header  string               false  "Organisation offering the plan"
// @Param    payload                 body    request.PlanRequest  true   "Plan"
// @Success  201  {object}  response.MembershipPlanResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /plans [post]
func (h *MembershipHandler) CreatePlan(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, h.log, "create-plan", err)
		return
	}
	plan, err := payload.ToMembershipType()
	if err != nil {
		respondInvalid(c, h.log, "create-plan", err)
		return
	}

	created, err := h.usecase.CreatePlan(c.Request.Context(), organisationScope(c), plan)
	if err != nil {
		respondError(c, h.log, "create-plan", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMembershipPlan(created))
}

// DeletePlan godoc
// @Summary      Deactivate a membership plan
// @Description  Plans are never removed; the returned plan is inactive.
// @Tags         memberships
// @Produce      json
// @Param        X-Organisation-Account  header  string  false  "Organisation offering the plan"
// @Param        plan_id                 path    string  true   "Gateway plan id"
// @Success      200  {object}  response.MembershipPlanResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /plans/{plan_id} [delete]
func (h *MembershipHandler) DeletePlan(c *gin.Context) {
	plan, err := h.usecase.DeletePlan(c.Request.Context(), organisationScope(c), c.Param("plan_id"))
	if err != nil {
		respondError(c, h.log, "delete-plan", err)
		return
	}
	c.JSON(http.StatusOK, response.FromMembershipPlan(plan))
}

// Subscribe godoc
// @Summary      Subscribe a customer to a plan
// @Description  Runs in the scope the customer was registered under.
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Param        payload  body  request.SubscriptionRequest  true  "Subscription"
// @Success      201  {object}  entities.Subscription
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /subscriptions [post]
func (h *MembershipHandler) Subscribe(c *gin.Context) {
	var payload request.SubscriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, h.log, "subscribe", err)
		return
	}

	subscription, err := h.usecase.Subscribe(c.Request.Context(), payload.UserID, payload.ToMembershipType())
	if err != nil {
		respondError(c, h.log, "subscribe", err)
		return
	}
	c.JSON(http.StatusCreated, subscription)
}

// StopSubscription godoc
// @Summary  Stop a subscription
// @Tags     memberships
// @Produce  json
// @Param    X-Organisation-Account  header  string  false  "Organisation owning the subscription"
// @Param    subscription_id         path    string  true   "Gateway subscription id"
// @Param    at_period_end           query   bool    false  "Cancel at period end (default true)"
// @Success  200  {object}  entities.Subscription
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /subscriptions/{subscription_id} [delete]
func (h *MembershipHandler) StopSubscription(c *gin.Context) {
	atPeriodEnd := true
	if raw, ok := c.GetQuery("at_period_end"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respondInvalid(c, h.log, "stop-subscription", err)
			return
		}
		atPeriodEnd = v
	}

	subscription, err := h.usecase.StopSubscription(c.Request.Context(), organisationScope(c), c.Param("subscription_id"), atPeriodEnd)
	if err != nil {
		respondError(c, h.log, "stop-subscription", err)
		return
	}
	c.JSON(http.StatusOK, subscription)
}

// TokenHandler issues test tokens. It is only routed when the in-memory
// gateway is active.
type TokenHandler struct {
	usecase usecase.IBillingUseCase
	log     logrus.FieldLogger
}

func NewTokenHandler(uc usecase.IBillingUseCase, log logrus.FieldLogger) *TokenHandler {
	return &TokenHandler{usecase: uc, log: log.WithField("component", "billing.handler.token")}
}

var errTokenDetails = errors.New("token details must contain exactly one of card or bank_account")

// CreateToken godoc
// @Summary      Create a test token
// @Description  Body holds exactly one of "card" or "bank_account". Not for production money movement.
// @Tags         tokens
// @Accept       json
// @Produce      json
// @Param        X-Organisation-Account  header  string          false  "Organisation the token is for"
// @Param        payload                 body    map[string]any  true   "Token details"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  pkg.HTTPError
// @Router       /tokens [post]
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var details entities.TokenDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		respondInvalid(c, h.log, "create-token", err)
		return
	}
	if _, ok := details.Type(); !ok {
		respondInvalid(c, h.log, "create-token", errTokenDetails)
		return
	}

	token, err := h.usecase.CreateToken(c.Request.Context(), organisationScope(c), details)
	if err != nil {
		respondError(c, h.log, "create-token", err)
		return
	}
	c.JSON(http.StatusCreated, token)
}
