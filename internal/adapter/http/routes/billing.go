package routes

import (
	"financier/internal/adapter/http/handlers"
	"financier/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	PathCustomers     = "/customers"
	PathOrganisations = "/organisations"
	PathPlans         = "/plans"
	PathSubscriptions = "/subscriptions"
	PathTokens        = "/tokens"
)

func addBillingRoutes(rg *gin.RouterGroup, uc usecase.IBillingUseCase, log logrus.FieldLogger, withTokens bool) {
	customerHandler := handlers.NewCustomerHandler(uc, log)
	organisationHandler := handlers.NewOrganisationHandler(uc, log)
	membershipHandler := handlers.NewMembershipHandler(uc, log)

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.RegisterCustomer)
		customers.GET("/:user_id", customerHandler.GetCustomer)
		customers.PUT("/:user_id", customerHandler.UpdateCustomer)
		customers.GET("/:user_id/payment-methods", customerHandler.GetPaymentMethods)
		customers.POST("/:user_id/payment-methods", customerHandler.SetDefaultPaymentMethod)
		customers.DELETE("/:user_id/payment-methods/:method_id", customerHandler.RemovePaymentMethod)
		customers.GET("/:user_id/invoices", customerHandler.GetInvoices)
	}

	organisations := rg.Group(PathOrganisations)
	{
		organisations.POST("", organisationHandler.RegisterOrganisation)
		organisations.GET("/:org_id", organisationHandler.GetOrganisation)
		organisations.PUT("/:org_id", organisationHandler.UpdateOrganisation)
		organisations.GET("/:org_id/bank-accounts", organisationHandler.ListBankAccounts)
		organisations.POST("/:org_id/bank-accounts", organisationHandler.AddBankAccount)
		organisations.GET("/:org_id/bank-accounts/:bank_account_id", organisationHandler.GetBankAccount)
		organisations.DELETE("/:org_id/bank-accounts/:bank_account_id", organisationHandler.RemoveBankAccount)
		organisations.PATCH("/:org_id/bank-accounts/:bank_account_id/default", organisationHandler.SetDefaultBankAccount)
		organisations.GET("/:org_id/verification", organisationHandler.GetVerification)
		organisations.PUT("/:org_id/verification", organisationHandler.SaveVerification)
		organisations.GET("/:org_id/balance", organisationHandler.GetBalance)
	}

	plans := rg.Group(PathPlans)
	{
		plans.POST("", membershipHandler.CreatePlan)
		plans.DELETE("/:plan_id", membershipHandler.DeletePlan)
	}

	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.POST("", membershipHandler.Subscribe)
		subscriptions.DELETE("/:subscription_id", membershipHandler.StopSubscription)
	}

	// Test tokens are only issued by the in-memory gateway.
	if withTokens {
		rg.POST(PathTokens, handlers.NewTokenHandler(uc, log).CreateToken)
	}
}
