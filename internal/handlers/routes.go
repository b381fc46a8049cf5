package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
)

// Services bundles the service facades the HTTP layer depends on.
type Services struct {
	Transactions portssvc.TransactionSvcFacade
	Posting      portssvc.PostingSvcFacade
	Giro         portssvc.GiroSvcFacade
	Approvals    portssvc.ApprovalSvcFacade
	Balances     portssvc.BalanceSvcFacade
	Journals     portssvc.JournalSvcFacade
	Directory    portssvc.AccountDirectory
}

// RegisterAPIRoutes mounts every API route group on the given (already
// authenticated) router group.
func RegisterAPIRoutes(group *gin.RouterGroup, svcs Services) {
	registerTransactionRoutes(group, svcs.Transactions, svcs.Posting)
	registerGiroRoutes(group, svcs.Giro)
	registerApprovalRoutes(group, svcs.Approvals)
	registerJournalRoutes(group, svcs.Journals)
	registerAccountRoutes(group, svcs.Directory)
	registerBankAccountRoutes(group, svcs.Balances)
}
