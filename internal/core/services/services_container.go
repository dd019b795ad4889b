package services

import (
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/platform/config"
)

// NewServiceContainer wires up all application services with their
// repository dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	ledgerService := NewLedgerService(repos.LedgerRepo)
	userService := NewUserService(repos.UserRepo)

	return &portssvc.ServiceContainer{
		User:               userService,
		Client:             NewClientService(repos.ClientRepo),
		Staff:              NewStaffService(repos.StaffRepo, ledgerService),
		Product:            NewProductService(repos.ProductRepo),
		Transaction:        NewTransactionService(repos.TransactionRepo, ledgerService),
		Ledger:             ledgerService,
		Invoice:            NewInvoiceService(repos.TransactionRepo, repos.ClientRepo, cfg.Company),
		TokenService:       NewTokenService(cfg, userService),
		GoogleOAuthHandler: NewGoogleOAuthHandlerService(cfg),
	}
}
