package services

// ServiceContainer bundles all service facades for route registration.
type ServiceContainer struct {
	User               UserSvcFacade
	Client             ClientSvcFacade
	Staff              StaffSvcFacade
	Product            ProductSvcFacade
	Transaction        TransactionSvcFacade
	Ledger             LedgerSvcFacade
	Invoice            InvoiceSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
