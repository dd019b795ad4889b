package repositories

// RepositoryProvider bundles all repository implementations so the service
// layer can be wired from a single value.
type RepositoryProvider struct {
	UserRepo        UserRepository
	ClientRepo      ClientRepository
	StaffRepo       StaffRepository
	ProductRepo     ProductRepository
	TransactionRepo TransactionRepository
	LedgerRepo      LedgerRepository
}
