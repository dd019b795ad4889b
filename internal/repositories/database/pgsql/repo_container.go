package pgsql

import (
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		ClientRepo:      newPgxClientRepository(dbPool),
		StaffRepo:       newPgxStaffRepository(dbPool),
		ProductRepo:     newPgxProductRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		LedgerRepo:      newPgxLedgerRepository(dbPool),
	}
}
