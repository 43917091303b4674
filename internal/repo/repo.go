package repo

import (
	"github.com/GlebRadaev/gigmart/internal/memstore"
	"github.com/GlebRadaev/gigmart/internal/pg"
	applicationrepo "github.com/GlebRadaev/gigmart/internal/repo/application-repo"
	entryrepo "github.com/GlebRadaev/gigmart/internal/repo/entry-repo"
	gigrepo "github.com/GlebRadaev/gigmart/internal/repo/gig-repo"
	ledgerrepo "github.com/GlebRadaev/gigmart/internal/repo/ledger-repo"
	userrepo "github.com/GlebRadaev/gigmart/internal/repo/user-repo"
	"github.com/GlebRadaev/gigmart/internal/service/assignservice"
	"github.com/GlebRadaev/gigmart/internal/service/authservice"
	"github.com/GlebRadaev/gigmart/internal/service/ledgerservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	GigRepo         assignservice.GigRepo
	ApplicationRepo assignservice.ApplicationRepo
	LedgerRepo      ledgerservice.LedgerRepo
	EntryRepo       ledgerservice.EntryRepo
	TxManager       pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		GigRepo:         gigrepo.New(conn),
		ApplicationRepo: applicationrepo.New(conn),
		LedgerRepo:      ledgerrepo.New(conn),
		EntryRepo:       entryrepo.New(conn),
		TxManager:       txManager,
	}
}

// NewInMemory backs every repository with one store so they share its locks and transactions.
func NewInMemory(store *memstore.Store) *Repositories {
	return &Repositories{
		UserRepo:        store.Users(),
		GigRepo:         store,
		ApplicationRepo: store,
		LedgerRepo:      store,
		EntryRepo:       store,
		TxManager:       store,
	}
}
