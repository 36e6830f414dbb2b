package services

import (
	portsrepo "github.com/corralonapp/cuentas_backend/internal/core/ports/repositories"
	portssvc "github.com/corralonapp/cuentas_backend/internal/core/ports/services"
)

// NewServiceContainer wires the repositories into the application services.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, ledgerOptions ...LedgerServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.Account),
		Ledger:  NewLedgerService(repos.Account, repos.LedgerEvent, ledgerOptions...),
	}
}
