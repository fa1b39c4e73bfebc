package cmd

import (
	"log/slog"

	"parceltrack/internal/adapters/out/authority"
	"parceltrack/internal/adapters/out/tokenfile"
	"parceltrack/internal/core/application/directory"
	"parceltrack/internal/core/application/lifecycle"
	"parceltrack/internal/core/application/permission"
	"parceltrack/internal/core/application/session"
	"parceltrack/internal/core/ports"
)

// ClientRoot wires the client components around one Session Store. Every remote
// call goes through the same transport and its central 401/403 handling.
type ClientRoot struct {
	Session     *session.Store
	Permissions *permission.Oracle
	Packages    *lifecycle.Controller
	Ledger      *lifecycle.Ledger
	Directory   *directory.Service
}

func NewClientRoot(cfg ClientConfig, prompter ports.ReauthPrompter, logger *slog.Logger) (*ClientRoot, error) {
	transport, err := authority.NewTransport(cfg.BaseURL, cfg.Timeout, logger)
	if err != nil {
		return nil, err
	}

	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		if tokenPath, err = tokenfile.DefaultPath(); err != nil {
			return nil, err
		}
	}
	storage, err := tokenfile.NewStore(tokenPath)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(authority.NewAuthGateway(transport), storage, prompter, logger)
	client := authority.NewClient(transport, store)
	ledger := lifecycle.NewLedger(client)

	return &ClientRoot{
		Session:     store,
		Permissions: permission.NewOracle(client, store, logger),
		Packages:    lifecycle.NewController(client, ledger, logger),
		Ledger:      ledger,
		Directory:   directory.NewService(client, logger),
	}, nil
}
