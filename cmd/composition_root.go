package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/security"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/jobs"
)

// CompositionRoot wires the authority server.
type CompositionRoot struct {
	cfg        AuthorityConfig
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     services.CapabilityPolicy
	issuer     *security.JWTIssuer
	hasher     *security.BcryptHasher
	logger     *slog.Logger
	now        func() time.Time
}

func NewCompositionRoot(cfg AuthorityConfig, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	issuer, err := security.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewCapabilityPolicy(),
		issuer:     issuer,
		hasher:     security.NewBcryptHasher(cfg.BcryptCost),
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) directoryUoWFactory() commands.DirectoryUoWFactory {
	return FuncDirectoryUoWFactory(func() commands.DirectoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accountUoWFactory(), c.hasher, c.issuer)
}

func (c *CompositionRoot) CreateEnsureAccountCommandHandler() commands.EnsureAccountCommandHandler {
	return commands.NewEnsureAccountCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	return commands.NewCreatePackageCommandHandler(c.packageUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateAppendTrackCommandHandler() commands.AppendTrackCommandHandler {
	return commands.NewAppendTrackCommandHandler(c.packageUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	return commands.NewCreateLocationCommandHandler(c.directoryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteLocationCommandHandler() commands.DeleteLocationCommandHandler {
	return commands.NewDeleteLocationCommandHandler(c.directoryUoWFactory())
}

func (c *CompositionRoot) CreateCreateCenterCommandHandler() commands.CreateCenterCommandHandler {
	return commands.NewCreateCenterCommandHandler(c.directoryUoWFactory())
}

func (c *CompositionRoot) CreateGetIdentityQueryHandler() queries.GetIdentityQueryHandler {
	return queries.NewGetIdentityQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateCheckPermissionQueryHandler() queries.CheckPermissionQueryHandler {
	return queries.NewCheckPermissionQueryHandler(c.policy)
}

func (c *CompositionRoot) CreateGetPackagesQueryHandler() queries.GetPackagesQueryHandler {
	return queries.NewGetPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingDetailsQueryHandler() queries.GetTrackingDetailsQueryHandler {
	return queries.NewGetTrackingDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDirectoryQueryHandler() queries.GetDirectoryQueryHandler {
	return queries.NewGetDirectoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuditProjectionsQueryHandler() queries.AuditProjectionsQueryHandler {
	return queries.NewAuditProjectionsQueryHandler(c.gormDB, services.NewProjectionAuditor())
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		Login:           c.CreateLoginCommandHandler(),
		CreatePackage:   c.CreateCreatePackageCommandHandler(),
		AppendTrack:     c.CreateAppendTrackCommandHandler(),
		CreateLocation:  c.CreateCreateLocationCommandHandler(),
		DeleteLocation:  c.CreateDeleteLocationCommandHandler(),
		CreateCenter:    c.CreateCreateCenterCommandHandler(),
		Identity:        c.CreateGetIdentityQueryHandler(),
		CheckPermission: c.CreateCheckPermissionQueryHandler(),
		Packages:        c.CreateGetPackagesQueryHandler(),
		Tracking:        c.CreateGetTrackingDetailsQueryHandler(),
		Directory:       c.CreateGetDirectoryQueryHandler(),
	})
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	auth := httpadapter.NewAuthenticator(c.issuer, c.policy)
	return httpadapter.NewRouter(ctx, c.CreateServer(), auth, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	auditor := c.CreateAuditProjectionsQueryHandler()
	return jobs.NewJobManager(&auditor, c.cfg.ProjectionAuditSchedule, c.logger)
}

// Bootstrap migrates the schema, provisions the bootstrap administrator and, when
// enabled, seeds the demo directory and accounts.
func (c *CompositionRoot) Bootstrap(ctx context.Context) error {
	if err := postgres.Migrate(c.gormDB.WithContext(ctx)); err != nil {
		return err
	}

	if c.cfg.AdminPassword == "" {
		c.logger.WarnContext(ctx, "BOOTSTRAP_ADMIN_PASSWORD is empty, no administrator is provisioned")
	} else if err := c.ensureAccount(ctx, c.cfg.AdminUsername, c.cfg.AdminEmail, c.cfg.AdminPassword,
		identity.RoleAdmin); err != nil {
		return err
	}

	if !c.cfg.SeedDemo {
		return nil
	}
	if err := postgres.SeedDirectory(ctx, c.gormDB, c.now()); err != nil {
		return err
	}
	if err := c.ensureAccount(ctx, "staff", "staff@example.com", c.cfg.DemoPassword, identity.RoleStaff); err != nil {
		return err
	}
	return c.ensureAccount(ctx, "customer", "customer@example.com", c.cfg.DemoPassword, identity.RoleCustomer)
}

func (c *CompositionRoot) ensureAccount(ctx context.Context, username, email, password string, role identity.Role) error {
	cmd, err := commands.NewEnsureAccountCommand(username, email, password, role)
	if err != nil {
		return err
	}

	handler := c.CreateEnsureAccountCommandHandler()
	id, created, err := handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if created {
		c.logger.InfoContext(ctx, "account provisioned", "username", username, "role", role.String(), "id", id.Int64())
	}
	return nil
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncDirectoryUoWFactory func() commands.DirectoryUoW

func (f FuncDirectoryUoWFactory) Create() commands.DirectoryUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
