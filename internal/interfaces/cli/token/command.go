package token

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/niggl1/appsindico/internal/infrastructure/auth"
	"github.com/niggl1/appsindico/internal/infrastructure/config"
	"github.com/niggl1/appsindico/internal/shared/authorization"
)

type options struct {
	env      string
	userID   uint
	tenantID uint
	name     string
	role     string
}

// NewCommand mints a staff access token signed with the configured secret.
// Production tokens come from the identity provider.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a staff access token for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.env)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)
			return issue(jwtSvc, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().UintVar(&opts.userID, "user-id", 1, "Staff user ID")
	cmd.Flags().UintVar(&opts.tenantID, "tenant-id", 1, "Condominium (tenant) ID")
	cmd.Flags().StringVar(&opts.name, "name", "Síndico", "Display name recorded as ticket author")
	cmd.Flags().StringVar(&opts.role, "role", authorization.RoleManager.String(), "Role: manager, staff or viewer")

	return cmd
}

func issue(jwtSvc *auth.JWTService, out io.Writer, opts *options) error {
	role := authorization.UserRole(opts.role)
	if !role.IsValid() {
		return fmt.Errorf("invalid role %q", opts.role)
	}
	if opts.userID == 0 || opts.tenantID == 0 {
		return fmt.Errorf("user-id and tenant-id must be positive")
	}

	signed, exp, err := jwtSvc.Generate(authorization.Staff{
		UserID:   opts.userID,
		TenantID: opts.tenantID,
		Name:     opts.name,
		Role:     role,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, signed)
	fmt.Fprintf(out, "# expires at %s\n", exp.UTC().Format(time.RFC3339))
	return nil
}
