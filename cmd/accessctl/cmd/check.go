package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"admin-console/internal/authz"
)

func newCheckCmd() *cobra.Command {
	var (
		path              string
		perms             []string
		required          []string
		all               bool
		allowUnclassified bool
	)

	c := &cobra.Command{
		Use:   "check",
		Short: "Проверить доступ набора прав к пути",
		Example: `  accessctl check --path /admin/users/user-details/99 --perm can_view_users
  accessctl check --path /admin/system/roles --perm can_view_roles --all
  accessctl check --perm can_view_users --require can_view_users,can_view_roles --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			checker := authz.NewChecker(perms, authz.AllowUnclassified(allowUnclassified))
			hasAll := (*authz.Checker).HasAllPermissions
			out := cmd.OutOrStdout()

			switch {
			case path != "":
				res := checker.Table().Resolve(path)
				allowed := checker.Allows(res)
				if all && res.Classification == authz.ClassRestricted {
					allowed = hasAll(checker, res.Requirement.Permissions)
				}
				fmt.Fprintf(out, "path=%s\npattern=%s\nclass=%s\nrequired=%s\nallowed=%t\n",
					path, res.Pattern, res.Classification,
					strings.Join(res.Requirement.Permissions, ","), allowed)
			case len(required) > 0:
				allowed := checker.HasAnyPermission(required)
				if all {
					allowed = hasAll(checker, required)
				}
				fmt.Fprintf(out, "required=%s\nallowed=%t\n", strings.Join(required, ","), allowed)
			default:
				return errors.New("нужен --path или --require")
			}
			return nil
		},
	}
	c.Flags().StringVarP(&path, "path", "p", "", "Путь страницы, например /admin/system/roles")
	c.Flags().StringSliceVar(&perms, "perm", nil, "Права оператора через запятую")
	c.Flags().StringSliceVar(&required, "require", nil, "Без --path: требуемые права через запятую")
	c.Flags().BoolVar(&all, "all", false, "Требовать все права, а не хотя бы одно")
	c.Flags().BoolVar(&allowUnclassified, "allow-unclassified", false, "Пускать на пути без записи в таблице")
	return c
}
