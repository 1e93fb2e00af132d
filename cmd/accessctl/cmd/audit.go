package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"admin-console/internal/authz"
	"admin-console/internal/navigation"
)

func newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Найти страницы без записи в таблице прав",
		Long: `audit проходит по всем страницам консоли (пункты меню и карточки)
и ищет те, для которых в таблице прав нет ни точной записи, ни шаблона.
Если такие есть, команда завершается с ошибкой.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return audit(cmd, navigation.DefaultTree, authz.DefaultTable)
		},
	}
}

func audit(cmd *cobra.Command, tree []navigation.Node, table *authz.Table) error {
	pages := navigation.Pages(tree)
	missing := navigation.Unclassified(pages, table)
	if len(missing) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d страниц, все в таблице прав\n", len(pages))
		return nil
	}

	for _, p := range missing {
		fmt.Fprintf(cmd.ErrOrStderr(), "нет в таблице прав: %s (%s)\n", p.Pattern, p.Title)
	}
	return fmt.Errorf("страниц без записи в таблице прав: %d", len(missing))
}
