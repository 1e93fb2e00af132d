package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd собирает дерево команд. Вынесено в функцию, чтобы тесты получали свежие флаги.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "accessctl",
		Short: "Просмотр и проверка таблицы прав консоли",
		Long: `accessctl работает со статической таблицей прав и меню консоли без запуска сервера.

Команды:
  routes   Таблица путей и требуемых прав
  audit    Пункты меню и страницы без записи в таблице прав
  check    Пройдёт ли набор прав на указанный путь`,
		SilenceUsage: true,
	}
	root.AddCommand(newRoutesCmd(), newAuditCmd(), newCheckCmd())
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
