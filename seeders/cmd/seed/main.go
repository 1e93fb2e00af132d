package main

import (
	"context"
	"flag"
	"log"

	"admin-console/pkg/config"
	"admin-console/pkg/database/postgresql"
	applogger "admin-console/pkg/logger"
	"admin-console/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runPermissions := flag.Bool("permissions", false, "Наполнить справочник прав")
	runRoles := flag.Bool("roles", false, "Создать роли, связи с правами и администратора")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -permissions -roles)")
	adminName := flag.String("admin-name", "Администратор", "Имя администратора")
	adminEmail := flag.String("admin-email", "", "Email администратора (пусто - не создавать)")
	adminPassword := flag.String("admin-password", "", "Пароль администратора")
	flag.Parse()

	if !*runPermissions && !*runRoles && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -permissions")
		log.Println("  go run ./seeders/cmd/seed -all -admin-email admin@example.com -admin-password secret-pass")
		return
	}
	if *adminEmail != "" && len(*adminPassword) < 6 {
		log.Fatal("❌ -admin-password: не короче 6 символов")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации: %v", err)
	}
	logger, err := applogger.NewLogger(cfg.Log.Level, []string{"stdout"})
	if err != nil {
		log.Fatalf("❌ Ошибка логгера: %v", err)
	}

	ctx := context.Background()
	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer dbPool.Close()

	if err := postgresql.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("❌ Ошибка миграций: %v", err)
	}
	log.Println("======================================================")

	if *runAll || *runPermissions {
		if err := seeders.SeedPermissions(ctx, dbPool); err != nil {
			log.Fatalf("❌ Ошибка наполнения прав: %v", err)
		}
		log.Println("======================================================")
	}

	if *runAll || *runRoles {
		admin := seeders.AdminSeed{Name: *adminName, Email: *adminEmail, Password: *adminPassword}
		if err := seeders.SeedRolesAndAdmin(ctx, dbPool, admin); err != nil {
			log.Fatalf("❌ Ошибка настройки ролей: %v", err)
		}
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
}
