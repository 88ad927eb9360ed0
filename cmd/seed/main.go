// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"sanhaja/internal/config"
	"sanhaja/internal/core/id"
	"sanhaja/internal/infrastructure/storage/postgres"
	"sanhaja/pkg/logger"
)

// Fixed IDs keep reruns idempotent: every insert is ON CONFLICT DO NOTHING.
var (
	agencyCasaID   = id.MustParse("019105a0-0000-7000-8000-000000000001")
	agencyRabatID  = id.MustParse("019105a0-0000-7000-8000-000000000002")
	staffCasaID    = id.MustParse("019105a0-0000-7000-8000-000000000011")
	staffRabatID   = id.MustParse("019105a0-0000-7000-8000-000000000012")
	accountantID   = id.MustParse("019105a0-0000-7000-8000-000000000013")
	clientCasaID   = id.MustParse("019105a0-0000-7000-8000-000000000021")
	clientRabatID  = id.MustParse("019105a0-0000-7000-8000-000000000022")
	supplierAirID  = id.MustParse("019105a0-0000-7000-8000-000000000031")
	supplierHtlID  = id.MustParse("019105a0-0000-7000-8000-000000000032")
	bookingCasaID  = id.MustParse("019105a0-0000-7000-8000-000000000041")
	bookingRabatID = id.MustParse("019105a0-0000-7000-8000-000000000042")
	invoiceCasaID  = id.MustParse("019105a0-0000-7000-8000-000000000051")
	invoiceRabatID = id.MustParse("019105a0-0000-7000-8000-000000000052")
	paymentCasaID  = id.MustParse("019105a0-0000-7000-8000-000000000061")
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	poolCfg := postgres.DefaultPoolConfig(cfg.DB.DSN())
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@sanhaja.local"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1`,
		adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, agency_id)
		VALUES ($1, 'System Admin', $2, $3, 'super_admin', NULL)
	`, userID, adminEmail, string(passwordHash))
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", userID)
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	log.Info("seeding demo data...")

	demoHash, err := bcrypt.GenerateFromPassword([]byte("Demo123!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	type agencySeed struct {
		id      id.ID
		name    string
		city    string
		address string
		phone   string
	}
	agencies := []agencySeed{
		{agencyCasaID, "Sanhaja Voyages Casablanca", "Casablanca", "12 Bd Zerktouni", "+212 522 000 001"},
		{agencyRabatID, "Sanhaja Voyages Rabat", "Rabat", "5 Av Mohammed V", "+212 537 000 002"},
	}
	for _, a := range agencies {
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO agencies (id, name, city, address, phone)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING
		`, a.id, a.name, a.city, a.address, a.phone)
		if err != nil {
			return fmt.Errorf("insert agency %s: %w", a.name, err)
		}
	}

	type userSeed struct {
		id     id.ID
		name   string
		email  string
		role   string
		agency *id.ID
	}
	users := []userSeed{
		{staffCasaID, "Amina Berrada", "amina@sanhaja.local", "agency_staff", &agencyCasaID},
		{staffRabatID, "Youssef Alami", "youssef@sanhaja.local", "agency_staff", &agencyRabatID},
		{accountantID, "Salma Idrissi", "salma@sanhaja.local", "general_accountant", nil},
	}
	for _, u := range users {
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO users (id, name, email, password_hash, role, agency_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING
		`, u.id, u.name, u.email, string(demoHash), u.role, u.agency)
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.email, err)
		}
	}

	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO clients (id, name, phone, cin_passport, agency_id)
		VALUES
			($1, 'Karim Tazi', '+212 661 000 001', 'BE123456', $3),
			($2, 'Nadia Fassi', '+212 661 000 002', 'AB654321', $4)
		ON CONFLICT (id) DO NOTHING
	`, clientCasaID, clientRabatID, agencyCasaID, agencyRabatID)
	if err != nil {
		return fmt.Errorf("insert clients: %w", err)
	}

	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO suppliers (id, name, type, contact, agency_id)
		VALUES
			($1, 'Royal Air Maroc', 'airline', 'agents@ram.ma', $3),
			($2, 'Hotel Atlas Medina', 'hotel', 'booking@atlasmedina.ma', $4)
		ON CONFLICT (id) DO NOTHING
	`, supplierAirID, supplierHtlID, agencyCasaID, agencyRabatID)
	if err != nil {
		return fmt.Errorf("insert suppliers: %w", err)
	}

	today := time.Now()
	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO bookings (id, ref, client_id, supplier_id, type, cost, sell_price, start_date, end_date, agency_id)
		VALUES
			($1, 'BK-000001', $3, $5, 'flight', 4500.00, 5200.00, $7, $8, $9),
			($2, 'BK-000002', $4, $6, 'hotel', 2800.00, 3400.00, $7, $8, $10)
		ON CONFLICT (id) DO NOTHING
	`, bookingCasaID, bookingRabatID,
		clientCasaID, clientRabatID,
		supplierAirID, supplierHtlID,
		today.AddDate(0, 0, 7), today.AddDate(0, 0, 14),
		agencyCasaID, agencyRabatID)
	if err != nil {
		return fmt.Errorf("insert bookings: %w", err)
	}

	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO invoices (id, invoice_no, client_id, agency_id, amount_ht, tva_rate, status, due_date)
		VALUES
			($1, 'INV-000001', $3, $5, 5200.00, 20.00, 'partial', $7),
			($2, 'INV-000001', $4, $6, 3400.00, 20.00, 'pending', $7)
		ON CONFLICT (id) DO NOTHING
	`, invoiceCasaID, invoiceRabatID,
		clientCasaID, clientRabatID,
		agencyCasaID, agencyRabatID,
		today.AddDate(0, 0, 30))
	if err != nil {
		return fmt.Errorf("insert invoices: %w", err)
	}

	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO payments (id, payment_no, invoice_id, method, amount, payment_date, agency_id)
		VALUES ($1, 'PAY-000001', $2, 'cash', 2000.00, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`, paymentCasaID, invoiceCasaID, today, agencyCasaID)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	// Keep sequence counters ahead of the hand-numbered documents above.
	for _, seed := range []struct {
		agency id.ID
		prefix string
		value  int64
	}{
		{agencyCasaID, "INV", 1},
		{agencyRabatID, "INV", 1},
		{agencyCasaID, "PAY", 1},
	} {
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO sequences (agency_id, prefix, value)
			VALUES ($1, $2, $3)
			ON CONFLICT (agency_id, prefix) DO NOTHING
		`, seed.agency, seed.prefix, seed.value)
		if err != nil {
			return fmt.Errorf("insert sequence %s: %w", seed.prefix, err)
		}
	}

	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO daily_reports (id, agency_id, report_date, income, expenses, cashbox_balance, notes, status, created_by)
		VALUES ($1, $2, $3, 2000.00, 350.00, 1650.00, 'Seeded demo report', 'pending', $4)
		ON CONFLICT (agency_id, report_date) DO NOTHING
	`, id.New(), agencyCasaID, today.AddDate(0, 0, -1), staffCasaID)
	if err != nil {
		return fmt.Errorf("insert daily report: %w", err)
	}

	log.Infow("demo data seeded",
		"agencies", len(agencies),
		"users", len(users),
	)
	return nil
}
