package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de migração...")
}

func createTables(ctx context.Context, conn *postgres.Connection) error {
	logrus.Info("Aplicando migrações das tabelas profiles e kpi_goals...")
	return postgres.Migrate(ctx, conn.DB)
}

func upsertProfileQuery(p seedProfile) (string, []any, error) {
	return squirrel.
		Insert("profiles").
		Columns("people_id", "kpi_control", "dashboard_order_control").
		Values(p.PeopleID, p.KPIEnabled, p.OrderManagementEnabled).
		Suffix("ON CONFLICT (people_id) DO UPDATE SET kpi_control = EXCLUDED.kpi_control, " +
			"dashboard_order_control = EXCLUDED.dashboard_order_control, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func insertProfiles(ctx context.Context, conn postgres.Conn, profiles []seedProfile) {
	logrus.Infof("Iniciando inserção de %d perfis...", len(profiles))
	startTime := time.Now()

	successCount := 0
	goalCount := 0
	errorCount := 0

	for i, p := range profiles {
		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			query, args, err := upsertProfileQuery(p)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return err
			}

			goals := repository.NewProfileRepository(tx)
			for j := range p.Goals {
				if err := goals.SaveGoal(ctx, &p.Goals[j]); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			logrus.Errorf("ERRO ao inserir perfil [%d/%d] %s: %v", i+1, len(profiles), p.PeopleID, err)
			errorCount++
			continue
		}

		successCount++
		goalCount += len(p.Goals)
		if i > 0 && i%10 == 0 {
			logrus.Infof("Progresso: %d/%d perfis processados", i+1, len(profiles))
		}
	}

	logrus.Infof("Inserção concluída em %v. Perfis: %d, Metas: %d, Erros: %d",
		time.Since(startTime), successCount, goalCount, errorCount)
}

var (
	rootCmd = &cobra.Command{
		Use:   "seed",
		Short: "Cria as tabelas do painel e carrega perfis e metas",
		RunE:  runSeed,
	}

	tablesCmd = &cobra.Command{
		Use:   "tables",
		Short: "Aplica apenas as migrações das tabelas profiles e kpi_goals",
		RunE:  runTables,
	}

	inputPath string
)

func main() {
	setupLogger()

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "arquivo JSON exportado da coleção peoples")
	_ = rootCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(tablesCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Falha na migração")
		os.Exit(1)
	}
}

func connect(ctx context.Context) (*postgres.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
	}
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	return conn, nil
}

func runTables(cmd *cobra.Command, _ []string) error {
	conn, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer conn.Close()

	return createTables(cmd.Context(), conn)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("erro ao ler arquivo %s: %w", inputPath, err)
	}

	profiles, err := parsePeoples(content)
	if err != nil {
		return fmt.Errorf("erro ao interpretar arquivo %s: %w", inputPath, err)
	}
	logrus.Infof("Total de %d perfis definidos para inserção", len(profiles))

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	conn, err := connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := createTables(ctx, conn); err != nil {
		return err
	}

	insertProfiles(ctx, conn, profiles)
	logrus.Info("Carga inicial concluída!")
	return nil
}
