package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/affiliate-dashboard-api/internal/config"
)

// Statements idempotentes de criação do schema, na ordem de dependência
var statements = []struct {
	name string
	sql  string
}{
	{
		name: "users",
		sql: `CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			lastname TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			role_id INTEGER NOT NULL DEFAULT 2,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "shopee_vendas",
		sql: `CREATE TABLE IF NOT EXISTS shopee_vendas (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			data DATE NOT NULL,
			receita NUMERIC(14,2) NOT NULL DEFAULT 0,
			sub_id TEXT,
			nome_produto TEXT,
			quantidade INTEGER NOT NULL DEFAULT 1
		)`,
	},
	{
		name: "shopee_vendas_user_data_idx",
		sql:  `CREATE INDEX IF NOT EXISTS shopee_vendas_user_data_idx ON shopee_vendas (user_id, data)`,
	},
	{
		name: "relatorios",
		sql: `CREATE TABLE IF NOT EXISTS relatorios (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			sub_id TEXT NOT NULL,
			data DATE NOT NULL,
			receita_total NUMERIC(14,2) NOT NULL DEFAULT 0,
			gasto_total NUMERIC(14,2) NOT NULL DEFAULT 0,
			lucro NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, sub_id, data)
		)`,
	},
	{
		name: "gastos",
		sql: `CREATE TABLE IF NOT EXISTS gastos (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			relatorio_id INTEGER REFERENCES relatorios(id),
			descricao TEXT NOT NULL,
			valor NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "relatorios_semanais",
		sql: `CREATE TABLE IF NOT EXISTS relatorios_semanais (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			data_inicio DATE NOT NULL,
			data_fim DATE NOT NULL,
			receita_total NUMERIC(14,2) NOT NULL DEFAULT 0,
			lucro_total NUMERIC(14,2) NOT NULL DEFAULT 0
		)`,
	},
	{
		name: "relatorios_mensais",
		sql: `CREATE TABLE IF NOT EXISTS relatorios_mensais (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			mes TEXT NOT NULL,
			receita_total NUMERIC(14,2) NOT NULL DEFAULT 0,
			lucro_total NUMERIC(14,2) NOT NULL DEFAULT 0
		)`,
	},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt.sql); err != nil {
			logrus.WithError(err).WithField("statement", stmt.name).Fatal("Erro ao executar migração")
		}
		logrus.WithField("statement", stmt.name).Info("Migração aplicada")
	}

	logrus.Info("Schema criado com sucesso")
}
