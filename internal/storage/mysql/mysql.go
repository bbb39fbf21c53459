package mysql

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/danilocardosoweb/ControleUsinagem/internal/config"
	"github.com/danilocardosoweb/ControleUsinagem/internal/datas"
)

type Storage struct {
	db *sql.DB
}

func New(cfg config.Config) (*Storage, error) {
	const op = "storage.mysql.New"

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=false&charset=utf8mb4",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// As coleções de apontamento vêm de importações heterogêneas (planilhas,
// integrações antigas), então as colunas numéricas e de data são lidas como
// texto e convertidas de forma tolerante: número inválido vira zero, data
// inválida vira nil. Nenhuma linha é descartada por campo malformado.

func texto(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return strings.TrimSpace(v.String)
}

func numero(v sql.NullString) float64 {
	s := texto(v)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

func numeroOpcional(v sql.NullString) *float64 {
	if texto(v) == "" {
		return nil
	}
	n := numero(v)
	return &n
}

func data(v sql.NullString) *time.Time {
	return datas.Parse(texto(v))
}
