package postgresql

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tsel-ticketmaster/tm-availability/config"
)

var (
	db   *sql.DB
	once sync.Once
)

// GetDatabase returns the shared connection pool. Connectivity problems
// surface on the first query, not here; main pings once on boot.
func GetDatabase() *sql.DB {
	once.Do(func() {
		c := config.Get()

		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.PostgreSQL.Host, c.PostgreSQL.Port, c.PostgreSQL.User,
			c.PostgreSQL.Password, c.PostgreSQL.Database, c.PostgreSQL.SSLMode,
		)

		var err error
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			log.Fatalf("postgresql: %v", err)
		}

		db.SetMaxOpenConns(c.PostgreSQL.MaxOpenConns)
		db.SetMaxIdleConns(c.PostgreSQL.MaxIdleConns)
		db.SetConnMaxLifetime(c.PostgreSQL.MaxLifetime)
	})

	return db
}
