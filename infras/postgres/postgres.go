package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"rooming/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write connection: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read connection: %w", err)
	}

	return nil
}

// New opens the read and write pools. With DB_POSTGRES_URL set both pools share that database.
func New(config *config.Config) *Connection {
	return &Connection{
		Read:  connect(config, "read", ReadDSN(config)),
		Write: connect(config, "write", WriteDSN(config)),
	}
}

// WriteDSN is also used by the migration runner.
func WriteDSN(config *config.Config) string {
	if config.DB.Postgres.URL != "" {
		return config.DB.Postgres.URL
	}

	write := config.DB.Postgres.Write

	return buildDSN(write.Username, write.Password, write.Host, write.Port, dbName(config, write.Name), write.SSLMode)
}

func ReadDSN(config *config.Config) string {
	if config.DB.Postgres.URL != "" {
		return config.DB.Postgres.URL
	}

	read := config.DB.Postgres.Read

	return buildDSN(read.Username, read.Password, read.Host, read.Port, dbName(config, read.Name), read.SSLMode)
}

func dbName(config *config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

// buildDSN escapes credentials so passwords with reserved characters survive.
func buildDSN(username, password, host, port, name, sslMode string) string {
	dsn := url.URL{
		Scheme: driverName,
		User:   url.UserPassword(username, password),
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + name,
	}

	if sslMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {sslMode}}.Encode()
	}

	return dsn.String()
}

func connect(config *config.Config, name, dsn string) *sqlx.DB {
	pg := config.DB.Postgres
	attempts := max(1, pg.MaxRetry)

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)

			log.Info().Str("name", name).Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", name).
			Int("attempt", attempt).
			Int("of", attempts).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Int("attempts", attempts).Msg("Giving up connecting to database")

	return nil
}
