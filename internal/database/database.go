package database

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/config"
	"fyyur/internal/models"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is the shared gorm handle plus the query timeout repositories use.
type Database struct {
	*gorm.DB
	config config.DatabaseConfig
}

func New(db *gorm.DB, cfg config.DatabaseConfig) *Database {
	return &Database{DB: db, config: cfg}
}

// Connect opens the booking database, sizes the pool, migrates the schema and
// rewrites any malformed genre rows.
func Connect(cfg *config.Config, log *logrus.Logger) (*Database, error) {
	zone := cfg.BookingZone()

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		NowFunc:     func() time.Time { return time.Now().In(zone) },
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s@%s: %w", cfg.Database.DBName, cfg.Database.Host, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	pool := cfg.Database
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	d := New(db, pool)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.HealthCheck(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.WithFields(logrus.Fields{
		"host":     pool.Host,
		"database": pool.DBName,
	}).Info("Database connection established")

	// Venues and artists first so the show foreign keys resolve.
	if err := db.AutoMigrate(&models.Venue{}, &models.Artist{}, &models.Show{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	for _, table := range []string{"venues", "artists"} {
		n, err := d.RepairGenreRows(context.Background(), table)
		if err != nil {
			log.WithError(err).WithField("table", table).Warn("Genre repair failed")
			continue
		}
		if n > 0 {
			log.WithFields(logrus.Fields{"table": table, "rows": n}).Info("Repaired malformed genres")
		}
	}

	return d, nil
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

// HealthCheck pings the server, bounded by ctx and at most three seconds.
func (d *Database) HealthCheck(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// genreRow reads the column as a plain array, bypassing the read-side repair
// in models.Genres.
type genreRow struct {
	ID     uint
	Genres pq.StringArray `gorm:"column:genres;type:text[]"`
}

// RepairGenreRows rewrites rows of table whose genres were stored as a single
// brace-delimited string or exploded into characters. It returns the number of
// rows rewritten.
func (d *Database) RepairGenreRows(ctx context.Context, table string) (int, error) {
	var rows []genreRow
	if err := d.WithContext(ctx).Table(table).Select("id", "genres").Order("id").Find(&rows).Error; err != nil {
		return 0, fmt.Errorf("read %s genres: %w", table, err)
	}

	repaired := 0
	for _, row := range rows {
		fixed := models.Genres(models.RepairGenres(row.Genres))
		if equalGenres(fixed, row.Genres) {
			continue
		}
		err := d.WithContext(ctx).Table(table).Where("id = ?", row.ID).Update("genres", fixed).Error
		if err != nil {
			return repaired, fmt.Errorf("rewrite %s %d genres: %w", table, row.ID, err)
		}
		repaired++
	}
	return repaired, nil
}

func equalGenres(a models.Genres, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
