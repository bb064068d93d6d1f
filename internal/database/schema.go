package database

import (
	"context"
	"database/sql"
)

// Schema statements executed at startup. CREATE TABLE IF NOT EXISTS keeps
// restarts idempotent; the seat_categories index backs the per-event
// category listing.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS organizers (
		principal  VARCHAR(128) NOT NULL PRIMARY KEY,
		is_active  TINYINT(1)   NOT NULL DEFAULT 1,
		created_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS venues (
		id         BIGINT UNSIGNED NOT NULL PRIMARY KEY,
		name       VARCHAR(100)    NOT NULL,
		location   VARCHAR(100)    NOT NULL,
		capacity   BIGINT UNSIGNED NOT NULL,
		is_active  TINYINT(1)      NOT NULL DEFAULT 1,
		created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS events (
		id              BIGINT UNSIGNED NOT NULL PRIMARY KEY,
		name            VARCHAR(100)    NOT NULL,
		description     VARCHAR(500)    NOT NULL DEFAULT '',
		venue_id        BIGINT UNSIGNED NOT NULL,
		start_height    BIGINT UNSIGNED NOT NULL,
		end_height      BIGINT UNSIGNED NOT NULL,
		organizer       VARCHAR(128)    NOT NULL,
		total_seats     BIGINT UNSIGNED NOT NULL,
		available_seats BIGINT UNSIGNED NOT NULL,
		is_active       TINYINT(1)      NOT NULL DEFAULT 1,
		created_at      TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_events_venue (venue_id),
		CONSTRAINT fk_events_venue FOREIGN KEY (venue_id) REFERENCES venues (id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS seat_categories (
		id              BIGINT UNSIGNED NOT NULL PRIMARY KEY,
		event_id        BIGINT UNSIGNED NOT NULL,
		name            VARCHAR(50)     NOT NULL,
		price_cents     BIGINT UNSIGNED NOT NULL,
		total_seats     BIGINT UNSIGNED NOT NULL,
		available_seats BIGINT UNSIGNED NOT NULL,
		is_active       TINYINT(1)      NOT NULL DEFAULT 1,
		created_at      TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_seat_categories_event (event_id),
		CONSTRAINT fk_seat_categories_event FOREIGN KEY (event_id) REFERENCES events (id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS counters (
		name  VARCHAR(32)     NOT NULL PRIMARY KEY,
		value BIGINT UNSIGNED NOT NULL DEFAULT 0
	) ENGINE=InnoDB`,

	`INSERT IGNORE INTO counters (name, value) VALUES
		('venue', 0), ('event', 0), ('seat_category', 0)`,

	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		email         VARCHAR(255)    NOT NULL,
		password_hash VARCHAR(255)    NOT NULL,
		is_active     TINYINT(1)      NOT NULL DEFAULT 1,
		created_at    TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id    BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64)        NOT NULL,
		expires_at TIMESTAMP       NOT NULL,
		revoked_at TIMESTAMP       NULL DEFAULT NULL,
		created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_refresh_tokens_hash (token_hash),
		KEY idx_refresh_tokens_user (user_id)
	) ENGINE=InnoDB`,
}

// EnsureSchema creates all tables and seed rows the service needs.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
