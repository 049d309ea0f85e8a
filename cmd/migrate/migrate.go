package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"ads-admin-backend/internal/config"
	"ads-admin-backend/internal/storage"
)

// The serving process only consumes tasks_channel; the trigger that feeds it
// is installed here so a fresh database actually emits notifications.
const schema = `
CREATE TABLE IF NOT EXISTS ads_tasks_v2 (
    id BIGSERIAL PRIMARY KEY,
    channel_name TEXT,
    channel_url TEXT,
    admin_username TEXT,
    advertiser_name TEXT,
    advertiser_username TEXT,
    chat_id BIGINT,
    advertiser_bot_username TEXT,
    post_url TEXT,
    screenshot_url TEXT,
    sent BOOLEAN NOT NULL DEFAULT false,
    CONSTRAINT ads_tasks_v2_channel_url_key UNIQUE (channel_url)
);

CREATE OR REPLACE FUNCTION tasks_notify() RETURNS trigger AS $$
DECLARE
    payload JSON;
BEGIN
    IF TG_OP = 'DELETE' THEN
        payload = row_to_json(OLD);
    ELSE
        payload = row_to_json(NEW);
    END IF;
    PERFORM pg_notify('tasks_channel', payload::text);
    RETURN NULL;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS ads_tasks_v2_notify ON ads_tasks_v2;
CREATE TRIGGER ads_tasks_v2_notify
    AFTER INSERT OR UPDATE OR DELETE ON ads_tasks_v2
    FOR EACH ROW EXECUTE FUNCTION tasks_notify();
`

func main() {
	if len(os.Args) < 2 || os.Args[1] != "up" {
		fmt.Println("Usage: go run ./cmd/migrate up")
		fmt.Println()
		fmt.Println("Creates the ads_tasks_v2 table and its change-notification trigger.")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := storage.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migration completed")
}
