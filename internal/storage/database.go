package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"myclock/internal/models"
)

type Database struct {
	db *sql.DB
}

// NewDatabase 打开（必要时创建）历史数据库
func NewDatabase(path string) (*Database, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	database := &Database{db: db}
	if err := database.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history tables: %w", err)
	}
	return database, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) initTables() error {
	// 创建计时记录表
	_, err := d.db.Exec(`
        CREATE TABLE IF NOT EXISTS sessions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            kind TEXT NOT NULL,
            outcome TEXT NOT NULL,
            duration INTEGER NOT NULL,
            start_time DATETIME NOT NULL,
            end_time DATETIME NOT NULL
        )
    `)
	if err != nil {
		return err
	}

	_, err = d.db.Exec(`CREATE INDEX IF NOT EXISTS idx_sessions_start ON sessions(start_time)`)
	return err
}

// SaveSession 保存一条计时记录
func (d *Database) SaveSession(record *models.SessionRecord) error {
	result, err := d.db.Exec(`
        INSERT INTO sessions (kind, outcome, duration, start_time, end_time)
        VALUES (?, ?, ?, ?, ?)
    `, string(record.Kind), string(record.Outcome), record.Duration, record.StartTime.UTC(), record.EndTime.UTC())
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	record.ID = id
	return nil
}

// GetSessionStats 统计 [startDate, endDate] 内开始的记录
func (d *Database) GetSessionStats(startDate, endDate time.Time) (*models.SessionStats, error) {
	stats := &models.SessionStats{}

	err := d.db.QueryRow(`
        SELECT
            COALESCE(SUM(CASE WHEN kind = 'stopwatch' THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN kind = 'stopwatch' THEN duration ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN kind = 'countdown' THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN kind = 'countdown' AND outcome = 'completed' THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN kind = 'countdown' THEN duration ELSE 0 END), 0)
        FROM sessions
        WHERE start_time BETWEEN ? AND ?
    `, startDate.UTC(), endDate.UTC()).Scan(
		&stats.StopwatchSessions,
		&stats.StopwatchDuration,
		&stats.CountdownSessions,
		&stats.CountdownCompleted,
		&stats.CountdownDuration,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RecentSessions 按结束时间倒序返回最近的记录
func (d *Database) RecentSessions(limit int) ([]*models.SessionRecord, error) {
	rows, err := d.db.Query(`
        SELECT id, kind, outcome, duration, start_time, end_time
        FROM sessions
        ORDER BY end_time DESC, id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.SessionRecord
	for rows.Next() {
		record := &models.SessionRecord{}
		var kind, outcome string
		if err := rows.Scan(
			&record.ID,
			&kind,
			&outcome,
			&record.Duration,
			&record.StartTime,
			&record.EndTime,
		); err != nil {
			return nil, err
		}
		record.Kind = models.SessionKind(kind)
		record.Outcome = models.SessionOutcome(outcome)
		records = append(records, record)
	}
	return records, rows.Err()
}
