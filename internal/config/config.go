package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Calendar CalendarConfig `toml:"calendar"`
	Auth     AuthConfig     `toml:"auth"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig расписание студии: сессионные окна и длительность слота.
// Окна задаются данными, а не кодом (см. домен).
type ScheduleConfig struct {
	SlotDurationMinutes int             `toml:"slot_duration_minutes"`
	Timezone            string          `toml:"timezone"`
	Sessions            []SessionConfig `toml:"sessions"`
}

type SessionConfig struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// CalendarConfig параметры внешнего календаря-зеркала
type CalendarConfig struct {
	URL                 string `toml:"url"`
	CalendarID          string `toml:"calendar_id"`
	Timeout             int    `toml:"timeout"`
	SyncIntervalSeconds int    `toml:"sync_interval_seconds"` // 0 = фоновая синхронизация выключена
}

type AuthConfig struct {
	HashKey       string `toml:"hash_key"`  // 32 или 64 байта
	BlockKey      string `toml:"block_key"` // 16, 24 или 32 байта
	SessionTTLSec int    `toml:"session_ttl_seconds"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Schedule.SlotDurationMinutes == 0 {
		cfg.Schedule.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if cfg.Schedule.Timezone == "" {
		cfg.Schedule.Timezone = domain.DefaultTimezone
	}
	if len(cfg.Schedule.Sessions) == 0 {
		cfg.Schedule.Sessions = []SessionConfig{
			{Start: "10:30", End: "13:00"},
			{Start: "14:30", End: "20:00"},
		}
	}
	if cfg.Auth.SessionTTLSec == 0 {
		cfg.Auth.SessionTTLSec = int((14 * 24 * time.Hour).Seconds())
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return fmt.Errorf("database.host and database.dbname are required")
	}
	if _, err := cfg.ToSchedule(); err != nil {
		return err
	}
	if cfg.Auth.HashKey == "" {
		return fmt.Errorf("auth.hash_key is required")
	}
	return nil
}

// ToSchedule конвертирует конфигурацию расписания в доменную модель
func (c *Config) ToSchedule() (domain.Schedule, error) {
	loc, err := time.LoadLocation(c.Schedule.Timezone)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("schedule.timezone: %w", err)
	}

	sessions := make([]domain.SessionWindow, 0, len(c.Schedule.Sessions))
	for i, s := range c.Schedule.Sessions {
		start, err := types.NewTimeStringFromString(s.Start)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("schedule.sessions[%d].start: %w", i, err)
		}
		end, err := types.NewTimeStringFromString(s.End)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("schedule.sessions[%d].end: %w", i, err)
		}
		sessions = append(sessions, domain.SessionWindow{Start: start, End: end})
	}

	schedule := domain.Schedule{
		Sessions:            sessions,
		SlotDurationMinutes: c.Schedule.SlotDurationMinutes,
		Location:            loc,
	}
	if err := schedule.Validate(); err != nil {
		return domain.Schedule{}, err
	}
	return schedule, nil
}
