package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

const minimalConfig = `
[server]
http_port = 8080

[database]
host = "localhost"
port = 5432
user = "bbs"
password = "bbs"
dbname = "bbs_booking"
sslmode = "disable"

[auth]
hash_key = "0123456789abcdef0123456789abcdef"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	// Дефолтное расписание: две сессии, 30-минутные слоты, Asia/Kolkata
	assert.Equal(t, 30, cfg.Schedule.SlotDurationMinutes)
	assert.Equal(t, "Asia/Kolkata", cfg.Schedule.Timezone)
	require.Len(t, cfg.Schedule.Sessions, 2)
	assert.Equal(t, "10:30", cfg.Schedule.Sessions[0].Start)
	assert.Equal(t, "20:00", cfg.Schedule.Sessions[1].End)

	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 14*24*60*60, cfg.Auth.SessionTTLSec)
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := Load(writeConfig(t, `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "bbs_booking"
`))
	assert.Error(t, err, "auth.hash_key is required")

	_, err = Load(writeConfig(t, `
[database]
host = "localhost"
dbname = "bbs_booking"

[auth]
hash_key = "k"
`))
	assert.Error(t, err, "server.http_port is required")
}

func TestLoad_InvalidSchedule(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
[[schedule.sessions]]
start = "13:00"
end = "12:00"
`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, minimalConfig+`
[schedule]
timezone = "Not/AZone"
`))
	assert.Error(t, err)
}

func TestToSchedule(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	schedule, err := cfg.ToSchedule()
	require.NoError(t, err)

	require.Len(t, schedule.Sessions, 2)
	assert.Equal(t, types.TimeString("10:30"), schedule.Sessions[0].Start)
	assert.Equal(t, types.TimeString("13:00"), schedule.Sessions[0].End)
	assert.Equal(t, types.TimeString("14:30"), schedule.Sessions[1].Start)
	assert.Equal(t, "Asia/Kolkata", schedule.Location.String())
}

func TestDSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=bbs password=bbs dbname=bbs_booking sslmode=disable",
		cfg.Database.DSN())
}
