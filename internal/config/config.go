package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvProduction = "production"

type Config struct {
	App                    App                    `mapstructure:",squash"`
	Server                 Server                 `mapstructure:",squash"`
	Database               Database               `mapstructure:",squash"`
	Auth                   Auth                   `mapstructure:",squash"`
	Cors                   Cors                   `mapstructure:",squash"`
	CommissionSnapshotSync CommissionSnapshotSync `mapstructure:",squash"`
	PaceCalendarSync       PaceCalendarSync       `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
	RunMigrations   bool          `mapstructure:"database_run_migrations"`
	Seed            bool          `mapstructure:"database_seed"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"app_env"`
}

func (a App) IsProduction() bool {
	return a.Environment == EnvProduction
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	AdminUsername     string        `mapstructure:"admin_username"`
	AdminPassword     string        `mapstructure:"admin_password"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	SessionToken      string        `mapstructure:"admin_session_token"`
	SessionMaxAge     time.Duration `mapstructure:"session_max_age"`
	LoginRateEvery    time.Duration `mapstructure:"login_rate_every"`
	LoginRateBurst    int           `mapstructure:"login_rate_burst"`
	TrustedProxies    []string      `mapstructure:"auth_trusted_proxies"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type CommissionSnapshotSync struct {
	CronSchedule string `mapstructure:"commission_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"commission_snapshot_sync_enabled"`
}

type PaceCalendarSync struct {
	CronSchedule string `mapstructure:"pace_calendar_sync_cron"`
	Enabled      bool   `mapstructure:"pace_calendar_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/commission?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)
	viper.SetDefault("DATABASE_SEED", false)

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("ADMIN_SESSION_TOKEN", "")
	viper.SetDefault("SESSION_MAX_AGE", "8h")
	viper.SetDefault("LOGIN_RATE_EVERY", "2s") // 1 tentativa a cada 2 segundos
	viper.SetDefault("LOGIN_RATE_BURST", 5)
	viper.SetDefault("AUTH_TRUSTED_PROXIES", "") // IPs ou CIDRs separados por vírgula

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("COMMISSION_SNAPSHOT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("COMMISSION_SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("PACE_CALENDAR_SYNC_CRON", "0 1 * * *") // Todos os dias à 1h da manhã
	viper.SetDefault("PACE_CALENDAR_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if config.Auth.SessionToken == "" {
		logrus.Warn("ADMIN_SESSION_TOKEN não configurado: login administrativo ficará indisponível")
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
