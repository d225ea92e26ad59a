package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Pilot       Pilot       `mapstructure:",squash"`
	PilotWarmup PilotWarmup `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	MigrateOnStart bool   `mapstructure:"database_migrate_on_start"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Pilot agrupa os limiares do classificador diário. Todos podem ser sobrescritos por env.
type Pilot struct {
	ContainmentCeiling   float64 `mapstructure:"pilot_containment_ceiling"`
	SafeFloor            float64 `mapstructure:"pilot_safe_floor"`
	HighRatio            float64 `mapstructure:"pilot_high_ratio"`
	SafeRatio            float64 `mapstructure:"pilot_safe_ratio"`
	RewardRatio          float64 `mapstructure:"pilot_reward_ratio"`
	ImpulsiveMultiplier  float64 `mapstructure:"pilot_impulsive_multiplier"`
	FollowedMultiplier   float64 `mapstructure:"pilot_followed_multiplier"`
	DebtWindowDays       int     `mapstructure:"pilot_debt_window_days"`
	DebtPaymentDayCap    int     `mapstructure:"pilot_debt_payment_day_cap"`
	WeekdayLookbackDays  int     `mapstructure:"pilot_weekday_lookback_days"`
	SignalTimeoutSeconds int     `mapstructure:"pilot_signal_timeout_seconds"`
}

type PilotWarmup struct {
	CronSchedule      string `mapstructure:"pilot_warmup_cron"`
	MaxConcurrentJobs int    `mapstructure:"pilot_warmup_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"pilot_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8081")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pilot?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE_ON_START", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("APP_TIMEZONE", "America/Mexico_City")

	// Limiares do piloto financeiro
	viper.SetDefault("PILOT_CONTAINMENT_CEILING", 1000.0)
	viper.SetDefault("PILOT_SAFE_FLOOR", 3000.0)
	viper.SetDefault("PILOT_HIGH_RATIO", 0.7)
	viper.SetDefault("PILOT_SAFE_RATIO", 0.5)
	viper.SetDefault("PILOT_REWARD_RATIO", 0.4)
	viper.SetDefault("PILOT_IMPULSIVE_MULTIPLIER", 1.4)
	viper.SetDefault("PILOT_FOLLOWED_MULTIPLIER", 2.0)
	viper.SetDefault("PILOT_DEBT_WINDOW_DAYS", 7)
	viper.SetDefault("PILOT_DEBT_PAYMENT_DAY_CAP", 28)
	viper.SetDefault("PILOT_WEEKDAY_LOOKBACK_DAYS", 56) // 8 semanas
	viper.SetDefault("PILOT_SIGNAL_TIMEOUT_SECONDS", 5)

	viper.SetDefault("PILOT_WARMUP_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("PILOT_WARMUP_MAX_CONCURRENT_JOBS", 4)
	viper.SetDefault("PILOT_WARMUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
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

	location, err := time.LoadLocation(config.App.Timezone)
	if err != nil {
		logrus.Warnf("Timezone inválida: %s, usando UTC", config.App.Timezone)
		location = time.UTC
	}
	config.App.Location = location

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

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
