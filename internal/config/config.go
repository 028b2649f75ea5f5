package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string
	Env             string
	ShutdownTimeout time.Duration

	Log      LogConfig
	CORS     CORSConfig
	Schedule ScheduleConfig
	Landing  LandingConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// ScheduleConfig holds the static business-hour rules used to fabricate slots.
type ScheduleConfig struct {
	StartHour      int
	EndHour        int
	SessionMinutes int
}

type Persona struct {
	Name      string
	Specialty string
}

type LandingConfig struct {
	ES Persona
	EN Persona
}

const (
	DefaultStartHour      = 9
	DefaultEndHour        = 18
	DefaultSessionMinutes = 60
)

func Load() *Config {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	_ = v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT")
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("NOMBRE_PROFESIONAL", "Lic. María Gómez")
	v.SetDefault("ESPECIALIDAD", "Psicología Clínica")
	v.SetDefault("NOMBRE_PROFESIONAL_EN", "Dr. John Doe")
	v.SetDefault("ESPECIALIDAD_EN", "Psychiatrist")

	env := strings.ToLower(v.GetString("APP_ENV"))

	logFormat := "console"
	if env == "production" {
		logFormat = "json"
	}
	v.SetDefault("LOG_FORMAT", logFormat)

	return &Config{
		ServerPort:      v.GetString("SERVER_PORT"),
		Env:             env,
		ShutdownTimeout: getDuration(v, "SHUTDOWN_TIMEOUT", 5*time.Second),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		CORS: CORSConfig{
			AllowedOrigins: getSlice(v, "CORS_ALLOWED_ORIGINS"),
		},
		Schedule: ScheduleConfig{
			StartHour:      getInt(v, "HORA_INICIO_LABORAL", DefaultStartHour),
			EndHour:        getInt(v, "HORA_FIN_LABORAL", DefaultEndHour),
			SessionMinutes: getInt(v, "DURACION_SESION", DefaultSessionMinutes),
		},
		Landing: LandingConfig{
			ES: Persona{
				Name:      v.GetString("NOMBRE_PROFESIONAL"),
				Specialty: v.GetString("ESPECIALIDAD"),
			},
			EN: Persona{
				Name:      v.GetString("NOMBRE_PROFESIONAL_EN"),
				Specialty: v.GetString("ESPECIALIDAD_EN"),
			},
		},
	}
}

// getInt falls back to def when the variable is unset or not a number.
func getInt(v *viper.Viper, key string, def int) int {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(v.GetString(key)))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getSlice(v *viper.Viper, key string) []string {
	var out []string
	for _, part := range strings.Split(v.GetString(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
