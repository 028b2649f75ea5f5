package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "PORT", "APP_ENV", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
		"CORS_ALLOWED_ORIGINS", "HORA_INICIO_LABORAL", "HORA_FIN_LABORAL", "DURACION_SESION",
		"NOMBRE_PROFESIONAL", "ESPECIALIDAD", "NOMBRE_PROFESIONAL_EN", "ESPECIALIDAD_EN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)

	assert.Equal(t, ScheduleConfig{StartHour: 9, EndHour: 18, SessionMinutes: 60}, cfg.Schedule)

	assert.Equal(t, Persona{Name: "Lic. María Gómez", Specialty: "Psicología Clínica"}, cfg.Landing.ES)
	assert.Equal(t, Persona{Name: "Dr. John Doe", Specialty: "Psychiatrist"}, cfg.Landing.EN)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("HORA_INICIO_LABORAL", "8")
	t.Setenv("HORA_FIN_LABORAL", "20")
	t.Setenv("DURACION_SESION", "45")
	t.Setenv("NOMBRE_PROFESIONAL", "Lic. Ana Pérez")
	t.Setenv("ESPECIALIDAD_EN", "Therapist")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ScheduleConfig{StartHour: 8, EndHour: 20, SessionMinutes: 45}, cfg.Schedule)
	assert.Equal(t, "Lic. Ana Pérez", cfg.Landing.ES.Name)
	assert.Equal(t, "Therapist", cfg.Landing.EN.Specialty)
	assert.Equal(t, "Dr. John Doe", cfg.Landing.EN.Name)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PortFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")

	assert.Equal(t, ":3000", Load().Addr())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("HORA_INICIO_LABORAL", "nueve")
	t.Setenv("DURACION_SESION", "1h")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, DefaultStartHour, cfg.Schedule.StartHour)
	assert.Equal(t, DefaultSessionMinutes, cfg.Schedule.SessionMinutes)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_NonPositiveDurationIsKept(t *testing.T) {
	clearEnv(t)
	t.Setenv("DURACION_SESION", "0")

	assert.Equal(t, 0, Load().Schedule.SessionMinutes)
}
