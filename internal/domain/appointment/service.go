package appointment

import (
	"strings"
	"time"
)

// ===============================
// Service Type
// ===============================

type ServiceType string

const (
	ServicePhysical     ServiceType = "fisico"
	ServiceConsultation ServiceType = "consulta"
)

const ConsultationMinutes = 20

// ParseServiceType normaliza o tag recebido; vazio vira o serviço padrão.
func ParseServiceType(raw string) ServiceType {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" {
		return ServicePhysical
	}
	return ServiceType(tag)
}

// DurationFor resolve a duração do slot para o tipo de serviço.
func (r Rules) DurationFor(svc ServiceType) time.Duration {
	if svc == ServiceConsultation {
		return ConsultationMinutes * time.Minute
	}
	return time.Duration(r.SessionMinutes) * time.Minute
}
