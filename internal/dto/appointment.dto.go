package dto

type AvailabilityResponse struct {
	Slots []string `json:"slots_disponibles"`
}

type BookingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LandingPage is what both landing templates receive.
type LandingPage struct {
	Nombre       string
	Especialidad string
	Lang         string
}
