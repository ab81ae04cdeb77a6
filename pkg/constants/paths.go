package constants

// Vehicles
const (
	PathVehicles = "/vehicles"
)

// Health
const (
	PathHealth = "/health"
	PathReady  = "/ready"
)

// Swagger
const (
	PathSwagger = "/swagger"
	PathOpenAPI = "/openapi.json"
)
