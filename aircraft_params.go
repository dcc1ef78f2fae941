package main

// AircraftParameters holds the per-model constants the dynamics core needs.
// They are loaded once (from the aircraft_models table or a built-in default)
// and never mutated; the engine receives them by value.
type AircraftParameters struct {
	Name               string  `json:"name"`
	Mass               float64 `json:"mass"`               // kg
	WingArea           float64 `json:"wingArea"`           // m²
	MaxThrust          float64 `json:"maxThrust"`          // N, all engines combined
	StallSpeed         float64 `json:"stallSpeed"`         // kt, clean configuration
	MaxLiftCoefficient float64 `json:"maxLiftCoefficient"`
	EngineCount        int     `json:"engineCount"`
}

// builtinAircraftModels seeds the aircraft_models table on first run and acts
// as the fallback when the requested model is missing from the database.
var builtinAircraftModels = []AircraftParameters{
	{
		Name:               "B738",
		Mass:               70000,
		WingArea:           125,
		MaxThrust:          240000,
		StallSpeed:         140,
		MaxLiftCoefficient: 1.8,
		EngineCount:        2,
	},
	{
		Name:               "A320",
		Mass:               66000,
		WingArea:           122,
		MaxThrust:          230000,
		StallSpeed:         135,
		MaxLiftCoefficient: 1.9,
		EngineCount:        2,
	},
	{
		Name:               "E190",
		Mass:               45000,
		WingArea:           93,
		MaxThrust:          160000,
		StallSpeed:         125,
		MaxLiftCoefficient: 1.8,
		EngineCount:        2,
	},
}

// DefaultAircraftParameters returns the model used when nothing is configured.
func DefaultAircraftParameters() AircraftParameters {
	return builtinAircraftModels[0]
}
