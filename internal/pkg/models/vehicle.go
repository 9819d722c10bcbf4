package models

// VehicleSnapshot is the normalized vehicle-data snapshot captured from the
// external vehicle API at auto-quote time. Persisted as JSONB alongside the
// extracted search columns; refreshed only by a brand-new fetch cycle.
type VehicleSnapshot struct {
	VRM               string   `json:"vrm"`
	Make              string   `json:"make,omitempty"`
	Model             string   `json:"model,omitempty"`
	MakeModel         string   `json:"make_model,omitempty"`
	Colour            string   `json:"colour,omitempty"`
	FuelType          string   `json:"fuel_type,omitempty"`
	YearOfManufacture int      `json:"year_of_manufacture,omitempty"`
	EngineCapacity    string   `json:"engine_capacity,omitempty"`
	Transmission      string   `json:"transmission,omitempty"`
	WheelPlan         string   `json:"wheel_plan,omitempty"`
	Co2Emissions      *float64 `json:"co2_emissions,omitempty"`
	KerbWeightKg      *float64 `json:"kerb_weight_kg,omitempty"`
	GrossWeightKg     *float64 `json:"gross_weight_kg,omitempty"`
	VIN               string   `json:"vin,omitempty"`
	BodyStyle         string   `json:"body_style,omitempty"`
	Scrapped          bool     `json:"scrapped,omitempty"`
	Exported          bool     `json:"exported,omitempty"`
}

// PricingWeight returns the weight used for estimate computation: kerb weight
// when the API provides it, falling back to gross weight. Nil when unknown.
func (v *VehicleSnapshot) PricingWeight() *float64 {
	if v == nil {
		return nil
	}
	if v.KerbWeightKg != nil {
		return v.KerbWeightKg
	}
	return v.GrossWeightKg
}
