package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/models"
)

// vehicleAPIResponse mirrors the upstream vehicle data payload. Only the
// sections the pricing engine consumes are decoded.
type vehicleAPIResponse struct {
	VehicleRegistration struct {
		Vrm               string   `json:"Vrm"`
		Make              string   `json:"Make"`
		Model             string   `json:"Model"`
		MakeModel         string   `json:"MakeModel"`
		Colour            string   `json:"Colour"`
		FuelType          string   `json:"FuelType"`
		YearOfManufacture int      `json:"YearOfManufacture"`
		EngineCapacity    string   `json:"EngineCapacity"`
		Transmission      string   `json:"Transmission"`
		WheelPlan         string   `json:"WheelPlan"`
		Co2Emissions      *float64 `json:"Co2Emissions"`
		GrossWeight       *float64 `json:"GrossWeight"`
		Vin               string   `json:"Vin"`
		Scrapped          bool     `json:"Scrapped"`
		Exported          bool     `json:"Exported"`
	} `json:"VehicleRegistration"`
	Dimensions struct {
		KerbWeight *float64 `json:"KerbWeight"`
	} `json:"Dimensions"`
	SmmtDetails struct {
		BodyStyle string `json:"BodyStyle"`
	} `json:"SmmtDetails"`
}

// FetchVehicleData looks up a registration against the vehicle data API and
// normalizes the response into a snapshot. A missing registration maps to
// NotFound; any other failure maps to UpstreamUnavailable so callers can tell
// "this plate is invalid" from "try again later".
func (g *QuoteGateway) FetchVehicleData(ctx context.Context, regNumber string) (*models.VehicleSnapshot, error) {
	endpoint := fmt.Sprintf("%s/vehicledata?%s", g.apiClient.BaseURL, url.Values{
		"apikey": {g.cfg.VehicleAPI.APIKey},
		"vrm":    {regNumber},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to build vehicle api request", err)
	}

	resp, err := g.apiClient.HTTPClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(errs.UpstreamUnavailable, "vehicle api unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.Newf(errs.NotFound, "no vehicle found for registration %s", regNumber)
	case resp.StatusCode != http.StatusOK:
		return nil, errs.Newf(errs.UpstreamUnavailable, "vehicle api returned status %d", resp.StatusCode)
	}

	var payload vehicleAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.Wrap(errs.UpstreamUnavailable, "failed to decode vehicle api response", err)
	}

	reg := payload.VehicleRegistration
	if reg.Vrm == "" {
		return nil, errs.Newf(errs.NotFound, "no vehicle found for registration %s", regNumber)
	}

	return &models.VehicleSnapshot{
		VRM:               reg.Vrm,
		Make:              reg.Make,
		Model:             reg.Model,
		MakeModel:         reg.MakeModel,
		Colour:            reg.Colour,
		FuelType:          reg.FuelType,
		YearOfManufacture: reg.YearOfManufacture,
		EngineCapacity:    reg.EngineCapacity,
		Transmission:      reg.Transmission,
		WheelPlan:         reg.WheelPlan,
		Co2Emissions:      reg.Co2Emissions,
		KerbWeightKg:      payload.Dimensions.KerbWeight,
		GrossWeightKg:     reg.GrossWeight,
		VIN:               reg.Vin,
		BodyStyle:         payload.SmmtDetails.BodyStyle,
		Scrapped:          reg.Scrapped,
		Exported:          reg.Exported,
	}, nil
}
