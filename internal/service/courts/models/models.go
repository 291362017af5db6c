package models

import "github.com/m04kA/SMC-CourtService/internal/domain"

// CourtResponse площадка в ответе сервиса
type CourtResponse struct {
	ID          int64  `json:"id"`
	ComplexID   int64  `json:"complexId"`
	Name        string `json:"name"`
	Sport       string `json:"sport"`
	HourlyPrice int64  `json:"hourlyPrice"`
}

// ComplexCourtsResponse комплекс со списком площадок
type ComplexCourtsResponse struct {
	ComplexID   int64           `json:"complexId"`
	ComplexName string          `json:"complexName"`
	Address     string          `json:"address"`
	Courts      []CourtResponse `json:"courts"`
}

// CityResponse город в ответе сервиса
type CityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CityListResponse список городов
type CityListResponse struct {
	Cities []CityResponse `json:"cities"`
}

// FromDomainCourts конвертирует доменные площадки в response
func FromDomainCourts(cmplx *domain.Complex, courts []*domain.Court) *ComplexCourtsResponse {
	resp := &ComplexCourtsResponse{
		ComplexID:   cmplx.ID,
		ComplexName: cmplx.Name,
		Address:     cmplx.Address,
		Courts:      make([]CourtResponse, 0, len(courts)),
	}

	for _, c := range courts {
		resp.Courts = append(resp.Courts, CourtResponse{
			ID:          c.ID,
			ComplexID:   c.ComplexID,
			Name:        c.Name,
			Sport:       string(c.Sport),
			HourlyPrice: c.HourlyPrice,
		})
	}

	return resp
}

// FromDomainCities конвертирует доменные города в response
func FromDomainCities(cities []*domain.City) *CityListResponse {
	resp := &CityListResponse{Cities: make([]CityResponse, 0, len(cities))}
	for _, c := range cities {
		resp.Cities = append(resp.Cities, CityResponse{ID: c.ID, Name: c.Name})
	}
	return resp
}
