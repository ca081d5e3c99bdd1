package dto

import "github.com/firstfortune/tracking-api/internal/domain/entity"

// CreateShipmentRequest entrada para crear un envío. Origin, destination y
// weight son obligatorios; service tiene valor por defecto.
type CreateShipmentRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Weight      string `json:"weight" validate:"required"`
	Service     string `json:"service"`
}

// UpdateStatusRequest entrada para actualizar el estado de un envío.
// Status es texto libre a propósito: no hay tabla de transiciones.
type UpdateStatusRequest struct {
	Status      string `json:"status" validate:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// HistoryEntryResponse entrada del historial tal como sale al cliente.
type HistoryEntryResponse struct {
	Timestamp   string `json:"timestamp"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// ShipmentResponse vista completa de un envío (dueño o admin).
type ShipmentResponse struct {
	TrackingNumber    string                 `json:"trackingNumber"`
	Origin            string                 `json:"origin"`
	Destination       string                 `json:"destination"`
	Status            string                 `json:"status"`
	CurrentLocation   string                 `json:"currentLocation"`
	EstimatedDelivery string                 `json:"estimatedDelivery,omitempty"`
	ActualDelivery    string                 `json:"actualDelivery,omitempty"`
	Weight            string                 `json:"weight,omitempty"`
	Service           string                 `json:"service,omitempty"`
	UserID            int64                  `json:"userId,omitempty"`
	History           []HistoryEntryResponse `json:"history"`
}

// PublicShipmentResponse vista pública reducida para tracking sin sesión:
// oculta peso y dueño, conserva el historial de cuatro campos.
type PublicShipmentResponse struct {
	TrackingNumber    string                 `json:"trackingNumber"`
	Status            string                 `json:"status"`
	Origin            string                 `json:"origin"`
	Destination       string                 `json:"destination"`
	CurrentLocation   string                 `json:"currentLocation"`
	EstimatedDelivery string                 `json:"estimatedDelivery,omitempty"`
	ActualDelivery    string                 `json:"actualDelivery,omitempty"`
	Service           string                 `json:"service,omitempty"`
	History           []HistoryEntryResponse `json:"history"`
}

// NewHistoryResponses mapea el historial preservando el orden de inserción.
func NewHistoryResponses(history []entity.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(history))
	for _, h := range history {
		out = append(out, HistoryEntryResponse{
			Timestamp:   h.Timestamp,
			Location:    h.Location,
			Status:      h.Status,
			Description: h.Description,
		})
	}
	return out
}

// NewShipmentResponse mapea la entidad a la vista completa.
func NewShipmentResponse(s *entity.Shipment) ShipmentResponse {
	return ShipmentResponse{
		TrackingNumber:    s.TrackingNumber,
		Origin:            s.Origin,
		Destination:       s.Destination,
		Status:            s.Status,
		CurrentLocation:   s.CurrentLocation,
		EstimatedDelivery: s.EstimatedDelivery,
		ActualDelivery:    s.ActualDelivery,
		Weight:            s.Weight,
		Service:           s.Service,
		UserID:            s.UserID,
		History:           NewHistoryResponses(s.History),
	}
}

// NewShipmentResponses mapea una lista de envíos a la vista completa.
func NewShipmentResponses(shipments []*entity.Shipment) []ShipmentResponse {
	out := make([]ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, NewShipmentResponse(s))
	}
	return out
}

// NewPublicShipmentResponse mapea la entidad a la vista pública reducida.
func NewPublicShipmentResponse(s *entity.Shipment) PublicShipmentResponse {
	return PublicShipmentResponse{
		TrackingNumber:    s.TrackingNumber,
		Status:            s.Status,
		Origin:            s.Origin,
		Destination:       s.Destination,
		CurrentLocation:   s.CurrentLocation,
		EstimatedDelivery: s.EstimatedDelivery,
		ActualDelivery:    s.ActualDelivery,
		Service:           s.Service,
		History:           NewHistoryResponses(s.History),
	}
}
