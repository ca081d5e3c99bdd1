package repository

import "github.com/firstfortune/tracking-api/internal/domain/entity"

// ShipmentRepository define el puerto de persistencia para Shipment.
type ShipmentRepository interface {
	// GetByTrackingNumber busca por número de tracking (case-insensitive).
	GetByTrackingNumber(code string) (*entity.Shipment, error)
	List() ([]*entity.Shipment, error)
	ListByUser(userID int64) ([]*entity.Shipment, error)
	// Create persiste el envío. Si TrackingNumber viene vacío genera uno con el
	// esquema LZ<año><secuencia>; unicidad best-effort, no criptográfica.
	Create(shipment *entity.Shipment) error
	// AppendStatus actualiza status y ubicación del envío y agrega exactamente
	// una entrada al historial. Si location viene vacío se arrastra la ubicación
	// actual; si description viene vacío se genera "Status updated to <status>".
	// Retorna domain.ErrShipmentNotFound si el tracking no existe.
	AppendStatus(code, status, location, description string) (*entity.Shipment, error)
}
