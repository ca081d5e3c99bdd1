package memory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/firstfortune/tracking-api/internal/domain"
	"github.com/firstfortune/tracking-api/internal/domain/entity"
	"github.com/firstfortune/tracking-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// trackingPrefix prefijo de los tracking numbers generados por este store.
const trackingPrefix = "LZ"

// ShipmentRepo implementación en memoria del puerto ShipmentRepository.
// Todas las mutaciones (incluido el append de historial) ocurren bajo lock,
// así dos actualizaciones concurrentes al mismo tracking no pierden entradas.
type ShipmentRepo struct {
	mu        sync.RWMutex
	shipments []*entity.Shipment
	seq       int
}

// NewShipmentRepository construye el store en memoria de envíos.
func NewShipmentRepository() *ShipmentRepo {
	return &ShipmentRepo{}
}

// GetByTrackingNumber busca por tracking (case-insensitive); nil si no existe.
func (r *ShipmentRepo) GetByTrackingNumber(code string) (*entity.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s := r.find(code); s != nil {
		return cloneShipment(s), nil
	}
	return nil, nil
}

// List devuelve todos los envíos en orden de creación.
func (r *ShipmentRepo) List() ([]*entity.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Shipment, 0, len(r.shipments))
	for _, s := range r.shipments {
		out = append(out, cloneShipment(s))
	}
	return out, nil
}

// ListByUser devuelve los envíos cuyo dueño es userID.
func (r *ShipmentRepo) ListByUser(userID int64) ([]*entity.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Shipment
	for _, s := range r.shipments {
		if s.UserID == userID {
			out = append(out, cloneShipment(s))
		}
	}
	return out, nil
}

// Create persiste el envío. Si TrackingNumber viene vacío (alta vía API, no
// seed) se genera LZ<año><secuencia de 3 dígitos>. La unicidad del esquema es
// best-effort: una colisión con un tracking sembrado a mano es un caso borde
// aceptado, no se maneja.
func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if shipment.TrackingNumber == "" {
		r.seq++
		shipment.TrackingNumber = fmt.Sprintf("%s%d%03d", trackingPrefix, time.Now().Year(), r.seq)
	}
	r.shipments = append(r.shipments, cloneShipment(shipment))
	return nil
}

// AppendStatus actualiza estado y ubicación y agrega exactamente una entrada
// al historial. Ubicación vacía arrastra la actual; descripción vacía genera
// el texto por defecto.
func (r *ShipmentRepo) AppendStatus(code, status, location, description string) (*entity.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.find(code)
	if s == nil {
		return nil, domain.ErrShipmentNotFound
	}
	if location == "" {
		location = s.CurrentLocation
	}
	if description == "" {
		description = fmt.Sprintf("Status updated to %s", status)
	}
	s.Status = status
	s.CurrentLocation = location
	s.History = append(s.History, entity.HistoryEntry{
		Timestamp:   time.Now().Format(entity.HistoryTimestampLayout),
		Location:    location,
		Status:      status,
		Description: description,
	})
	return cloneShipment(s), nil
}

// find busca sin lock; los llamadores deben tener el mutex tomado.
func (r *ShipmentRepo) find(code string) *entity.Shipment {
	for _, s := range r.shipments {
		if strings.EqualFold(s.TrackingNumber, code) {
			return s
		}
	}
	return nil
}

// cloneShipment copia el envío junto con su historial para que los lectores
// no vean appends posteriores del store.
func cloneShipment(s *entity.Shipment) *entity.Shipment {
	c := *s
	c.History = make([]entity.HistoryEntry, len(s.History))
	copy(c.History, s.History)
	return &c
}
