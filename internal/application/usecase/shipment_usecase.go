package usecase

import (
	"time"

	"github.com/firstfortune/tracking-api/internal/application/dto"
	"github.com/firstfortune/tracking-api/internal/domain"
	"github.com/firstfortune/tracking-api/internal/domain/entity"
	"github.com/firstfortune/tracking-api/internal/domain/repository"
	"github.com/firstfortune/tracking-api/pkg/jwt"
)

// DefaultService nivel de servicio cuando el cliente no indica uno.
const DefaultService = "Standard Shipping"

// estimatedDeliveryDays plazo estimado de entrega para envíos nuevos.
const estimatedDeliveryDays = 5

// ShipmentUseCase casos de uso de tracking y gestión de envíos. La política
// de acceso (dueño-o-admin, vista pública reducida) vive aquí, no en los handlers.
type ShipmentUseCase struct {
	repo repository.ShipmentRepository
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(repo repository.ShipmentRepository) *ShipmentUseCase {
	return &ShipmentUseCase{repo: repo}
}

// Track busca un envío por tracking (case-insensitive). Sin sesión, o con una
// sesión que no es del dueño, devuelve la vista pública reducida; el dueño
// recibe el registro completo con historial. claims puede ser nil.
func (uc *ShipmentUseCase) Track(code string, claims *jwt.Claims) (any, error) {
	shipment, err := uc.repo.GetByTrackingNumber(code)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrShipmentNotFound
	}
	if claims == nil || shipment.UserID == 0 || claims.UserID != shipment.UserID {
		return dto.NewPublicShipmentResponse(shipment), nil
	}
	return dto.NewShipmentResponse(shipment), nil
}

// ListFor devuelve todos los envíos para un admin y solo los propios para
// cualquier otro rol.
func (uc *ShipmentUseCase) ListFor(claims *jwt.Claims) ([]dto.ShipmentResponse, error) {
	if claims.Role == entity.RoleAdmin {
		return uc.ListAll()
	}
	return uc.ListByOwner(claims.UserID)
}

// ListByOwner devuelve los envíos cuyo dueño es userID.
func (uc *ShipmentUseCase) ListByOwner(userID int64) ([]dto.ShipmentResponse, error) {
	shipments, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return dto.NewShipmentResponses(shipments), nil
}

// ListAll devuelve todos los envíos (enumeración admin).
func (uc *ShipmentUseCase) ListAll() ([]dto.ShipmentResponse, error) {
	shipments, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return dto.NewShipmentResponses(shipments), nil
}

// Create crea un envío propiedad de ownerID: estado inicial "Processing",
// ubicación actual = origen, entrega estimada a 5 días y primera entrada de
// historial "Order received". El tracking number lo genera el store.
func (uc *ShipmentUseCase) Create(ownerID int64, in dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	now := time.Now()
	service := in.Service
	if service == "" {
		service = DefaultService
	}
	shipment := &entity.Shipment{
		Origin:            in.Origin,
		Destination:       in.Destination,
		Status:            "Processing",
		CurrentLocation:   in.Origin,
		EstimatedDelivery: now.AddDate(0, 0, estimatedDeliveryDays).Format("2006-01-02"),
		Weight:            in.Weight,
		Service:           service,
		UserID:            ownerID,
		History: []entity.HistoryEntry{
			{
				Timestamp:   now.Format(entity.HistoryTimestampLayout),
				Location:    in.Origin,
				Status:      "Order received",
				Description: "Shipment order created and processing",
			},
		},
	}
	if err := uc.repo.Create(shipment); err != nil {
		return nil, err
	}
	out := dto.NewShipmentResponse(shipment)
	return &out, nil
}

// UpdateStatus aplica el chequeo dueño-o-admin y agrega exactamente una
// entrada al historial con el nuevo estado. Status es texto libre: no hay
// tabla de transiciones ni estado terminal (un "Delivered" puede seguir
// actualizándose); ese comportamiento es deliberado.
func (uc *ShipmentUseCase) UpdateStatus(claims *jwt.Claims, code string, in dto.UpdateStatusRequest) (*dto.ShipmentResponse, error) {
	shipment, err := uc.repo.GetByTrackingNumber(code)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrShipmentNotFound
	}
	if claims.Role != entity.RoleAdmin && shipment.UserID != claims.UserID {
		return nil, domain.ErrForbidden
	}
	updated, err := uc.repo.AppendStatus(code, in.Status, in.Location, in.Description)
	if err != nil {
		return nil, err
	}
	out := dto.NewShipmentResponse(updated)
	return &out, nil
}
