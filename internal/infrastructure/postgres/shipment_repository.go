package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/firstfortune/tracking-api/internal/domain"
	"github.com/firstfortune/tracking-api/internal/domain/entity"
	"github.com/firstfortune/tracking-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

const shipmentColumns = `tracking_number, origin, destination, status, current_location,
	estimated_delivery, actual_delivery, weight, service, COALESCE(user_id, 0)`

// ShipmentRepo implementación del puerto ShipmentRepository sobre PostgreSQL.
// El historial vive en shipment_history; el orden de auditoría es el orden de
// inserción (id creciente), nunca se actualiza ni borra una entrada.
type ShipmentRepo struct {
	pool *pgxpool.Pool
}

// NewShipmentRepository construye el adaptador de persistencia para envíos.
func NewShipmentRepository(pool *pgxpool.Pool) *ShipmentRepo {
	return &ShipmentRepo{pool: pool}
}

// GetByTrackingNumber busca por tracking (case-insensitive); nil si no existe.
func (r *ShipmentRepo) GetByTrackingNumber(code string) (*entity.Shipment, error) {
	ctx := context.Background()
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE lower(tracking_number) = lower($1)`
	var s entity.Shipment
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&s.TrackingNumber, &s.Origin, &s.Destination, &s.Status, &s.CurrentLocation,
		&s.EstimatedDelivery, &s.ActualDelivery, &s.Weight, &s.Service, &s.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	history, err := r.loadHistory(ctx, s.TrackingNumber)
	if err != nil {
		return nil, err
	}
	s.History = history
	return &s, nil
}

// List devuelve todos los envíos con su historial.
func (r *ShipmentRepo) List() ([]*entity.Shipment, error) {
	return r.list(`SELECT ` + shipmentColumns + ` FROM shipments ORDER BY created_at`)
}

// ListByUser devuelve los envíos cuyo dueño es userID.
func (r *ShipmentRepo) ListByUser(userID int64) ([]*entity.Shipment, error) {
	return r.list(`SELECT `+shipmentColumns+` FROM shipments WHERE user_id = $1 ORDER BY created_at`, userID)
}

func (r *ShipmentRepo) list(query string, args ...any) ([]*entity.Shipment, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(
			&s.TrackingNumber, &s.Origin, &s.Destination, &s.Status, &s.CurrentLocation,
			&s.EstimatedDelivery, &s.ActualDelivery, &s.Weight, &s.Service, &s.UserID,
		); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		history, err := r.loadHistory(ctx, s.TrackingNumber)
		if err != nil {
			return nil, err
		}
		s.History = history
	}
	return list, nil
}

// Create persiste el envío y su historial inicial en una transacción. Si
// TrackingNumber viene vacío se genera LZ<año><secuencia> con la secuencia de
// la base; la unicidad del esquema es best-effort frente a datos sembrados.
func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if shipment.TrackingNumber == "" {
		var seq int64
		if err := tx.QueryRow(ctx, `SELECT nextval('shipment_tracking_seq')`).Scan(&seq); err != nil {
			return fmt.Errorf("next tracking seq: %w", err)
		}
		shipment.TrackingNumber = fmt.Sprintf("LZ%d%03d", time.Now().Year(), seq)
	}

	var userID any
	if shipment.UserID != 0 {
		userID = shipment.UserID
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO shipments (tracking_number, origin, destination, status, current_location,
			estimated_delivery, actual_delivery, weight, service, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		shipment.TrackingNumber, shipment.Origin, shipment.Destination, shipment.Status,
		shipment.CurrentLocation, shipment.EstimatedDelivery, shipment.ActualDelivery,
		shipment.Weight, shipment.Service, userID,
	)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	for _, h := range shipment.History {
		if err := insertHistory(ctx, tx, shipment.TrackingNumber, h); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// AppendStatus actualiza estado y ubicación y agrega exactamente una entrada
// de historial, todo en una transacción con el registro bloqueado.
func (r *ShipmentRepo) AppendStatus(code, status, location, description string) (*entity.Shipment, error) {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var trackingNumber, currentLocation string
	err = tx.QueryRow(ctx, `
		SELECT tracking_number, current_location FROM shipments
		WHERE lower(tracking_number) = lower($1) FOR UPDATE`, code,
	).Scan(&trackingNumber, &currentLocation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("lock shipment: %w", err)
	}

	if location == "" {
		location = currentLocation
	}
	if description == "" {
		description = fmt.Sprintf("Status updated to %s", status)
	}

	_, err = tx.Exec(ctx, `
		UPDATE shipments SET status = $2, current_location = $3 WHERE tracking_number = $1`,
		trackingNumber, status, location,
	)
	if err != nil {
		return nil, fmt.Errorf("update shipment: %w", err)
	}
	entry := entity.HistoryEntry{
		Timestamp:   time.Now().Format(entity.HistoryTimestampLayout),
		Location:    location,
		Status:      status,
		Description: description,
	}
	if err := insertHistory(ctx, tx, trackingNumber, entry); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return r.GetByTrackingNumber(trackingNumber)
}

func insertHistory(ctx context.Context, tx pgx.Tx, trackingNumber string, h entity.HistoryEntry) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO shipment_history (tracking_number, ts, location, status, description)
		VALUES ($1, $2, $3, $4, $5)`,
		trackingNumber, h.Timestamp, h.Location, h.Status, h.Description,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

func (r *ShipmentRepo) loadHistory(ctx context.Context, trackingNumber string) ([]entity.HistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ts, location, status, description FROM shipment_history
		WHERE tracking_number = $1 ORDER BY id`, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()
	var history []entity.HistoryEntry
	for rows.Next() {
		var h entity.HistoryEntry
		if err := rows.Scan(&h.Timestamp, &h.Location, &h.Status, &h.Description); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
