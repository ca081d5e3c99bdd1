package entity

// HistoryTimestampLayout formato de los timestamps del historial de un envío.
const HistoryTimestampLayout = "2006-01-02 15:04"

// HistoryEntry entrada inmutable del historial de un envío. El historial solo
// crece: nunca se trunca ni se reordena, forma la pista de auditoría completa.
type HistoryEntry struct {
	Timestamp   string
	Location    string
	Status      string
	Description string
}

// Shipment representa un envío rastreado. TrackingNumber es la clave primaria
// (comparación case-insensitive). Status es texto libre, no un enum cerrado:
// el sistema no valida transiciones (envíos heterogéneos: carga, bóveda, etc.).
type Shipment struct {
	TrackingNumber    string
	Origin            string
	Destination       string
	Status            string
	CurrentLocation   string
	EstimatedDelivery string // texto libre: puede ser fecha o etiqueta ("Permanent Storage")
	ActualDelivery    string
	Weight            string
	Service           string
	UserID            int64 // 0 = registro legado sin dueño
	History           []HistoryEntry
}
