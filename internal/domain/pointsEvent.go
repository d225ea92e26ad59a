package domain

import "time"

// Chaves de eventos de pontos emitidos pelo piloto
const (
	PointsEventPilotFollowed = "pilot_followed"
	PointsEventPilotRescue   = "pilot_rescue"
)

// PointsRefTablePilot é a tabela de referência usada para deduplicar eventos do piloto
const PointsRefTablePilot = "pilot_daily_recommendations"

type PointsEvent struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	UserID    string    `json:"user_id"`
	EventKey  string    `json:"event_key"`
	RefTable  string    `json:"ref_table"`
	RefID     string    `json:"ref_id"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}
