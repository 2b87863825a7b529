package service

import (
	"context"
	"encoding/json"

	"github.com/reusemart/consignment-service/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	EventBarangRated       = "barang_rated"
	EventPembeliRegistered = "pembeli_registered"
)

// publishEvent is fire-and-forget: failures are logged and never returned.
func publishEvent(ctx context.Context, publisher EventPublisher, eventType string, data interface{}) {
	if publisher == nil {
		return
	}

	jsonMsg, err := json.Marshal(dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	})
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	if err := publisher.Publish(ctx, eventType, jsonMsg); err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
	}
}
