package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/maisonlumiere/boutique/internal/mykafka"
)

// publish fires a lifecycle event without failing the request. The producer
// is optional; with no broker configured it is nil and events are dropped.
func publish(c echo.Context, p *mykafka.Producer, topic, key string, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}
