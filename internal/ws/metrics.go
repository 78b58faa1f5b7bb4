package ws

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chat_active_connections",
		Help: "Number of currently open chat connections.",
	})
	messagesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_messages_received_total",
		Help: "Inbound chat messages accepted and persisted.",
	})
	broadcastsDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_broadcasts_delivered_total",
		Help: "Events delivered to connection send queues.",
	})
	droppedSends = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_dropped_sends_total",
		Help: "Connections dropped because their send queue was full.",
	})
)
