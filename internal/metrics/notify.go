package metrics

// SubscriberConnected and SubscriberDisconnected track the live subscriber gauge
func (m *Metrics) SubscriberConnected() {
	m.safeExecute("SubscriberConnected", func() {
		m.NotificationSubscribers.Inc()
	})
}

func (m *Metrics) SubscriberDisconnected() {
	m.safeExecute("SubscriberDisconnected", func() {
		m.NotificationSubscribers.Dec()
	})
}

func (m *Metrics) IncrementNotificationEvent(eventType string) {
	m.safeExecute("IncrementNotificationEvent", func() {
		m.NotificationEventsTotal.WithLabelValues(eventType).Inc()
	})
}

func (m *Metrics) IncrementNotificationDropped() {
	m.safeExecute("IncrementNotificationDropped", func() {
		m.NotificationDroppedTotal.Inc()
	})
}

func (m *Metrics) IncrementNotificationPublishError() {
	m.safeExecute("IncrementNotificationPublishError", func() {
		m.NotificationPublishErrors.Inc()
	})
}
