package events

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Number of roster events successfully published to Kafka.",
	}, []string{"topic", "event_type"})

	failedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Number of roster events that failed to publish.",
	}, []string{"topic", "event_type"})
)

func init() {
	prometheus.MustRegister(publishedCounter, failedCounter)
}

func recordPublished(topic, eventType string) {
	publishedCounter.WithLabelValues(topic, eventType).Inc()
}

func recordPublishFailed(topic, eventType string) {
	failedCounter.WithLabelValues(topic, eventType).Inc()
}
