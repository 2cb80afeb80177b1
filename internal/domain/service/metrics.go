package service

// AlertMetrics records alert pipeline counters.
type AlertMetrics interface {
	ObserveEvaluation(evaluated, matched, skippedUnresolved, skippedNoData, failed int)
	ObservePublish(success bool)
	ObserveDelivery(success bool)
	ObserveFeedImport(stations int, success bool)
}
