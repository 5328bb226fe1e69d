package commands

import "storefront-api/internal/pkg/metrics"

const (
	sinkNameDatabase = "Database"
	sinkNameTelegram = "Telegram"
)

// sinkReport collects what happened to each sink during one submission.
type sinkReport struct {
	persisted bool
	notified  bool
}

func (r sinkReport) savedTo() []string {
	out := make([]string, 0, 2)
	if r.persisted {
		out = append(out, sinkNameDatabase)
	}
	if r.notified {
		out = append(out, sinkNameTelegram)
	}
	return out
}

func recordStore(rec *metrics.Recorder, enabled, stored bool) {
	switch {
	case !enabled:
		rec.SinkResult(metrics.SinkDatabase, metrics.ResultSkipped)
	case stored:
		rec.SinkResult(metrics.SinkDatabase, metrics.ResultDelivered)
	default:
		rec.SinkResult(metrics.SinkDatabase, metrics.ResultFailed)
	}
}

func recordNotify(rec *metrics.Recorder, enabled, delivered bool) {
	switch {
	case !enabled:
		rec.SinkResult(metrics.SinkTelegram, metrics.ResultSkipped)
	case delivered:
		rec.SinkResult(metrics.SinkTelegram, metrics.ResultDelivered)
	default:
		rec.SinkResult(metrics.SinkTelegram, metrics.ResultFailed)
	}
}
