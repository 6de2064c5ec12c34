package service

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *zap.Logger
}

// NewLogUseCaseObserver logs each use case at info level, or error level
// when it failed.
func NewLogUseCaseObserver(logger *zap.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: logger.Named("service")}
}

func (o *logUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	fields := make([]zap.Field, 0, 4+len(event.Fields))
	fields = append(fields,
		zap.String("use_case", event.Name),
		zap.Int64("duration_ms", event.Duration.Milliseconds()),
		zap.Bool("success", event.Success),
	)
	for k, v := range event.Fields {
		fields = append(fields, zap.Any(k, v))
	}
	if event.Err != nil {
		fields = append(fields, zap.Error(event.Err))
		o.logger.Error("service_use_case", fields...)
		return
	}
	o.logger.Info("service_use_case", fields...)
}

type metricsUseCaseObserver struct {
	calls         *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	contributions *prometheus.CounterVec
}

// NewMetricsUseCaseObserver registers use-case counters on reg. Successful
// events carrying "dashboard", "kind" and "amount_minor" fields also add
// to the contributed-amount counter.
func NewMetricsUseCaseObserver(reg prometheus.Registerer) (UseCaseObserver, error) {
	o := &metricsUseCaseObserver{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fundsflow",
			Name:      "use_cases_total",
			Help:      "Service use cases executed, by outcome.",
		}, []string{"use_case", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fundsflow",
			Name:      "use_case_duration_seconds",
			Help:      "Service use case latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"use_case"}),
		contributions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fundsflow",
			Name:      "contributed_minor_total",
			Help:      "Amount contributed through the wallet, in paise.",
		}, []string{"dashboard", "kind"}),
	}
	for _, c := range []prometheus.Collector{o.calls, o.duration, o.contributions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *metricsUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	outcome := "success"
	if !event.Success {
		outcome = "error"
	}
	o.calls.WithLabelValues(event.Name, outcome).Inc()
	o.duration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())

	if !event.Success {
		return
	}
	amount, ok := event.Fields["amount_minor"].(int64)
	if !ok {
		return
	}
	dashboard, _ := event.Fields["dashboard"].(string)
	kind, _ := event.Fields["kind"].(string)
	o.contributions.WithLabelValues(dashboard, kind).Add(float64(amount))
}

type multiUseCaseObserver []UseCaseObserver

// MultiUseCaseObserver fans events out to every non-nil observer.
func MultiUseCaseObserver(observers ...UseCaseObserver) UseCaseObserver {
	var out multiUseCaseObserver
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return NoopUseCaseObserver{}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

func (m multiUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, o := range m {
		o.ObserveUseCase(ctx, event)
	}
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	return MultiUseCaseObserver(observers...)
}

// observeUseCase reports a finished use case. Call it deferred with a
// pointer to the named error result.
func observeUseCase(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, fields map[string]any, err *error) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}
