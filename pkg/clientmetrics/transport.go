package clientmetrics

import (
	"net/http"
	"strconv"
	"time"
)

// Collector интерфейс сборщика метрик исходящих запросов
type Collector interface {
	ObserveIntegrationRequest(target, method, status string, duration time.Duration)
}

// Transport http.RoundTripper, записывающий метрики каждого исходящего запроса
type Transport struct {
	base      http.RoundTripper
	collector Collector
	target    string
}

// Wrap оборачивает базовый RoundTripper сбором метрик
// target — логическое имя внешнего сервиса (например, "admission_api")
func Wrap(base http.RoundTripper, collector Collector, target string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		base:      base,
		collector: collector,
		target:    target,
	}
}

// RoundTrip выполняет запрос и записывает метрики
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.collector.ObserveIntegrationRequest(t.target, req.Method, status, time.Since(start))

	return resp, err
}
