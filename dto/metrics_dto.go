package dto

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/pure_utils"
)

type LedgerMetrics struct {
	TotalEvents        int                `json:"total_events"`
	EventsLast24h      int                `json:"events_last_24h"`
	StatusBreakdown24h StatusBreakdown    `json:"status_breakdown_24h"`
	Verification       VerificationReport `json:"verification"`
	UnsignedExports7d  int                `json:"unsigned_exports_7d"`
	TopEndpoints       []EndpointCount    `json:"top_endpoints"`
	TopObjectTypes     []ObjectTypeCount  `json:"top_object_types"`
}

type StatusBreakdown struct {
	Status2xx int `json:"status_2xx"`
	Status4xx int `json:"status_4xx"`
	Status5xx int `json:"status_5xx"`
}

type EndpointCount struct {
	EventType string `json:"event_type"`
	Count     int    `json:"count"`
}

type ObjectTypeCount struct {
	ObjectType string `json:"object_type"`
	Count      int    `json:"count"`
}

type TimeseriesBucket struct {
	BucketStart time.Time `json:"bucket_start"`
	EventCount  int       `json:"event_count"`
	Status2xx   int       `json:"status_2xx"`
	Status4xx   int       `json:"status_4xx"`
	Status5xx   int       `json:"status_5xx"`
}

func AdaptLedgerMetricsDto(metrics models.LedgerMetrics) LedgerMetrics {
	return LedgerMetrics{
		TotalEvents:   metrics.TotalEvents,
		EventsLast24h: metrics.EventsLast24h,
		StatusBreakdown24h: StatusBreakdown{
			Status2xx: metrics.StatusBreakdown24h.Status2xx,
			Status4xx: metrics.StatusBreakdown24h.Status4xx,
			Status5xx: metrics.StatusBreakdown24h.Status5xx,
		},
		Verification:      AdaptVerificationReportDto(metrics.Verification),
		UnsignedExports7d: metrics.UnsignedExports7d,
		TopEndpoints: pure_utils.Map(metrics.TopEndpoints, func(c models.EndpointCount) EndpointCount {
			return EndpointCount{EventType: c.EventType, Count: c.Count}
		}),
		TopObjectTypes: pure_utils.Map(metrics.TopObjectTypes, func(c models.ObjectTypeCount) ObjectTypeCount {
			return ObjectTypeCount{ObjectType: c.ObjectType, Count: c.Count}
		}),
	}
}

func AdaptTimeseriesBucketDto(bucket models.TimeseriesBucket) TimeseriesBucket {
	return TimeseriesBucket{
		BucketStart: bucket.BucketStart,
		EventCount:  bucket.EventCount,
		Status2xx:   bucket.Status2xx,
		Status4xx:   bucket.Status4xx,
		Status5xx:   bucket.Status5xx,
	}
}
