package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters exported at /metrics via promhttp.

var (
	// VideoLikesTotal counts successful like transitions.
	VideoLikesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clipture_video_likes_total",
		Help: "Total number of successful video likes.",
	})

	// VideoUnlikesTotal counts successful unlike transitions.
	VideoUnlikesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clipture_video_unlikes_total",
		Help: "Total number of successful video unlikes.",
	})

	// LikeConflictsTotal counts rejected transitions (double like, unlike
	// without a prior like).
	LikeConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clipture_like_conflicts_total",
		Help: "Total number of like/unlike requests rejected for violating the like state machine.",
	})

	// VideoCacheRequests counts cache lookups for video reads, by result.
	VideoCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clipture_video_cache_requests_total",
		Help: "Total number of video cache lookups partitioned by endpoint and result.",
	}, []string{"endpoint", "result"})
)
