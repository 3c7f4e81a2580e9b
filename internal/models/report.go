package models

import "time"

// Report is one completed aggregation run: the statistics table plus the
// identity under which its artifact is stored.
//
// Example JSON:
//
//	{
//	  "reportId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "generatedAt": "2022-04-21T08:30:00Z",
//	  "stats": {
//	    "photo.jpg": {
//	      "downloads": 2,
//	      "bandwidth": 2048,
//	      "totalRequestTimeInMinutes": 0.001666,
//	      "dates": ["2022-04-19"]
//	    }
//	  }
//	}
type Report struct {
	ReportID    string          `json:"reportId"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Stats       StatisticsTable `json:"stats"`
}
