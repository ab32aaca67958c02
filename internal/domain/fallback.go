package domain

import "time"

// FallbackReports is the fixed placeholder dataset shown when the
// backend cannot be reached at all. Degrading to stale placeholder data
// beats blocking the user on an error.
var FallbackReports = []Report{
	{
		ID:                   1,
		Description:          "Kebakaran besar di perbukitan, asap terlihat dari jalan utama",
		Latitude:             -0.9465,
		Longitude:            100.4180,
		CreatedAt:            time.Date(2025, time.October, 25, 0, 0, 0, 0, time.UTC),
		ImageURL:             "https://images.unsplash.com/photo-1554188248-986adbb73c24?w=500",
		Verified:             true,
		User:                 ReportAuthor{Name: "Budi Herman"},
		ForestClassification: "Kebakaran Besar",
	},
	{
		ID:                  2,
		Description:         "Banyaknya sampah di area ini yang membuat warga resah",
		Latitude:            -0.9475,
		Longitude:           100.4170,
		CreatedAt:           time.Date(2025, time.October, 25, 0, 0, 0, 0, time.UTC),
		ImageURL:            "https://images.unsplash.com/photo-1605600659908-0ef719419d41?w=500",
		User:                ReportAuthor{Name: "Budi Herman"},
		TrashClassification: "Banyak Sampah",
	},
	{
		ID:                  3,
		Description:         "Air sungai keruh dan berbau di dekat pemukiman",
		Latitude:            -0.9481,
		Longitude:           100.4164,
		CreatedAt:           time.Date(2025, time.October, 25, 0, 0, 0, 0, time.UTC),
		ImageURL:            "https://images.unsplash.com/photo-1530080913386-c5140c5ac476?w=500",
		User:                ReportAuthor{Name: "Budi Herman"},
		WaterClassification: "Air Keruh",
	},
	{
		ID:                           4,
		Description:                  "Penebangan liar di kawasan hutan lindung",
		Latitude:                     -0.9490,
		Longitude:                    100.4155,
		CreatedAt:                    time.Date(2025, time.October, 25, 0, 0, 0, 0, time.UTC),
		ImageURL:                     "https://images.unsplash.com/photo-1542365287-3e1b6b3609b2?w=500",
		User:                         ReportAuthor{Name: "Budi Herman"},
		IllegalLoggingClassification: "Penebangan Ilegal",
	},
}
