// Package gtfsrt exports dataset records as a GTFS-Realtime TripUpdates feed.
//
// Each train number becomes one FeedEntity whose TripUpdate carries a
// StopTimeUpdate per leg: the leg's next station is the stop and the leg's
// delay, converted to seconds, is the arrival delay. The feed is a
// FULL_DATASET snapshot; there is no incremental mode.
//
// Example usage:
//
//	feed := gtfsrt.BuildTripUpdates(ds.LookupBetween("Andheri", "Bandra"), time.Now())
//	data, err := gtfsrt.Marshal(feed)
package gtfsrt
