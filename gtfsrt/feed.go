package gtfsrt

import (
	"fmt"
	"math"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/local-train-tracker/dataset"
	"github.com/theoremus-urban-solutions/local-train-tracker/utils"
)

// Version is the GTFS-Realtime version written to the feed header
const Version = "2.0"

// BuildTripUpdates groups records by train number, in first-seen order, into TripUpdate entities
func BuildTripUpdates(records []dataset.Record, now time.Time) *gtfsrtpb.FeedMessage {
	feed := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String(Version),
			Incrementality:      gtfsrtpb.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(uint64(now.Unix())),
		},
	}

	byTrain := map[string]*gtfsrtpb.TripUpdate{}
	for _, r := range records {
		tu, ok := byTrain[r.TrainNumber]
		if !ok {
			tu = &gtfsrtpb.TripUpdate{
				Trip: &gtfsrtpb.TripDescriptor{TripId: proto.String(r.TrainNumber)},
				Vehicle: &gtfsrtpb.VehicleDescriptor{
					Id:    proto.String(r.TrainNumber),
					Label: proto.String(r.TrainName),
				},
				Delay: proto.Int32(delaySeconds(r.DelayMinutes)),
			}
			byTrain[r.TrainNumber] = tu
			feed.Entity = append(feed.Entity, &gtfsrtpb.FeedEntity{
				Id:         proto.String(r.TrainNumber),
				TripUpdate: tu,
			})
		}

		stu := &gtfsrtpb.TripUpdate_StopTimeUpdate{
			StopId: proto.String(r.NextStation),
			Arrival: &gtfsrtpb.TripUpdate_StopTimeEvent{
				Delay: proto.Int32(delaySeconds(r.DelayMinutes)),
			},
		}
		tu.StopTimeUpdate = append(tu.StopTimeUpdate, stu)

		// latest Last_Updated across legs wins
		if ts, ok := utils.ParseTimestamp(r.LastUpdated, nil); ok && ts.Unix() > 0 {
			if tu.Timestamp == nil || uint64(ts.Unix()) > tu.GetTimestamp() {
				tu.Timestamp = proto.Uint64(uint64(ts.Unix()))
			}
		}
	}
	return feed
}

// Marshal encodes the feed as protobuf bytes
func Marshal(feed *gtfsrtpb.FeedMessage) ([]byte, error) {
	data, err := proto.Marshal(feed)
	if err != nil {
		return nil, fmt.Errorf("marshal trip updates: %w", err)
	}
	return data, nil
}

// Unmarshal decodes protobuf bytes produced by Marshal
func Unmarshal(data []byte) (*gtfsrtpb.FeedMessage, error) {
	feed := &gtfsrtpb.FeedMessage{}
	if err := proto.Unmarshal(data, feed); err != nil {
		return nil, fmt.Errorf("unmarshal trip updates: %w", err)
	}
	return feed, nil
}

func delaySeconds(minutes float64) int32 {
	s := math.Round(minutes * 60)
	if s > math.MaxInt32 {
		return math.MaxInt32
	}
	if s < math.MinInt32 {
		return math.MinInt32
	}
	return int32(s)
}
